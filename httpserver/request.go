package httpserver

import (
	"movieland/movie"
)

// MovieRequest is the body of both POST /movies and PUT /movies/{id}.
// PUT is a full replacement, so the same shape and rules apply.
type MovieRequest struct {
	Title       string  `json:"title" validate:"required,notblank"`
	Year        int     `json:"year" validate:"required,min=1900,max=2100"`
	Description *string `json:"description"`
}

func (r MovieRequest) ToInput() movie.Input {
	return movie.Input{
		Title:       r.Title,
		Year:        r.Year,
		Description: r.Description,
	}
}
