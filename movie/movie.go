package movie

import (
	"strings"

	"movieland/errs"
)

const (
	MinYear = 1900
	MaxYear = 2100
)

var (
	ErrNotFound     = errs.Errorf(errs.ENOTFOUND, "Movie not found")
	ErrInvalidTitle = errs.Errorf(errs.EUNPROCESSABLE, "title: must not be empty")
	ErrInvalidYear  = errs.Errorf(errs.EUNPROCESSABLE, "year: must be between %d and %d", MinYear, MaxYear)
)

// Movie is the stored record. ID is assigned by the store on creation.
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Year        int     `json:"year"`
	Description *string `json:"description"`
}

// Input carries the writable fields of a movie for both create and update.
// Updates are full replacements, so every field is always applied.
type Input struct {
	Title       string
	Year        int
	Description *string
}

func (in Input) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrInvalidTitle
	}

	if in.Year < MinYear || in.Year > MaxYear {
		return ErrInvalidYear
	}

	return nil
}
