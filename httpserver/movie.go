package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"movieland/errs"

	"github.com/labstack/echo/v4"
)

var (
	ErrInvalidMovieID = errs.Errorf(errs.EUNPROCESSABLE, "id: must be an integer")
	ErrInvalidBody    = errs.Errorf(errs.EUNPROCESSABLE, "invalid request body")
)

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("", s.handleListMovies)
	g.POST("", s.handleCreateMovie)
	g.GET("/:id", s.handleGetMovie)
	g.PUT("/:id", s.handleUpdateMovie)
	g.DELETE("/:id", s.handleDeleteMovie)
}

// handleListMovies godoc
// @Summary List Movies
// @Description Get all movies in insertion order
// @Tags movies
// @Produce json
// @Success 200 {array} movie.Movie
// @Router /movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	movies, err := s.MovieService.ListMovies(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, movies)
}

// handleGetMovie godoc
// @Summary Get Movie
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} movie.Movie
// @Failure 404 {object} ErrorResponse
// @Router /movies/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	id, err := movieID(c)
	if err != nil {
		return err
	}

	m, err := s.MovieService.GetMovie(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, m)
}

// handleCreateMovie godoc
// @Summary Create Movie
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body MovieRequest true "Movie Data"
// @Success 201 {object} movie.Movie
// @Failure 422 {object} ErrorResponse
// @Router /movies [post]
func (s *Server) handleCreateMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	req, err := bindMovieRequest(c)
	if err != nil {
		return err
	}

	m, err := s.MovieService.CreateMovie(c.Request().Context(), req.ToInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, m)
}

// handleUpdateMovie godoc
// @Summary Replace Movie
// @Description Overwrite title, year and description of an existing movie
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body MovieRequest true "Movie Data"
// @Success 200 {object} movie.Movie
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /movies/{id} [put]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	id, err := movieID(c)
	if err != nil {
		return err
	}

	req, err := bindMovieRequest(c)
	if err != nil {
		return err
	}

	m, err := s.MovieService.UpdateMovie(c.Request().Context(), id, req.ToInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, m)
}

// handleDeleteMovie godoc
// @Summary Delete Movie
// @Tags movies
// @Param id path int true "Movie ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /movies/{id} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errMovieServiceMissing
	}

	id, err := movieID(c)
	if err != nil {
		return err
	}

	if err := s.MovieService.DeleteMovie(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

var errMovieServiceMissing = errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")

func movieID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, ErrInvalidMovieID
	}
	return id, nil
}

func bindMovieRequest(c echo.Context) (MovieRequest, error) {
	var req MovieRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return MovieRequest{}, errs.Errorf(errs.EUNPROCESSABLE, "validation error: %s must be of type %s", typeErr.Field, typeErr.Type)
		}
		return MovieRequest{}, ErrInvalidBody
	}
	if err := c.Validate(&req); err != nil {
		return MovieRequest{}, err
	}
	return req, nil
}
