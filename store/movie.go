package store

import (
	"context"
	"errors"
	"fmt"

	"movieland/movie"

	"gorm.io/gorm"
)

const batchSize = 100

// MovieModel represents the database model for movies
type MovieModel struct {
	ID          int64   `gorm:"primaryKey"`
	Title       string  `gorm:"not null"`
	Year        int     `gorm:"not null"`
	Description *string
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

func (m MovieModel) toMovie() movie.Movie {
	return movie.Movie{
		ID:          m.ID,
		Title:       m.Title,
		Year:        m.Year,
		Description: m.Description,
	}
}

func (m *MovieModel) apply(in movie.Input) {
	m.Title = in.Title
	m.Year = in.Year
	m.Description = in.Description
}

// MovieRepository implements movie.Repository and the loader's batch insert.
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) AllMovies(ctx context.Context) ([]movie.Movie, error) {
	var models []MovieModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = model.toMovie()
	}
	return movies, nil
}

func (r *MovieRepository) FindMovie(ctx context.Context, id int64) (movie.Movie, error) {
	model, err := findMovie(r.db.WithContext(ctx), id)
	if err != nil {
		return movie.Movie{}, err
	}
	return model.toMovie(), nil
}

func (r *MovieRepository) CreateMovie(ctx context.Context, in movie.Input) (movie.Movie, error) {
	var model MovieModel
	model.apply(in)

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return movie.Movie{}, fmt.Errorf("create movie: %w", err)
	}
	return model.toMovie(), nil
}

// UpdateMovie overwrites every field of the movie, even unchanged ones.
func (r *MovieRepository) UpdateMovie(ctx context.Context, id int64, in movie.Input) (movie.Movie, error) {
	var model MovieModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := findMovie(tx, id)
		if err != nil {
			return err
		}

		model = found
		model.apply(in)
		if err := tx.Save(&model).Error; err != nil {
			return fmt.Errorf("update movie: %w", err)
		}
		return nil
	})
	if err != nil {
		return movie.Movie{}, err
	}
	return model.toMovie(), nil
}

func (r *MovieRepository) DeleteMovie(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model, err := findMovie(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Delete(&model).Error; err != nil {
			return fmt.Errorf("delete movie: %w", err)
		}
		return nil
	})
}

// CreateMovies inserts all inputs in a single transaction; either every row
// is stored or none is.
func (r *MovieRepository) CreateMovies(ctx context.Context, inputs []movie.Input) (int, error) {
	if len(inputs) == 0 {
		return 0, nil
	}

	models := make([]MovieModel, len(inputs))
	for i, in := range inputs {
		models[i].apply(in)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&models, batchSize).Error
	})
	if err != nil {
		return 0, fmt.Errorf("create movies: %w", err)
	}
	return len(models), nil
}

func findMovie(db *gorm.DB, id int64) (MovieModel, error) {
	var model MovieModel
	if err := db.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MovieModel{}, movie.ErrNotFound
		}
		return MovieModel{}, fmt.Errorf("find movie %d: %w", id, err)
	}
	return model, nil
}
