package movie

import "context"

type Service interface {
	ListMovies(ctx context.Context) ([]Movie, error)
	GetMovie(ctx context.Context, id int64) (Movie, error)
	CreateMovie(ctx context.Context, in Input) (Movie, error)
	UpdateMovie(ctx context.Context, id int64, in Input) (Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
}

// Repository returns ErrNotFound from FindMovie, UpdateMovie and DeleteMovie
// when no row has the given id.
type Repository interface {
	AllMovies(ctx context.Context) ([]Movie, error)
	FindMovie(ctx context.Context, id int64) (Movie, error)
	CreateMovie(ctx context.Context, in Input) (Movie, error)
	UpdateMovie(ctx context.Context, id int64, in Input) (Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListMovies(ctx context.Context) ([]Movie, error) {
	movies, err := uc.r.AllMovies(ctx)
	if err != nil {
		return nil, err
	}
	if movies == nil {
		movies = []Movie{}
	}
	return movies, nil
}

func (uc *Usecase) GetMovie(ctx context.Context, id int64) (Movie, error) {
	return uc.r.FindMovie(ctx, id)
}

func (uc *Usecase) CreateMovie(ctx context.Context, in Input) (Movie, error) {
	if err := in.Validate(); err != nil {
		return Movie{}, err
	}
	return uc.r.CreateMovie(ctx, in)
}

func (uc *Usecase) UpdateMovie(ctx context.Context, id int64, in Input) (Movie, error) {
	if err := in.Validate(); err != nil {
		return Movie{}, err
	}
	return uc.r.UpdateMovie(ctx, id, in)
}

func (uc *Usecase) DeleteMovie(ctx context.Context, id int64) error {
	return uc.r.DeleteMovie(ctx, id)
}
