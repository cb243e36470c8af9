package loader

import (
	"context"
	"fmt"
	"io"
	"os"

	"movieland/errs"
	"movieland/movie"
	"movieland/pkg/logger"

	"go.uber.org/zap"
)

var ErrNoValidRows = errs.Errorf(errs.EINVALID, "No valid rows found. Check column names.")

type Repository interface {
	AllMovies(ctx context.Context) ([]movie.Movie, error)
	CreateMovies(ctx context.Context, inputs []movie.Input) (int, error)
}

type Migrator interface {
	Migrate() (int, error)
}

// Result summarises a CSV import.
type Result struct {
	Read     int
	Skipped  int
	Inserted int
}

type Loader struct {
	repo     Repository
	migrator Migrator
	logger   *zap.SugaredLogger
}

func New(repo Repository, migrator Migrator, log *zap.SugaredLogger) *Loader {
	if log == nil {
		log = logger.NOOPLogger
	}
	return &Loader{repo: repo, migrator: migrator, logger: log}
}

// InitSchema applies pending migrations and reports how many ran.
func (l *Loader) InitSchema() (int, error) {
	total, err := l.migrator.Migrate()
	if err != nil {
		return 0, fmt.Errorf("init schema: %w", err)
	}
	l.logger.Debugw("applied migrations", "total", total)
	return total, nil
}

func (l *Loader) SeedDemo(ctx context.Context) (int, error) {
	return l.repo.CreateMovies(ctx, DemoMovies())
}

func (l *Loader) ImportCSVFile(ctx context.Context, path string, opts CSVOptions) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	return l.ImportCSV(ctx, f, opts)
}

// ImportCSV stores every valid row of r in one batch. Nothing is written when
// no row qualifies.
func (l *Loader) ImportCSV(ctx context.Context, r io.Reader, opts CSVOptions) (Result, error) {
	inputs, skips, err := ReadCSV(r, opts)
	if err != nil {
		return Result{}, err
	}

	for _, s := range skips {
		l.logger.Debugw("skipped csv row", "line", s.Line, "reason", s.Reason)
	}

	res := Result{Read: len(inputs) + len(skips), Skipped: len(skips)}
	if len(inputs) == 0 {
		return res, ErrNoValidRows
	}

	res.Inserted, err = l.repo.CreateMovies(ctx, inputs)
	if err != nil {
		return res, err
	}
	return res, nil
}

func (l *Loader) ListMovies(ctx context.Context) ([]movie.Movie, error) {
	return l.repo.AllMovies(ctx)
}
