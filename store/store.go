package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"movieland/pkg/logger"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Options struct {
	Driver string

	// Path is the SQLite database file.
	Path string

	DBName   string
	DBUser   string
	Password string
	Host     string
	Port     string
	SSLMode  bool

	LogSQL bool
	Logger *zap.SugaredLogger
}

// NewConnection opens a gorm handle for the configured driver. The handle owns
// a connection pool; every repository call takes a scoped session from it.
func NewConnection(opts Options) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch opts.Driver {
	case "", DriverSQLite:
		dsn, err := sqliteDSN(opts.Path)
		if err != nil {
			return nil, err
		}
		dialector = sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn})
	case DriverPostgres:
		dialector = postgres.New(postgres.Config{DriverName: "postgres", DSN: postgresDSN(opts)})
	default:
		return nil, fmt.Errorf("store: unsupported driver %q", opts.Driver)
	}

	return gorm.Open(dialector, &gorm.Config{Logger: newGormLogger(opts)})
}

// Close releases every pooled connection held by db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func sqliteDSN(path string) (string, error) {
	if path == "" {
		path = "data/movies.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("store: create database dir: %w", err)
		}
	}
	// modernc applies _pragma to every new connection in the pool.
	return path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", nil
}

func postgresDSN(opts Options) string {
	sslmode := "disable"
	if opts.SSLMode {
		sslmode = "require"
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		opts.Host, opts.Port, opts.DBUser, opts.Password, opts.DBName, sslmode,
	)
}

func newGormLogger(opts Options) gormlogger.Interface {
	log := opts.Logger
	if log == nil {
		log = logger.NOOPLogger
	}

	level := gormlogger.Warn
	if opts.LogSQL {
		level = gormlogger.Info
	}

	return gormlogger.New(zap.NewStdLog(log.Desugar()), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}
