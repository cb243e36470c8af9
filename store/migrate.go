package store

import (
	"embed"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
	"gorm.io/gorm"
)

//go:embed migrations
var migrationFiles embed.FS

// Migrator applies the embedded schema migrations for the dialect of db.
type Migrator struct {
	db *gorm.DB
}

func NewMigrator(db *gorm.DB) *Migrator {
	return &Migrator{db: db}
}

// Migrate runs all pending up migrations and returns how many were applied.
// Applied migrations are recorded, so running it again is a no-op.
func (m *Migrator) Migrate() (int, error) {
	sqlDB, err := m.db.DB()
	if err != nil {
		return 0, fmt.Errorf("store: get sql db: %w", err)
	}

	dialect, root, err := migrationDialect(m.db.Dialector.Name())
	if err != nil {
		return 0, err
	}

	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       root,
	}

	total, err := migrate.Exec(sqlDB, dialect, source, migrate.Up)
	if err != nil {
		return 0, fmt.Errorf("store: apply migrations: %w", err)
	}
	return total, nil
}

func migrationDialect(name string) (string, string, error) {
	switch name {
	case "sqlite":
		return "sqlite3", "migrations/sqlite", nil
	case "postgres":
		return "postgres", "migrations/postgres", nil
	}
	return "", "", fmt.Errorf("store: no migrations for dialect %q", name)
}
