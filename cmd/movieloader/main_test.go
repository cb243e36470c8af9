package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"movieland/loader"
	"movieland/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func setupDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "movies.db")
	t.Setenv("APP_ENV", "local")
	t.Setenv("DB_DRIVER", store.DriverSQLite)
	t.Setenv("DB_PATH", path)
	return path
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func countStored(t *testing.T, path string) int64 {
	t.Helper()
	db, err := store.NewConnection(store.Options{Driver: store.DriverSQLite, Path: path})
	require.NoError(t, err)
	defer func() { _ = store.Close(db) }()

	var n int64
	require.NoError(t, db.Table("movies").Count(&n).Error)
	return n
}

func TestInitDB(t *testing.T) {
	path := setupDB(t)

	out, err := runCLI(t, "initdb")
	require.NoError(t, err)
	assert.Equal(t, "Database and tables created successfully.\n", out)
	assert.FileExists(t, path)

	out, err = runCLI(t, "initdb")
	require.NoError(t, err, "initdb should be idempotent")
	assert.Contains(t, out, "created successfully")
	assert.Equal(t, int64(0), countStored(t, path))
}

func TestSeedDemo(t *testing.T) {
	path := setupDB(t)
	_, err := runCLI(t, "initdb")
	require.NoError(t, err)

	out, err := runCLI(t, "seed-demo")
	require.NoError(t, err)
	assert.Equal(t, "Inserted 8 demo movies.\n", out)
	assert.Equal(t, int64(8), countStored(t, path))

	_, err = runCLI(t, "seed-demo")
	require.NoError(t, err)
	assert.Equal(t, int64(16), countStored(t, path))
}

func TestLoadCSV(t *testing.T) {
	t.Run("imports valid rows", func(t *testing.T) {
		path := setupDB(t)
		_, err := runCLI(t, "initdb")
		require.NoError(t, err)
		csvPath := writeCSV(t, "title,release_date,overview\n"+
			"The Matrix,1999-03-31,A hacker.\n"+
			",2000,no title\n"+
			"Heat,1995,\n")

		out, err := runCLI(t, "load-csv", csvPath)

		require.NoError(t, err)
		assert.Equal(t, "Imported 2 movies from CSV.\n", out)
		assert.Equal(t, int64(2), countStored(t, path))
	})

	t.Run("honours custom columns and row limit", func(t *testing.T) {
		path := setupDB(t)
		_, err := runCLI(t, "initdb")
		require.NoError(t, err)
		csvPath := writeCSV(t, "name,released\nA,1990\nB,1991\nC,1992\n")

		out, err := runCLI(t, "load-csv", csvPath,
			"--source-title-column", "name",
			"--source-year-column", "released",
			"--source-description-column", "",
			"--max-rows", "2")

		require.NoError(t, err)
		assert.Equal(t, "Imported 2 movies from CSV.\n", out)
		assert.Equal(t, int64(2), countStored(t, path))
	})

	t.Run("fails when no row qualifies", func(t *testing.T) {
		path := setupDB(t)
		_, err := runCLI(t, "initdb")
		require.NoError(t, err)
		csvPath := writeCSV(t, "name,year\nHeat,1995\n")

		_, err = runCLI(t, "load-csv", csvPath)

		assert.ErrorIs(t, err, loader.ErrNoValidRows)
		assert.Equal(t, "No valid rows found. Check column names.", errorText(err))
		assert.Equal(t, int64(0), countStored(t, path))
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		setupDB(t)

		_, err := runCLI(t, "load-csv", filepath.Join(t.TempDir(), "missing.csv"))

		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("requires a path", func(t *testing.T) {
		setupDB(t)

		_, err := runCLI(t, "load-csv")

		assert.Error(t, err)
	})
}

func TestList(t *testing.T) {
	setupDB(t)
	_, err := runCLI(t, "initdb")
	require.NoError(t, err)

	out, err := runCLI(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "No movies stored.\n", out)

	_, err = runCLI(t, "seed-demo")
	require.NoError(t, err)

	out, err = runCLI(t, "list")
	require.NoError(t, err)
	assert.Contains(t, strings.ToUpper(out), "TITLE")
	assert.Contains(t, out, "The Matrix")
	assert.Contains(t, out, "Toy Story")
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"ID", "Title"}, [][]string{{"1", "Heat"}, {"2"}}, []columnAlignment{alignRight})

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Heat")
	assert.Empty(t, renderTable(nil, nil, nil))
}
