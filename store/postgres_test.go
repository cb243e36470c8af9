package store_test

import (
	"context"
	"testing"
	"time"

	"movieland/movie"
	"movieland/store"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

func TestPostgresMovieRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	dbName, dbUser, dbPass := "movie_test", "testuser", "testpass"
	db := CreatePostgresConnection(t, dbName, dbUser, dbPass)
	_, err := store.NewMigrator(db).Migrate()
	require.NoError(t, err)
	repo := store.NewMovieRepository(db)

	t.Run("create, update and delete round trip", func(t *testing.T) {
		created, err := repo.CreateMovie(context.Background(), movie.Input{Title: "Heat", Year: 1995})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)

		updated, err := repo.UpdateMovie(context.Background(), created.ID, movie.Input{Title: "Heat", Year: 1995, Description: strPtr("Cops and robbers.")})
		require.NoError(t, err)
		assert.Equal(t, "Cops and robbers.", *updated.Description)

		require.NoError(t, repo.DeleteMovie(context.Background(), created.ID))
		assert.Equal(t, movie.ErrNotFound, repo.DeleteMovie(context.Background(), created.ID))
	})

	t.Run("migrations are idempotent", func(t *testing.T) {
		total, err := store.NewMigrator(db).Migrate()

		require.NoError(t, err)
		assert.Zero(t, total)
	})
}

func TestNewConnection_PostgresError(t *testing.T) {
	// Use invalid options to force a connection failure
	opts := store.Options{
		Driver:   store.DriverPostgres,
		DBName:   "nonexistent",
		DBUser:   "invaliduser",
		Password: "wrongpass",
		Host:     "invalidhost", // Non-existent host to ensure failure
		Port:     "5432",
		SSLMode:  true,
	}

	_, err := store.NewConnection(opts)
	assert.Error(t, err)
}

func CreatePostgresConnection(t testing.TB, dbName string, dbUser string, dbPass string) *gorm.DB {
	t.Helper()
	ctx := context.Background()
	cont := SetupPostgresContainer(t, dbName, dbUser, dbPass)
	host, port := extractHostAndPort(t, ctx, cont)

	db, err := store.NewConnection(store.Options{
		Driver:   store.DriverPostgres,
		DBName:   dbName,
		DBUser:   dbUser,
		Password: dbPass,
		Host:     host,
		Port:     port.Port(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(db) })

	return db
}

func SetupPostgresContainer(t testing.TB, dbname, user, password string) *pgcontainer.PostgresContainer {
	t.Helper()
	ctx := context.Background()
	postgre, err := pgcontainer.RunContainer(ctx,
		testcontainers.WithImage("docker.io/postgres:15.2-alpine"),
		pgcontainer.WithDatabase(dbname),
		pgcontainer.WithUsername(user),
		pgcontainer.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, postgre.Terminate(ctx))
	})

	return postgre
}

func extractHostAndPort(t testing.TB, ctx context.Context, postgre *pgcontainer.PostgresContainer) (string, nat.Port) {
	t.Helper()
	host, err := postgre.Host(ctx)
	require.NoError(t, err, "failed to get container host")

	port, err := postgre.MappedPort(ctx, "5432")
	require.NoError(t, err, "failed to get mapped port")
	return host, port
}
