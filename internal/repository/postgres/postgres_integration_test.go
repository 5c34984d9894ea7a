package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"counter-api/config"
	"counter-api/internal/entities"
	"counter-api/internal/metrics"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg, metrics.New())
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	now := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	syncUser(t, ctx, repo, "owner-1", now)

	notes := "morning run"
	entryID, err := repo.EntryNew(ctx, entities.EntryNew{
		EntryDate:       time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Entry:           25,
		Notes:           &notes,
		IsEstimate:      false,
		CreatedByUserID: "owner-1",
		CreatedDateTime: now,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, entryID)

	fetched, err := repo.EntryGet(ctx, entryID)
	require.NoError(t, err)
	require.Equal(t, entryID, fetched.ID)
	require.Equal(t, int64(25), fetched.Entry)
	require.Equal(t, "owner-1", fetched.CreatedByUserID)
	require.NotNil(t, fetched.Notes)
	require.Equal(t, notes, *fetched.Notes)
	require.False(t, fetched.IsEstimate)

	_, err = repo.EntryGet(ctx, uuid.New())
	require.ErrorIs(t, err, entities.ErrEntryNotFound)

	estimate := true
	editedID, err := repo.EntryEdit(ctx, entities.EntryEdit{
		EntryID:         entryID,
		EntryDate:       time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
		Entry:           40,
		Notes:           nil,
		IsEstimate:      &estimate,
		UpdatedByUserID: "owner-1",
		UpdatedDateTime: now.Add(time.Hour),
	})
	require.NoError(t, err)
	require.Equal(t, entryID, editedID)

	edited, err := repo.EntryGet(ctx, entryID)
	require.NoError(t, err)
	require.Equal(t, int64(40), edited.Entry)
	require.Nil(t, edited.Notes)
	require.True(t, edited.IsEstimate)
	require.Equal(t, "2024-06-11", edited.EntryDate.Format("2006-01-02"))

	// A nil flag keeps the stored value.
	_, err = repo.EntryEdit(ctx, entities.EntryEdit{
		EntryID:         entryID,
		EntryDate:       edited.EntryDate,
		Entry:           40,
		IsEstimate:      nil,
		UpdatedByUserID: "owner-1",
		UpdatedDateTime: now.Add(2 * time.Hour),
	})
	require.NoError(t, err)

	kept, err := repo.EntryGet(ctx, entryID)
	require.NoError(t, err)
	require.True(t, kept.IsEstimate)

	_, err = repo.EntryEdit(ctx, entities.EntryEdit{
		EntryID:         uuid.New(),
		EntryDate:       edited.EntryDate,
		Entry:           1,
		UpdatedByUserID: "owner-1",
		UpdatedDateTime: now,
	})
	require.ErrorIs(t, err, entities.ErrEntryNotFound)

	deletedID, err := repo.EntryDelete(ctx, entities.EntryDelete{
		EntryID:         entryID,
		DeletedByUserID: "owner-1",
		DeletedDateTime: now.Add(3 * time.Hour),
	})
	require.NoError(t, err)
	require.Equal(t, entryID, deletedID)

	// Soft-deleted rows are invisible to reads and to repeat deletes.
	_, err = repo.EntryGet(ctx, entryID)
	require.ErrorIs(t, err, entities.ErrEntryNotFound)

	_, err = repo.EntryDelete(ctx, entities.EntryDelete{
		EntryID:         entryID,
		DeletedByUserID: "owner-1",
		DeletedDateTime: now.Add(4 * time.Hour),
	})
	require.ErrorIs(t, err, entities.ErrEntryNotFound)
}

func TestEntryListIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg, metrics.New())
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	syncUser(t, ctx, repo, "owner-1", now)
	syncUser(t, ctx, repo, "owner-2", now)

	newEntry := func(owner string, day int, value int64, notes *string, createdAt time.Time) uuid.UUID {
		id, err := repo.EntryNew(ctx, entities.EntryNew{
			EntryDate:       time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC),
			Entry:           value,
			Notes:           notes,
			CreatedByUserID: owner,
			CreatedDateTime: createdAt,
		})
		require.NoError(t, err)
		return id
	}

	walk := "walk to work"
	run := "evening run"
	newEntry("owner-1", 9, 10, &walk, now)
	later := newEntry("owner-1", 9, 20, &run, now.Add(time.Hour))
	newEntry("owner-1", 11, 30, nil, now)
	newEntry("owner-2", 11, 99, nil, now)

	deleted := newEntry("owner-1", 11, 40, nil, now)
	_, err := repo.EntryDelete(ctx, entities.EntryDelete{
		EntryID:         deleted,
		DeletedByUserID: "owner-1",
		DeletedDateTime: now,
	})
	require.NoError(t, err)

	entries, err := repo.EntryList(ctx, "owner-1", "")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest date first, then newest creation within a date.
	require.Equal(t, "2024-06-11", entries[0].EntryDate.Format("2006-01-02"))
	require.Equal(t, "2024-06-09", entries[1].EntryDate.Format("2006-01-02"))
	require.Equal(t, later, entries[1].ID)
	require.Equal(t, int64(10), entries[2].Entry)

	for _, e := range entries {
		require.Equal(t, "owner-1", e.CreatedByUserID)
	}

	filtered, err := repo.EntryList(ctx, "owner-1", "RUN")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.Equal(t, later, filtered[0].ID)

	none, err := repo.EntryList(ctx, "owner-1", "swim")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestUserSynchroniseIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg, metrics.New())
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	// Repeated synchronisation of the same subject stays a single row and
	// picks up claim changes.
	require.NoError(t, repo.UserSynchronise(ctx, entities.UserSynchronise{
		UserID:          "user-1",
		Name:            "Ada Lovelace",
		Email:           "ada@example.com",
		UpdatedDateTime: now,
	}))
	require.NoError(t, repo.UserSynchronise(ctx, entities.UserSynchronise{
		UserID:          "user-1",
		Name:            "Ada King",
		Email:           "ada@example.com",
		UpdatedDateTime: now.Add(time.Hour),
	}))

	var count int
	var name string
	row := repo.db.QueryRow(ctx, "SELECT COUNT(*) FROM users WHERE user_id = $1", "user-1")
	require.NoError(t, row.Scan(&count))
	require.Equal(t, 1, count)

	row = repo.db.QueryRow(ctx, "SELECT name FROM users WHERE user_id = $1", "user-1")
	require.NoError(t, row.Scan(&name))
	require.Equal(t, "Ada King", name)
}

func syncUser(t *testing.T, ctx context.Context, repo *Postgres, userID string, at time.Time) {
	t.Helper()

	require.NoError(t, repo.UserSynchronise(ctx, entities.UserSynchronise{
		UserID:          userID,
		Name:            userID,
		Email:           userID + "@example.com",
		UpdatedDateTime: at,
	}))
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=counter_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "counter_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=counter_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
