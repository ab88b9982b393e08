package store

import (
	"context"
	"testing"

	"github.com/AdamBeresnev/futsal-cup/internal/db"
	"github.com/AdamBeresnev/futsal-cup/internal/fixture"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database and applies migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Open("file::memory:")
	require.NoError(t, err, "Failed to connect to in-memory DB")

	require.NoError(t, db.RunMigrations(database), "Failed to apply migrations")
	// Applying again is a no-op
	require.NoError(t, db.RunMigrations(database))

	return database
}

func TestInsertAndListMatches(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	store := NewMatchStore(database)

	records := []fixture.MatchRecord{
		{ID: 9, Teams: "C vs D", Date: "02/12", Time: "19:00", Description: "second", LiveStreamLink: "https://example.com/b"},
		{ID: 2, Teams: "A vs B", Date: "01/12", Time: "18:00", Description: "first", LiveStreamLink: "https://example.com/a"},
	}

	tx, err := database.BeginTxx(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, store.InsertMatches(context.Background(), tx, records))
	require.NoError(t, tx.Commit())

	got, err := store.ListMatches(context.Background())
	require.NoError(t, err)

	// Insert order wins over id order
	require.Len(t, got, 2)
	assert.Equal(t, records[0], got[0])
	assert.Equal(t, records[1], got[1])
}

func TestInsertMatches_Empty(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	tx, err := database.BeginTxx(context.Background(), nil)
	require.NoError(t, err)
	defer tx.Rollback()

	assert.NoError(t, NewMatchStore(database).InsertMatches(context.Background(), tx, nil))
}

func TestSeedAndLoadCatalog(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	store := NewMatchStore(database)
	ctx := context.Background()

	require.NoError(t, store.SeedCatalog(ctx, fixture.Default()))
	// Seeding twice replaces rather than duplicates
	require.NoError(t, store.SeedCatalog(ctx, fixture.Default()))

	catalog, err := store.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, fixture.Default().All(), catalog.All())
}

func TestLoadCatalog_EmptyDatabase(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	catalog, err := NewMatchStore(database).LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, catalog.Len())
}
