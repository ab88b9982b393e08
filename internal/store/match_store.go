package store

import (
	"context"
	"fmt"

	"github.com/AdamBeresnev/futsal-cup/internal/fixture"
	"github.com/jmoiron/sqlx"
)

const (
	listMatchesQuery = `
		SELECT id, teams, match_date, match_time, description, live_stream_link
		FROM matches
		ORDER BY position ASC, id ASC
	`
	insertMatchQuery = `
		INSERT INTO matches (id, position, teams, match_date, match_time, description, live_stream_link)
		VALUES (:id, :position, :teams, :match_date, :match_time, :description, :live_stream_link)
	`
)

type matchRow struct {
	fixture.MatchRecord
	Position int `db:"position"`
}

// MatchStore reads match fixtures from a SQLite database.
type MatchStore struct {
	db *sqlx.DB
}

func NewMatchStore(db *sqlx.DB) *MatchStore {
	return &MatchStore{db: db}
}

func (s *MatchStore) ListMatches(ctx context.Context) ([]fixture.MatchRecord, error) {
	var matches []fixture.MatchRecord
	err := s.db.SelectContext(ctx, &matches, listMatchesQuery)
	return matches, err
}

// InsertMatches stores records keeping their slice order as the display order.
func (s *MatchStore) InsertMatches(ctx context.Context, tx *sqlx.Tx, records []fixture.MatchRecord) error {
	if len(records) == 0 {
		return nil
	}
	rows := make([]matchRow, len(records))
	for i, r := range records {
		rows[i] = matchRow{MatchRecord: r, Position: i}
	}
	_, err := tx.NamedExecContext(ctx, insertMatchQuery, rows)
	return err
}

// LoadCatalog snapshots the stored fixtures into an immutable catalog.
func (s *MatchStore) LoadCatalog(ctx context.Context) (*fixture.Catalog, error) {
	matches, err := s.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return fixture.NewCatalog(matches)
}

// SeedCatalog replaces the stored fixtures with the records of catalog.
func (s *MatchStore) SeedCatalog(ctx context.Context, catalog *fixture.Catalog) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM matches"); err != nil {
		return fmt.Errorf("failed to clear matches: %w", err)
	}
	if err := s.InsertMatches(ctx, tx, catalog.All()); err != nil {
		return fmt.Errorf("failed to insert matches: %w", err)
	}
	return tx.Commit()
}
