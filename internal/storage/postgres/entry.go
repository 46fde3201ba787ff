package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"media_syncer/internal/domain"
)

const entryColumns = `id, external_id, kind, description, movie_rating, tv_rating,
		release_date, backdrop_path, popularity, last_synced_at, created_at, updated_at`

type EntryStore struct {
	db *sqlx.DB
}

func NewEntryStore(db *sqlx.DB) *EntryStore {
	return &EntryStore{db: db}
}

// GetByExternal returns the canonical entry for an (external id, kind)
// pair, or nil when no row exists.
func (s *EntryStore) GetByExternal(ctx context.Context, externalID int64, kind domain.MediaKind) (*domain.CanonicalEntry, error) {
	query := `SELECT ` + entryColumns + `
		FROM canonical_entries
		WHERE external_id = $1 AND kind = $2`

	var entry domain.CanonicalEntry
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &entry, query, externalID, kind)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetStale returns entries last synchronized before the cutoff, oldest
// first, so routine refresh always serves the longest-waiting titles.
func (s *EntryStore) GetStale(ctx context.Context, olderThan time.Time) ([]domain.CanonicalEntry, error) {
	query := `SELECT ` + entryColumns + `
		FROM canonical_entries
		WHERE last_synced_at < $1
		ORDER BY last_synced_at ASC`

	var entries []domain.CanonicalEntry
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &entries, query, olderThan)
	return entries, err
}

func (s *EntryStore) Create(ctx context.Context, entry *domain.CanonicalEntry) (int64, error) {
	query := `
		INSERT INTO canonical_entries (
			external_id, kind, description, movie_rating, tv_rating,
			release_date, backdrop_path, popularity, last_synced_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		entry.ExternalID,
		entry.Kind,
		entry.Description,
		entry.MovieRating,
		entry.TVRating,
		entry.ReleaseDate,
		entry.BackdropPath,
		entry.Popularity,
		entry.LastSyncedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	entry.ID = id
	return id, nil
}

func (s *EntryStore) Update(ctx context.Context, entry *domain.CanonicalEntry) error {
	query := `
		UPDATE canonical_entries SET
			description = $1,
			movie_rating = $2,
			tv_rating = $3,
			release_date = $4,
			backdrop_path = $5,
			popularity = $6,
			last_synced_at = $7,
			updated_at = NOW()
		WHERE id = $8`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entry.Description,
		entry.MovieRating,
		entry.TVRating,
		entry.ReleaseDate,
		entry.BackdropPath,
		entry.Popularity,
		entry.LastSyncedAt,
		entry.ID,
	)
	return err
}

// TouchSynced advances only the sync timestamp. Used both after a
// no-change refresh and as the backoff stamp after a transient failure;
// a missing row makes this a no-op.
func (s *EntryStore) TouchSynced(ctx context.Context, externalID int64, kind domain.MediaKind, at time.Time) error {
	query := `
		UPDATE canonical_entries
		SET last_synced_at = $3
		WHERE external_id = $1 AND kind = $2`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, externalID, kind, at)
	return err
}

// Delete removes a retired entry; its bridges go with it via cascade.
func (s *EntryStore) Delete(ctx context.Context, id int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM canonical_entries WHERE id = $1", id)
	return err
}
