package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"media_syncer/internal/domain"
)

// CatalogStore mutates catalog item rows owned by the catalog
// subsystem. Every write is a minimal conditional UPDATE so that only
// rows genuinely needing the value are touched; locally curated fields
// are never overwritten.
type CatalogStore struct {
	db *sqlx.DB
}

func NewCatalogStore(db *sqlx.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// GetUnlinkedIdentified returns catalog items that carry an external id
// but no canonical link yet, oldest added first.
func (s *CatalogStore) GetUnlinkedIdentified(ctx context.Context) ([]domain.CatalogItem, error) {
	query := `
		SELECT id, external_id, kind, entry_id, description, backdrop_path,
			popularity, rating, added_at
		FROM catalog_items
		WHERE external_id IS NOT NULL AND entry_id IS NULL
		ORDER BY added_at ASC`

	var items []domain.CatalogItem
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &items, query)
	return items, err
}

// LinkWhereUnlinked sets the canonical link on rows that have none.
// First link wins; a row is never re-pointed at a different entry.
func (s *CatalogStore) LinkWhereUnlinked(ctx context.Context, externalID int64, kind domain.MediaKind, entryID int64) error {
	query := `
		UPDATE catalog_items
		SET entry_id = $3
		WHERE external_id = $1 AND kind = $2 AND entry_id IS NULL`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, externalID, kind, entryID)
	return err
}

// SetPopularity keeps popularity in lockstep with the canonical entry
// on every referencing row, unconditionally.
func (s *CatalogStore) SetPopularity(ctx context.Context, externalID int64, kind domain.MediaKind, popularity float64) error {
	query := `
		UPDATE catalog_items
		SET popularity = $3
		WHERE external_id = $1 AND kind = $2`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, externalID, kind, popularity)
	return err
}

func (s *CatalogStore) FillDescription(ctx context.Context, externalID int64, kind domain.MediaKind, description string) error {
	return s.fillIfEmpty(ctx, "description", externalID, kind, description)
}

func (s *CatalogStore) FillBackdrop(ctx context.Context, externalID int64, kind domain.MediaKind, backdropPath string) error {
	return s.fillIfEmpty(ctx, "backdrop_path", externalID, kind, backdropPath)
}

// FillRating copies the canonical rating only into rows whose rating is
// unset. Once a rating is recorded, by any means, it stays.
func (s *CatalogStore) FillRating(ctx context.Context, externalID int64, kind domain.MediaKind, rating string) error {
	query := `
		UPDATE catalog_items
		SET rating = $3
		WHERE external_id = $1 AND kind = $2 AND rating IS NULL`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, externalID, kind, rating)
	return err
}

// ClearIdentity downgrades every referencing row to unidentified after
// the title is retired upstream. The row itself belongs to the user's
// library and is never deleted here.
func (s *CatalogStore) ClearIdentity(ctx context.Context, externalID int64, kind domain.MediaKind) error {
	query := `
		UPDATE catalog_items
		SET external_id = NULL, entry_id = NULL, popularity = NULL
		WHERE external_id = $1 AND kind = $2`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, externalID, kind)
	return err
}

// fillIfEmpty writes a text column only where it is currently NULL or
// empty. column is always a compile-time constant, never user input.
func (s *CatalogStore) fillIfEmpty(ctx context.Context, column string, externalID int64, kind domain.MediaKind, value string) error {
	query := `
		UPDATE catalog_items
		SET ` + column + ` = $3
		WHERE external_id = $1 AND kind = $2
			AND (` + column + ` IS NULL OR ` + column + ` = '')`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, externalID, kind, value)
	return err
}
