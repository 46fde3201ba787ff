package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"media_syncer/internal/domain"
)

type BridgeStore struct {
	db *sqlx.DB
}

func NewBridgeStore(db *sqlx.DB) *BridgeStore {
	return &BridgeStore{db: db}
}

func (s *BridgeStore) ListByEntry(ctx context.Context, entryID int64) ([]domain.EntryPersonBridge, error) {
	query := `
		SELECT entry_id, person_id, role, sort_order
		FROM entry_person_bridges
		WHERE entry_id = $1`

	var bridges []domain.EntryPersonBridge
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &bridges, query, entryID)
	return bridges, err
}

// Upsert creates the bridge or refreshes its sort order. The unique
// constraint on (entry_id, person_id, role) keeps the triple singular.
func (s *BridgeStore) Upsert(ctx context.Context, bridge domain.EntryPersonBridge) error {
	query := `
		INSERT INTO entry_person_bridges (entry_id, person_id, role, sort_order)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (entry_id, person_id, role) DO UPDATE SET
			sort_order = EXCLUDED.sort_order`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		bridge.EntryID,
		bridge.PersonID,
		bridge.Role,
		bridge.SortOrder,
	)
	return err
}

func (s *BridgeStore) Delete(ctx context.Context, entryID, personID int64, role domain.CreditRole) error {
	query := `
		DELETE FROM entry_person_bridges
		WHERE entry_id = $1 AND person_id = $2 AND role = $3`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, entryID, personID, role)
	return err
}
