package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"media_syncer/internal/domain"
)

type PersonStore struct {
	db *sqlx.DB
}

func NewPersonStore(db *sqlx.DB) *PersonStore {
	return &PersonStore{db: db}
}

// GetByIDs returns the stored people for the given external person ids,
// keyed by id. Missing ids are simply absent from the map.
func (s *PersonStore) GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.Person, error) {
	if len(ids) == 0 {
		return make(map[int64]domain.Person), nil
	}

	query := `SELECT id, name, avatar_path FROM people WHERE id = ANY($1)`

	var people []domain.Person
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &people, query, pq.Array(ids)); err != nil {
		return nil, err
	}

	result := make(map[int64]domain.Person, len(people))
	for _, p := range people {
		result[p.ID] = p
	}
	return result, nil
}

// UpsertBatch inserts or refreshes people in one statement. People are
// never deleted, only inserted or renamed.
func (s *PersonStore) UpsertBatch(ctx context.Context, people []domain.Person) error {
	if len(people) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO people (id, name, avatar_path) VALUES ")
	valueArgs := make([]interface{}, 0, len(people)*3)

	for i, person := range people {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($")
		sb.WriteString(strconv.Itoa(i*3 + 1))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(i*3 + 2))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(i*3 + 3))
		sb.WriteString(")")
		valueArgs = append(valueArgs, person.ID, person.Name, person.AvatarPath)
	}
	sb.WriteString(` ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		avatar_path = EXCLUDED.avatar_path`)

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), valueArgs...)
	return err
}
