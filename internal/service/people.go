package service

import (
	"context"
	"fmt"
	"log/slog"

	"media_syncer/internal/domain"
)

// PeopleResolver makes sure every person credited by a fetched title
// exists in the store with a current name and avatar. Lookups run in
// bounded batches; people are inserted or refreshed but never removed.
type PeopleResolver struct {
	people    PersonStore
	batchSize int
	logger    *slog.Logger
}

func NewPeopleResolver(people PersonStore, batchSize int, logger *slog.Logger) *PeopleResolver {
	return &PeopleResolver{
		people:    people,
		batchSize: batchSize,
		logger:    logger,
	}
}

func (r *PeopleResolver) Resolve(ctx context.Context, payload *domain.TitlePayload) error {
	ids := payload.PersonIDs()

	for start := 0; start < len(ids); start += r.batchSize {
		batch := ids[start:min(start+r.batchSize, len(ids))]

		existing, err := r.people.GetByIDs(ctx, batch)
		if err != nil {
			return fmt.Errorf("load people batch: %w", err)
		}

		var upserts []domain.Person
		for _, id := range batch {
			credit, ok := payload.CreditByPerson(id)
			if !ok {
				continue
			}
			incoming := domain.Person{
				ID:         id,
				Name:       credit.Name,
				AvatarPath: textPtr(credit.AvatarPath),
			}

			stored, exists := existing[id]
			if !exists || stored.Name != incoming.Name || !eqText(stored.AvatarPath, incoming.AvatarPath) {
				upserts = append(upserts, incoming)
			}
		}

		if err := r.people.UpsertBatch(ctx, upserts); err != nil {
			return fmt.Errorf("upsert people batch: %w", err)
		}

		if len(upserts) > 0 {
			r.logger.Debug("people refreshed", "count", len(upserts))
		}
	}

	return nil
}
