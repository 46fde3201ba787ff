package service

import (
	"context"
	"fmt"
	"log/slog"

	"media_syncer/internal/domain"
)

// Propagator pushes verified canonical facts onto every catalog item
// sharing the (external id, kind) pair. Propagation is conservative:
// only the link and popularity are kept in lockstep; description,
// backdrop, and rating land only where the catalog row has nothing yet.
type Propagator struct {
	catalog CatalogStore
	logger  *slog.Logger
}

func NewPropagator(catalog CatalogStore, logger *slog.Logger) *Propagator {
	return &Propagator{
		catalog: catalog,
		logger:  logger,
	}
}

func (p *Propagator) Apply(ctx context.Context, entry *domain.CanonicalEntry) error {
	if err := p.catalog.LinkWhereUnlinked(ctx, entry.ExternalID, entry.Kind, entry.ID); err != nil {
		return fmt.Errorf("link catalog items: %w", err)
	}
	if err := p.catalog.SetPopularity(ctx, entry.ExternalID, entry.Kind, entry.Popularity); err != nil {
		return fmt.Errorf("set popularity: %w", err)
	}
	if entry.Description != nil {
		if err := p.catalog.FillDescription(ctx, entry.ExternalID, entry.Kind, *entry.Description); err != nil {
			return fmt.Errorf("fill description: %w", err)
		}
	}
	if entry.BackdropPath != nil {
		if err := p.catalog.FillBackdrop(ctx, entry.ExternalID, entry.Kind, *entry.BackdropPath); err != nil {
			return fmt.Errorf("fill backdrop: %w", err)
		}
	}
	if rating := entry.Rating(); rating != nil {
		if err := p.catalog.FillRating(ctx, entry.ExternalID, entry.Kind, *rating); err != nil {
			return fmt.Errorf("fill rating: %w", err)
		}
	}

	p.logger.Debug("canonical facts propagated",
		"external_id", entry.ExternalID,
		"kind", entry.Kind,
		"entry_id", entry.ID,
	)

	return nil
}

// Retire downgrades every referencing catalog item to unidentified
// after the title disappeared upstream.
func (p *Propagator) Retire(ctx context.Context, externalID int64, kind domain.MediaKind) error {
	if err := p.catalog.ClearIdentity(ctx, externalID, kind); err != nil {
		return fmt.Errorf("clear catalog identity: %w", err)
	}
	return nil
}
