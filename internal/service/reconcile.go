package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"media_syncer/internal/domain"
)

// ReconcileResult reports what the reconciler did with one fetch.
type ReconcileResult struct {
	Entry   *domain.CanonicalEntry
	Created bool
	Changed bool
}

// EntryReconciler decides whether a fetched title creates, updates, or
// leaves alone the canonical entry, computing the field-level diff.
type EntryReconciler struct {
	entries EntryStore
	clock   Clock
	logger  *slog.Logger
}

func NewEntryReconciler(entries EntryStore, clock Clock, logger *slog.Logger) *EntryReconciler {
	return &EntryReconciler{
		entries: entries,
		clock:   clock,
		logger:  logger,
	}
}

// Apply writes a fetched payload onto the canonical store. A nil
// existing entry means first population: the row is created and always
// counts as changed. Otherwise fields are copied only where they differ,
// ratings fill once and are never overwritten, and an identical payload
// advances nothing but the sync timestamp.
func (r *EntryReconciler) Apply(ctx context.Context, existing *domain.CanonicalEntry, payload *domain.TitlePayload) (*ReconcileResult, error) {
	now := r.clock.Now()

	if existing == nil {
		entry := &domain.CanonicalEntry{
			ExternalID:   payload.ExternalID,
			Kind:         payload.Kind,
			Description:  textPtr(payload.Overview),
			ReleaseDate:  payload.ReleaseDate,
			BackdropPath: textPtr(payload.BackdropPath),
			Popularity:   payload.Popularity,
			LastSyncedAt: now,
		}
		if payload.Rating != "" {
			entry.SetRating(payload.Rating)
		}

		if _, err := r.entries.Create(ctx, entry); err != nil {
			return nil, fmt.Errorf("create canonical entry: %w", err)
		}

		r.logger.Debug("canonical entry created",
			"external_id", entry.ExternalID,
			"kind", entry.Kind,
			"entry_id", entry.ID,
		)

		return &ReconcileResult{Entry: entry, Created: true, Changed: true}, nil
	}

	changed := r.applyDiff(existing, payload)
	existing.LastSyncedAt = now

	if changed {
		if err := r.entries.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("update canonical entry: %w", err)
		}
	} else {
		if err := r.entries.TouchSynced(ctx, existing.ExternalID, existing.Kind, now); err != nil {
			return nil, fmt.Errorf("touch canonical entry: %w", err)
		}
	}

	return &ReconcileResult{Entry: existing, Changed: changed}, nil
}

// applyDiff copies differing fields from the payload onto the entry and
// reports whether anything moved. The rating is the one exception to
// copy-on-difference: it is accepted only while unset, so an upstream
// reclassification never rewrites a recorded rating.
func (r *EntryReconciler) applyDiff(entry *domain.CanonicalEntry, payload *domain.TitlePayload) bool {
	changed := false

	if desc := textPtr(payload.Overview); !eqText(entry.Description, desc) {
		entry.Description = desc
		changed = true
	}
	if backdrop := textPtr(payload.BackdropPath); !eqText(entry.BackdropPath, backdrop) {
		entry.BackdropPath = backdrop
		changed = true
	}
	if entry.Popularity != payload.Popularity {
		entry.Popularity = payload.Popularity
		changed = true
	}
	if !eqDate(entry.ReleaseDate, payload.ReleaseDate) {
		entry.ReleaseDate = payload.ReleaseDate
		changed = true
	}
	if entry.Rating() == nil && payload.Rating != "" {
		entry.SetRating(payload.Rating)
		changed = true
	}

	return changed
}

func textPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func eqText(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func eqDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
