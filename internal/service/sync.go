package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"media_syncer/internal/config"
	"media_syncer/internal/domain"
)

// candidate is one (external id, kind) pair due for work this tick.
// force marks candidates from the newly-linked queue, which propagate
// even when the canonical entry turns out unchanged.
type candidate struct {
	externalID int64
	kind       domain.MediaKind
	force      bool
}

type pairKey struct {
	externalID int64
	kind       domain.MediaKind
}

// SyncService runs one tick of the reconciliation pipeline: schedule
// candidates, then for each one fetch, reconcile, resolve people,
// converge credits, and propagate, strictly one candidate at a time.
type SyncService struct {
	fetcher    Fetcher
	entries    EntryStore
	catalog    CatalogStore
	txManager  TransactionManager
	publisher  Publisher
	clock      Clock
	reconciler *EntryReconciler
	people     *PeopleResolver
	credits    *CreditSynchronizer
	propagator *Propagator
	logger     *slog.Logger
	config     config.SyncConfig
}

func NewSyncService(
	fetcher Fetcher,
	entries EntryStore,
	people PersonStore,
	bridges BridgeStore,
	catalog CatalogStore,
	txManager TransactionManager,
	publisher Publisher,
	clock Clock,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		fetcher:    fetcher,
		entries:    entries,
		catalog:    catalog,
		txManager:  txManager,
		publisher:  publisher,
		clock:      clock,
		reconciler: NewEntryReconciler(entries, clock, logger),
		people:     NewPeopleResolver(people, cfg.PeopleBatchSize, logger),
		credits:    NewCreditSynchronizer(bridges, logger),
		propagator: NewPropagator(catalog, logger),
		logger:     logger,
		config:     cfg,
	}
}

// Sync processes one tick. Per-candidate failures are contained here;
// only scheduling failures surface to the caller.
func (s *SyncService) Sync(ctx context.Context) (*domain.SyncStats, error) {
	startTime := time.Now()

	candidates, err := s.collectCandidates(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.SyncStats{Scheduled: len(candidates)}

	s.logger.Info("starting sync tick",
		"candidates", len(candidates),
		"freshness_window", s.config.FreshnessWindow,
	)

	for i, cand := range candidates {
		if ctx.Err() != nil {
			s.logger.Info("sync tick cancelled", "processed", i)
			break
		}
		if i > 0 && s.config.PacingDelay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(s.config.PacingDelay):
			}
		}
		s.processCandidate(ctx, cand, stats)
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("sync tick completed",
		"scheduled", stats.Scheduled,
		"fetched", stats.Fetched,
		"created", stats.Created,
		"updated", stats.Updated,
		"unchanged", stats.Unchanged,
		"retired", stats.Retired,
		"errors", stats.Errors,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

// collectCandidates builds the tick's work list: catalog items with an
// external id but no canonical link yet (oldest added first, deduped by
// pair, forced), then canonical entries past the freshness window
// (oldest synchronized first). The first queue fully drains before the
// second starts.
func (s *SyncService) collectCandidates(ctx context.Context) ([]candidate, error) {
	items, err := s.catalog.GetUnlinkedIdentified(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[pairKey]struct{}, len(items))
	var candidates []candidate
	for _, item := range items {
		if item.ExternalID == nil {
			continue
		}
		key := pairKey{*item.ExternalID, item.Kind}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		candidates = append(candidates, candidate{
			externalID: *item.ExternalID,
			kind:       item.Kind,
			force:      true,
		})
	}

	stale, err := s.entries.GetStale(ctx, s.clock.Now().Add(-s.config.FreshnessWindow))
	if err != nil {
		return nil, err
	}
	for _, entry := range stale {
		key := pairKey{entry.ExternalID, entry.Kind}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		candidates = append(candidates, candidate{
			externalID: entry.ExternalID,
			kind:       entry.Kind,
		})
	}

	return candidates, nil
}

// processCandidate runs the whole pipeline for one pair. Nothing it
// does may stop the loop: store failures are logged and skipped without
// advancing the sync timestamp (retried next tick), fetch failures and
// panics stamp the timestamp so the pair rests for a freshness window.
func (s *SyncService) processCandidate(ctx context.Context, cand candidate, stats *domain.SyncStats) {
	logger := s.logger.With("external_id", cand.externalID, "kind", cand.kind)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("candidate panicked", "panic", r)
			stats.Errors++
			if err := s.entries.TouchSynced(ctx, cand.externalID, cand.kind, s.clock.Now()); err != nil {
				logger.Error("failed to stamp backoff", "error", err)
			}
		}
	}()

	entry, err := s.entries.GetByExternal(ctx, cand.externalID, cand.kind)
	if err != nil {
		logger.Error("failed to load canonical entry", "error", err)
		stats.Errors++
		return
	}

	// Only stale or absent pairs get scheduled, so a fresh entry here
	// means another queue already handled the pair this tick.
	if entry != nil && !cand.force && entry.IsFresh(s.clock.Now(), s.config.FreshnessWindow) {
		stats.Unchanged++
		return
	}

	payload, err := s.fetcher.FetchTitle(ctx, cand.externalID, cand.kind)
	if errors.Is(err, domain.ErrTitleNotFound) {
		s.retire(ctx, logger, entry, cand, stats)
		return
	}
	if err != nil {
		logger.Warn("title fetch failed", "error", err)
		stats.Errors++
		if entry != nil {
			// Deliberate backoff: stamp the timestamp so a broken id
			// is not retried until the next freshness window.
			if touchErr := s.entries.TouchSynced(ctx, cand.externalID, cand.kind, s.clock.Now()); touchErr != nil {
				logger.Error("failed to stamp backoff", "error", touchErr)
			}
		}
		return
	}
	stats.Fetched++

	var result *ReconcileResult
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		if result, err = s.reconciler.Apply(txCtx, entry, payload); err != nil {
			return err
		}
		if err := s.people.Resolve(txCtx, payload); err != nil {
			return err
		}
		return s.credits.Sync(txCtx, result.Entry.ID, payload)
	})
	if err != nil {
		logger.Error("canonical write failed", "error", err)
		stats.Errors++
		return
	}

	switch {
	case result.Created:
		stats.Created++
	case result.Changed:
		stats.Updated++
	default:
		stats.Unchanged++
	}

	if result.Changed || cand.force {
		if err := s.propagator.Apply(ctx, result.Entry); err != nil {
			logger.Error("propagation failed", "error", err)
			stats.Errors++
			return
		}
	}

	if result.Created || result.Changed {
		action := domain.ChangeUpdated
		if result.Created {
			action = domain.ChangeCreated
		}
		s.publish(ctx, logger, stats, &domain.ChangeEvent{
			Action:     action,
			ExternalID: cand.externalID,
			Kind:       cand.kind,
			EntryID:    result.Entry.ID,
			Timestamp:  s.clock.Now(),
		})
	}
}

// retire handles an upstream NotFound: the canonical entry is deleted
// and every referencing catalog row is downgraded to unidentified.
func (s *SyncService) retire(ctx context.Context, logger *slog.Logger, entry *domain.CanonicalEntry, cand candidate, stats *domain.SyncStats) {
	var entryID int64
	if entry != nil {
		entryID = entry.ID
		if err := s.entries.Delete(ctx, entry.ID); err != nil {
			logger.Error("failed to delete retired entry", "error", err)
			stats.Errors++
			return
		}
	}

	if err := s.propagator.Retire(ctx, cand.externalID, cand.kind); err != nil {
		logger.Error("failed to clear catalog identity", "error", err)
		stats.Errors++
		return
	}

	stats.Retired++
	logger.Info("title retired upstream", "entry_id", entryID)

	if entry != nil {
		s.publish(ctx, logger, stats, &domain.ChangeEvent{
			Action:     domain.ChangeRetired,
			ExternalID: cand.externalID,
			Kind:       cand.kind,
			EntryID:    entryID,
			Timestamp:  s.clock.Now(),
		})
	}
}

func (s *SyncService) publish(ctx context.Context, logger *slog.Logger, stats *domain.SyncStats, event *domain.ChangeEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Error("failed to publish change event", "error", err)
		stats.Errors++
		return
	}
	stats.Published++
}
