package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"media_syncer/internal/config"
	"media_syncer/internal/domain"
	"media_syncer/internal/service/mocks"
	"media_syncer/testdata/utils"
)

type SyncServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	fetcher   *mocks.MockFetcher
	entries   *mocks.MockEntryStore
	people    *mocks.MockPersonStore
	bridges   *mocks.MockBridgeStore
	catalog   *mocks.MockCatalogStore
	txManager *mocks.MockTransactionManager
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock

	service *SyncService
	cfg     config.SyncConfig
	logger  *slog.Logger
	now     time.Time
}

func (s *SyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.fetcher = mocks.NewMockFetcher(s.ctrl)
	s.entries = mocks.NewMockEntryStore(s.ctrl)
	s.people = mocks.NewMockPersonStore(s.ctrl)
	s.bridges = mocks.NewMockBridgeStore(s.ctrl)
	s.catalog = mocks.NewMockCatalogStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)
	s.clock = mocks.NewMockClock(s.ctrl)

	s.cfg = config.SyncConfig{
		Interval:        5 * time.Minute,
		FreshnessWindow: 24 * time.Hour,
		PeopleBatchSize: 50,
	}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	s.clock.EXPECT().Now().Return(s.now).AnyTimes()

	s.service = NewSyncService(
		s.fetcher,
		s.entries,
		s.people,
		s.bridges,
		s.catalog,
		s.txManager,
		s.publisher,
		s.clock,
		s.logger,
		s.cfg,
	)
}

func (s *SyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}

// expectTransaction runs the transactional function against the same
// context, the way the real manager does after BeginTxx.
func (s *SyncServiceTestSuite) expectTransaction(ctx context.Context) {
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *SyncServiceTestSuite) TestSync_NewLinkEndToEnd() {
	ctx := context.Background()

	items := []domain.CatalogItem{
		{ID: 1, ExternalID: utils.Ptr(int64(603)), Kind: domain.KindMovie, Description: utils.Ptr("")},
	}
	payload := &domain.TitlePayload{
		ExternalID: 603,
		Kind:       domain.KindMovie,
		Overview:   "A hit man on the run",
		Popularity: 41.3,
		Rating:     "R",
		Cast: []domain.Credit{
			{PersonID: 5, Name: "Keanu Reeves", AvatarPath: "/keanu.jpg", Order: 0},
		},
		Crew: []domain.Credit{
			{PersonID: 9, Name: "Lana Wachowski", Job: "Director"},
		},
	}

	s.catalog.EXPECT().GetUnlinkedIdentified(ctx).Return(items, nil)
	s.entries.EXPECT().GetStale(ctx, s.now.Add(-24*time.Hour)).Return(nil, nil)

	s.entries.EXPECT().GetByExternal(ctx, int64(603), domain.KindMovie).Return(nil, nil)
	s.fetcher.EXPECT().FetchTitle(ctx, int64(603), domain.KindMovie).Return(payload, nil)

	s.expectTransaction(ctx)

	s.entries.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *domain.CanonicalEntry) (int64, error) {
			s.Equal(int64(603), entry.ExternalID)
			s.Equal(domain.KindMovie, entry.Kind)
			s.Require().NotNil(entry.Description)
			s.Equal("A hit man on the run", *entry.Description)
			s.Equal(41.3, entry.Popularity)
			s.Require().NotNil(entry.MovieRating)
			s.Equal("R", *entry.MovieRating)
			s.Nil(entry.TVRating)
			s.Equal(s.now, entry.LastSyncedAt)
			entry.ID = 10
			return 10, nil
		},
	)

	s.people.EXPECT().GetByIDs(ctx, []int64{5, 9}).Return(map[int64]domain.Person{}, nil)
	s.people.EXPECT().UpsertBatch(ctx, []domain.Person{
		{ID: 5, Name: "Keanu Reeves", AvatarPath: utils.Ptr("/keanu.jpg")},
		{ID: 9, Name: "Lana Wachowski"},
	}).Return(nil)

	s.bridges.EXPECT().ListByEntry(ctx, int64(10)).Return(nil, nil)
	s.bridges.EXPECT().Upsert(ctx, domain.EntryPersonBridge{
		EntryID: 10, PersonID: 5, Role: domain.RoleCast, SortOrder: 0,
	}).Return(nil)
	s.bridges.EXPECT().Upsert(ctx, domain.EntryPersonBridge{
		EntryID: 10, PersonID: 9, Role: domain.RoleDirector,
	}).Return(nil)

	s.catalog.EXPECT().LinkWhereUnlinked(ctx, int64(603), domain.KindMovie, int64(10)).Return(nil)
	s.catalog.EXPECT().SetPopularity(ctx, int64(603), domain.KindMovie, 41.3).Return(nil)
	s.catalog.EXPECT().FillDescription(ctx, int64(603), domain.KindMovie, "A hit man on the run").Return(nil)
	s.catalog.EXPECT().FillRating(ctx, int64(603), domain.KindMovie, "R").Return(nil)

	s.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event *domain.ChangeEvent) error {
			s.Equal(domain.ChangeCreated, event.Action)
			s.Equal(int64(603), event.ExternalID)
			s.Equal(int64(10), event.EntryID)
			return nil
		},
	)

	stats, err := s.service.Sync(ctx)

	s.NoError(err)
	s.Equal(1, stats.Scheduled)
	s.Equal(1, stats.Fetched)
	s.Equal(1, stats.Created)
	s.Equal(0, stats.Errors)
	s.Equal(1, stats.Published)
}

func (s *SyncServiceTestSuite) TestSync_DedupesSharedExternalID() {
	ctx := context.Background()

	// Two catalog items referencing the same title produce one fetch.
	items := []domain.CatalogItem{
		{ID: 1, ExternalID: utils.Ptr(int64(603)), Kind: domain.KindMovie},
		{ID: 2, ExternalID: utils.Ptr(int64(603)), Kind: domain.KindMovie},
	}
	payload := &domain.TitlePayload{
		ExternalID: 603,
		Kind:       domain.KindMovie,
		Overview:   "A hit man on the run",
		Popularity: 41.3,
	}

	s.catalog.EXPECT().GetUnlinkedIdentified(ctx).Return(items, nil)
	s.entries.EXPECT().GetStale(ctx, gomock.Any()).Return(nil, nil)

	s.entries.EXPECT().GetByExternal(ctx, int64(603), domain.KindMovie).Return(nil, nil).Times(1)
	s.fetcher.EXPECT().FetchTitle(ctx, int64(603), domain.KindMovie).Return(payload, nil).Times(1)

	s.expectTransaction(ctx)
	s.entries.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *domain.CanonicalEntry) (int64, error) {
			entry.ID = 10
			return 10, nil
		},
	).Times(1)

	s.bridges.EXPECT().ListByEntry(ctx, int64(10)).Return(nil, nil)

	s.catalog.EXPECT().LinkWhereUnlinked(ctx, int64(603), domain.KindMovie, int64(10)).Return(nil)
	s.catalog.EXPECT().SetPopularity(ctx, int64(603), domain.KindMovie, 41.3).Return(nil)
	s.catalog.EXPECT().FillDescription(ctx, int64(603), domain.KindMovie, "A hit man on the run").Return(nil)

	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	stats, err := s.service.Sync(ctx)

	s.NoError(err)
	s.Equal(1, stats.Scheduled)
	s.Equal(1, stats.Created)
}

func (s *SyncServiceTestSuite) TestSync_StaleQueueSkipsPairsFromLinkQueue() {
	ctx := context.Background()

	items := []domain.CatalogItem{
		{ID: 1, ExternalID: utils.Ptr(int64(603)), Kind: domain.KindMovie},
	}
	stale := []domain.CanonicalEntry{
		{ID: 10, ExternalID: 603, Kind: domain.KindMovie, LastSyncedAt: s.now.Add(-48 * time.Hour)},
	}
	payload := &domain.TitlePayload{ExternalID: 603, Kind: domain.KindMovie, Popularity: 41.3}

	s.catalog.EXPECT().GetUnlinkedIdentified(ctx).Return(items, nil)
	s.entries.EXPECT().GetStale(ctx, gomock.Any()).Return(stale, nil)

	// The pair appears in both queues; it is processed exactly once.
	s.entries.EXPECT().GetByExternal(ctx, int64(603), domain.KindMovie).Return(&stale[0], nil).Times(1)
	s.fetcher.EXPECT().FetchTitle(ctx, int64(603), domain.KindMovie).Return(payload, nil).Times(1)

	s.expectTransaction(ctx)
	s.entries.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	s.bridges.EXPECT().ListByEntry(ctx, int64(10)).Return(nil, nil)

	s.catalog.EXPECT().LinkWhereUnlinked(ctx, int64(603), domain.KindMovie, int64(10)).Return(nil)
	s.catalog.EXPECT().SetPopularity(ctx, int64(603), domain.KindMovie, 41.3).Return(nil)

	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	stats, err := s.service.Sync(ctx)

	s.NoError(err)
	s.Equal(1, stats.Scheduled)
	s.Equal(1, stats.Updated)
}

func (s *SyncServiceTestSuite) TestSync_UnchangedStaleEntrySkipsPropagation() {
	ctx := context.Background()

	entry := domain.CanonicalEntry{
		ID:           10,
		ExternalID:   603,
		Kind:         domain.KindMovie,
		Description:  utils.Ptr("A hit man on the run"),
		MovieRating:  utils.Ptr("R"),
		Popularity:   41.3,
		LastSyncedAt: s.now.Add(-48 * time.Hour),
	}
	payload := &domain.TitlePayload{
		ExternalID: 603,
		Kind:       domain.KindMovie,
		Overview:   "A hit man on the run",
		Popularity: 41.3,
		Rating:     "R",
	}

	s.catalog.EXPECT().GetUnlinkedIdentified(ctx).Return(nil, nil)
	s.entries.EXPECT().GetStale(ctx, gomock.Any()).Return([]domain.CanonicalEntry{entry}, nil)

	s.entries.EXPECT().GetByExternal(ctx, int64(603), domain.KindMovie).Return(&entry, nil)
	s.fetcher.EXPECT().FetchTitle(ctx, int64(603), domain.KindMovie).Return(payload, nil)

	s.expectTransaction(ctx)
	s.entries.EXPECT().TouchSynced(ctx, int64(603), domain.KindMovie, s.now).Return(nil)
	s.bridges.EXPECT().ListByEntry(ctx, int64(10)).Return(nil, nil)

	// No propagation, no event: nothing changed and nothing was forced.
	stats, err := s.service.Sync(ctx)

	s.NoError(err)
	s.Equal(1, stats.Unchanged)
	s.Equal(0, stats.Updated)
	s.Equal(0, stats.Published)
}

func (s *SyncServiceTestSuite) TestSync_TransientFailureStampsBackoff() {
	ctx := context.Background()

	entry := domain.CanonicalEntry{
		ID:           10,
		ExternalID:   603,
		Kind:         domain.KindMovie,
		LastSyncedAt: s.now.Add(-48 * time.Hour),
	}

	s.catalog.EXPECT().GetUnlinkedIdentified(ctx).Return(nil, nil)
	s.entries.EXPECT().GetStale(ctx, gomock.Any()).Return([]domain.CanonicalEntry{entry}, nil)

	s.entries.EXPECT().GetByExternal(ctx, int64(603), domain.KindMovie).Return(&entry, nil)
	s.fetcher.EXPECT().FetchTitle(ctx, int64(603), domain.KindMovie).
		Return(nil, fmt.Errorf("%w: after 3 attempts", domain.ErrTransient))

	// The timestamp advances so the id rests for a full window; nothing
	// else moves.
	s.entries.EXPECT().TouchSynced(ctx, int64(603), domain.KindMovie, s.now).Return(nil)

	stats, err := s.service.Sync(ctx)

	s.NoError(err)
	s.Equal(1, stats.Errors)
	s.Equal(0, stats.Fetched)
	s.Equal(0, stats.Updated)
}

func (s *SyncServiceTestSuite) TestSync_RetirementClearsCatalog() {
	ctx := context.Background()

	entry := domain.CanonicalEntry{
		ID:           10,
		ExternalID:   603,
		Kind:         domain.KindMovie,
		LastSyncedAt: s.now.Add(-48 * time.Hour),
	}

	s.catalog.EXPECT().GetUnlinkedIdentified(ctx).Return(nil, nil)
	s.entries.EXPECT().GetStale(ctx, gomock.Any()).Return([]domain.CanonicalEntry{entry}, nil)

	s.entries.EXPECT().GetByExternal(ctx, int64(603), domain.KindMovie).Return(&entry, nil)
	s.fetcher.EXPECT().FetchTitle(ctx, int64(603), domain.KindMovie).Return(nil, domain.ErrTitleNotFound)

	s.entries.EXPECT().Delete(ctx, int64(10)).Return(nil)
	s.catalog.EXPECT().ClearIdentity(ctx, int64(603), domain.KindMovie).Return(nil)

	s.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event *domain.ChangeEvent) error {
			s.Equal(domain.ChangeRetired, event.Action)
			s.Equal(int64(10), event.EntryID)
			return nil
		},
	)

	stats, err := s.service.Sync(ctx)

	s.NoError(err)
	s.Equal(1, stats.Retired)
	s.Equal(1, stats.Published)
}

func (s *SyncServiceTestSuite) TestSync_NotFoundWithoutEntryStillClearsItems() {
	ctx := context.Background()

	// An unlinked item referencing an id that is already gone upstream.
	items := []domain.CatalogItem{
		{ID: 1, ExternalID: utils.Ptr(int64(999)), Kind: domain.KindSeries},
	}

	s.catalog.EXPECT().GetUnlinkedIdentified(ctx).Return(items, nil)
	s.entries.EXPECT().GetStale(ctx, gomock.Any()).Return(nil, nil)

	s.entries.EXPECT().GetByExternal(ctx, int64(999), domain.KindSeries).Return(nil, nil)
	s.fetcher.EXPECT().FetchTitle(ctx, int64(999), domain.KindSeries).Return(nil, domain.ErrTitleNotFound)

	s.catalog.EXPECT().ClearIdentity(ctx, int64(999), domain.KindSeries).Return(nil)

	stats, err := s.service.Sync(ctx)

	s.NoError(err)
	s.Equal(1, stats.Retired)
	s.Equal(0, stats.Published)
}

func (s *SyncServiceTestSuite) TestSync_StoreErrorSkipsWithoutBackoff() {
	ctx := context.Background()

	entry := domain.CanonicalEntry{
		ID:           10,
		ExternalID:   603,
		Kind:         domain.KindMovie,
		LastSyncedAt: s.now.Add(-48 * time.Hour),
	}

	s.catalog.EXPECT().GetUnlinkedIdentified(ctx).Return(nil, nil)
	s.entries.EXPECT().GetStale(ctx, gomock.Any()).Return([]domain.CanonicalEntry{entry}, nil)

	// A local persistence failure: no fetch, no timestamp advance, the
	// candidate is simply retried next tick.
	s.entries.EXPECT().GetByExternal(ctx, int64(603), domain.KindMovie).
		Return(nil, errors.New("connection refused"))

	stats, err := s.service.Sync(ctx)

	s.NoError(err)
	s.Equal(1, stats.Errors)
	s.Equal(0, stats.Fetched)
}

func (s *SyncServiceTestSuite) TestSync_RolledBackWriteDoesNotPropagate() {
	ctx := context.Background()

	entry := domain.CanonicalEntry{
		ID:           10,
		ExternalID:   603,
		Kind:         domain.KindMovie,
		LastSyncedAt: s.now.Add(-48 * time.Hour),
	}
	payload := &domain.TitlePayload{
		ExternalID: 603,
		Kind:       domain.KindMovie,
		Overview:   "Rewritten overview",
		Popularity: 50,
	}

	s.catalog.EXPECT().GetUnlinkedIdentified(ctx).Return(nil, nil)
	s.entries.EXPECT().GetStale(ctx, gomock.Any()).Return([]domain.CanonicalEntry{entry}, nil)

	s.entries.EXPECT().GetByExternal(ctx, int64(603), domain.KindMovie).Return(&entry, nil)
	s.fetcher.EXPECT().FetchTitle(ctx, int64(603), domain.KindMovie).Return(payload, nil)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).Return(errors.New("deadlock detected"))

	stats, err := s.service.Sync(ctx)

	s.NoError(err)
	s.Equal(1, stats.Errors)
	s.Equal(0, stats.Updated)
	s.Equal(0, stats.Published)
}

func (s *SyncServiceTestSuite) TestSync_PublishFailureCountsError() {
	ctx := context.Background()

	items := []domain.CatalogItem{
		{ID: 1, ExternalID: utils.Ptr(int64(603)), Kind: domain.KindMovie},
	}
	payload := &domain.TitlePayload{ExternalID: 603, Kind: domain.KindMovie, Popularity: 41.3}

	s.catalog.EXPECT().GetUnlinkedIdentified(ctx).Return(items, nil)
	s.entries.EXPECT().GetStale(ctx, gomock.Any()).Return(nil, nil)

	s.entries.EXPECT().GetByExternal(ctx, int64(603), domain.KindMovie).Return(nil, nil)
	s.fetcher.EXPECT().FetchTitle(ctx, int64(603), domain.KindMovie).Return(payload, nil)

	s.expectTransaction(ctx)
	s.entries.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *domain.CanonicalEntry) (int64, error) {
			entry.ID = 10
			return 10, nil
		},
	)
	s.bridges.EXPECT().ListByEntry(ctx, int64(10)).Return(nil, nil)

	s.catalog.EXPECT().LinkWhereUnlinked(ctx, int64(603), domain.KindMovie, int64(10)).Return(nil)
	s.catalog.EXPECT().SetPopularity(ctx, int64(603), domain.KindMovie, 41.3).Return(nil)

	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("channel closed"))

	stats, err := s.service.Sync(ctx)

	s.NoError(err)
	s.Equal(1, stats.Created)
	s.Equal(0, stats.Published)
	s.Equal(1, stats.Errors)
}
