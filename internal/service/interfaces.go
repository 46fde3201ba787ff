package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"media_syncer/internal/domain"
)

// EntryStore persists canonical entries, the locally owned metadata cache.
type EntryStore interface {
	GetByExternal(ctx context.Context, externalID int64, kind domain.MediaKind) (*domain.CanonicalEntry, error)
	GetStale(ctx context.Context, olderThan time.Time) ([]domain.CanonicalEntry, error)
	Create(ctx context.Context, entry *domain.CanonicalEntry) (int64, error)
	Update(ctx context.Context, entry *domain.CanonicalEntry) error
	TouchSynced(ctx context.Context, externalID int64, kind domain.MediaKind, at time.Time) error
	Delete(ctx context.Context, id int64) error
}

// PersonStore persists credited people, keyed by external person id.
type PersonStore interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.Person, error)
	UpsertBatch(ctx context.Context, people []domain.Person) error
}

// BridgeStore persists entry-to-person role links.
type BridgeStore interface {
	ListByEntry(ctx context.Context, entryID int64) ([]domain.EntryPersonBridge, error)
	Upsert(ctx context.Context, bridge domain.EntryPersonBridge) error
	Delete(ctx context.Context, entryID, personID int64, role domain.CreditRole) error
}

// CatalogStore is the read/write contract onto the catalog subsystem's
// item rows. All writes are conditional; see the propagation rules.
type CatalogStore interface {
	GetUnlinkedIdentified(ctx context.Context) ([]domain.CatalogItem, error)
	LinkWhereUnlinked(ctx context.Context, externalID int64, kind domain.MediaKind, entryID int64) error
	SetPopularity(ctx context.Context, externalID int64, kind domain.MediaKind, popularity float64) error
	FillDescription(ctx context.Context, externalID int64, kind domain.MediaKind, description string) error
	FillBackdrop(ctx context.Context, externalID int64, kind domain.MediaKind, backdropPath string) error
	FillRating(ctx context.Context, externalID int64, kind domain.MediaKind, rating string) error
	ClearIdentity(ctx context.Context, externalID int64, kind domain.MediaKind) error
}

// Fetcher retrieves one title's metadata from the external service.
// Implementations surface domain.ErrTitleNotFound and domain.ErrTransient.
type Fetcher interface {
	FetchTitle(ctx context.Context, externalID int64, kind domain.MediaKind) (*domain.TitlePayload, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher delivers change events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event *domain.ChangeEvent) error
	Close() error
}

// Clock supplies the current UTC time for freshness comparisons and
// backoff stamping.
type Clock interface {
	Now() time.Time
}
