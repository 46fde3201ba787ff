package domain

import "time"

// MediaKind discriminates movie titles from series titles. A canonical
// entry is unique per (external id, kind) pair because the upstream
// service keeps separate id spaces for movies and TV.
type MediaKind string

const (
	KindMovie  MediaKind = "movie"
	KindSeries MediaKind = "series"
)

// CanonicalEntry is the locally cached, deduplicated record of one
// external title's metadata. Rows are created on first successful fetch,
// mutated only by reconciliation, and deleted only when the upstream
// service reports the title gone.
type CanonicalEntry struct {
	ID           int64      `db:"id"`
	ExternalID   int64      `db:"external_id"`
	Kind         MediaKind  `db:"kind"`
	Description  *string    `db:"description"`
	MovieRating  *string    `db:"movie_rating"`
	TVRating     *string    `db:"tv_rating"`
	ReleaseDate  *time.Time `db:"release_date"`
	BackdropPath *string    `db:"backdrop_path"`
	Popularity   float64    `db:"popularity"`
	LastSyncedAt time.Time  `db:"last_synced_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// Rating returns the age rating for the entry's kind, or nil when unset.
// Only one of the two rating columns is ever populated per row.
func (e *CanonicalEntry) Rating() *string {
	if e.Kind == KindSeries {
		return e.TVRating
	}
	return e.MovieRating
}

// SetRating stores an age rating into the kind-appropriate column.
func (e *CanonicalEntry) SetRating(rating string) {
	if e.Kind == KindSeries {
		e.TVRating = &rating
		return
	}
	e.MovieRating = &rating
}

// IsFresh reports whether the entry was synchronized within the window.
func (e *CanonicalEntry) IsFresh(now time.Time, window time.Duration) bool {
	return now.Sub(e.LastSyncedAt) < window
}

// Person is one row per external person id. People are never deleted;
// an uncredited person is simply unreferenced, which avoids re-fetch
// churn when credits reappear on another title.
type Person struct {
	ID         int64   `db:"id"`
	Name       string  `db:"name"`
	AvatarPath *string `db:"avatar_path"`
}

// CreditRole is the role a person holds on a canonical entry. The crew
// roles are single-holder: at most one bridge per entry carries each.
type CreditRole string

const (
	RoleCast         CreditRole = "cast"
	RoleDirector     CreditRole = "director"
	RoleProducer     CreditRole = "producer"
	RoleExecProducer CreditRole = "executive_producer"
	RoleWriter       CreditRole = "writer"
)

// EntryPersonBridge links a canonical entry to a credited person. At
// most one bridge exists per (entry, person, role) triple. SortOrder is
// the upstream billing order for cast and always 0 for crew roles.
type EntryPersonBridge struct {
	EntryID   int64      `db:"entry_id"`
	PersonID  int64      `db:"person_id"`
	Role      CreditRole `db:"role"`
	SortOrder int        `db:"sort_order"`
}
