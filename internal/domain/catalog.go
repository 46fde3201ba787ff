package domain

import "time"

// CatalogItem is a row in the user's library. The catalog subsystem owns
// the row lifecycle; the sync engine only links items to canonical
// entries and fills metadata fields conservatively (empty fields only),
// with popularity and the link kept in lockstep with the entry.
type CatalogItem struct {
	ID           int64     `db:"id"`
	ExternalID   *int64    `db:"external_id"`
	Kind         MediaKind `db:"kind"`
	EntryID      *int64    `db:"entry_id"`
	Description  *string   `db:"description"`
	BackdropPath *string   `db:"backdrop_path"`
	Popularity   *float64  `db:"popularity"`
	Rating       *string   `db:"rating"`
	AddedAt      time.Time `db:"added_at"`
}
