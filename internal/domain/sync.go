package domain

import "time"

// SyncStats holds statistics about one tick of the sync loop.
type SyncStats struct {
	Scheduled int
	Fetched   int
	Created   int
	Updated   int
	Unchanged int
	Retired   int
	Errors    int
	Published int
	Duration  time.Duration
}

// Change-event actions emitted after a candidate mutates canonical state.
const (
	ChangeCreated = "created"
	ChangeUpdated = "updated"
	ChangeRetired = "retired"
)

// ChangeEvent notifies downstream consumers (push delivery, cache
// invalidation) that a title's canonical metadata moved.
type ChangeEvent struct {
	Action     string    `json:"action"`
	ExternalID int64     `json:"external_id"`
	Kind       MediaKind `json:"kind"`
	EntryID    int64     `json:"entry_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
