package domain

import "errors"

// ErrTitleNotFound means the upstream service no longer knows the title.
// It drives canonical entry retirement and catalog unlinking.
var ErrTitleNotFound = errors.New("title no longer exists upstream")

// ErrTransient covers network and service failures, including malformed
// payloads. A transient failure advances the entry's sync timestamp so
// a broken id rests for a full freshness window instead of hot-looping.
var ErrTransient = errors.New("transient metadata service failure")
