package domain

import "time"

// TimeEntryEvent is one recorded worker action. Events are immutable
// and append-only; the daily timeline is derived from them on demand.
// Location is an opaque "lat,lng" payload (nil when the client did not
// capture a position) and is never interpreted here.
type TimeEntryEvent struct {
	ID        string
	WorkerID  string
	Action    EntryAction
	WorkMode  string
	Location  *string
	Timestamp time.Time
	CreatedAt time.Time
}
