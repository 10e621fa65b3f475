package service

import "errors"

// Store boundary failures. Callers show a zero/empty state on ErrFetch
// (never stale data) and tell the user the action was not recorded on
// ErrPersist; neither is retried here.
var (
	ErrFetch   = errors.New("fetching time entries failed")
	ErrPersist = errors.New("recording time entry failed")
)

// ErrLeaveNotPending rejects status changes on already-decided leave
// requests.
var ErrLeaveNotPending = errors.New("leave request is not pending")
