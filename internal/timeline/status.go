package timeline

import "github.com/sirapatk/clockwise/internal/domain"

// CurrentStatus derives the worker's present state from the latest
// event of the day. Clients use it to decide which actions to offer.
// No events, a checkout, or an unrecognized latest action all mean
// off the clock.
func CurrentStatus(events []domain.TimeEntryEvent) domain.WorkStatus {
	if len(events) == 0 {
		return domain.StatusOffline
	}

	latest := events[0]
	for _, ev := range events[1:] {
		if ev.Timestamp.After(latest.Timestamp) {
			latest = ev
		}
	}

	switch latest.Action {
	case domain.ActionCheckIn, domain.ActionBreakEnd:
		return domain.StatusWorking
	case domain.ActionBreakStart:
		return domain.StatusOnBreak
	default:
		return domain.StatusOffline
	}
}
