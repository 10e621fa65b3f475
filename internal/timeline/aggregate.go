package timeline

import (
	"time"

	"github.com/sirapatk/clockwise/internal/domain"
)

// Aggregate reduces a reconstructed timeline into daily totals.
// Break minutes are summed from the already-clamped intervals; the
// net is floored at zero so excess break time never yields negative
// worked time.
func Aggregate(session *Session, breaks []BreakInterval) DailyTotals {
	if session == nil {
		return DailyTotals{}
	}

	breakMinutes := 0
	for _, b := range breaks {
		breakMinutes += b.Minutes
	}

	net := session.Minutes - breakMinutes
	if net < 0 {
		net = 0
	}

	return DailyTotals{
		WorkMinutes:  session.Minutes,
		BreakMinutes: breakMinutes,
		NetMinutes:   net,
		Hours:        net / 60,
		Minutes:      net % 60,
	}
}

// BuildDayReport runs reconstruction and aggregation in one step.
// It is the function the display layer calls on every recomputation
// trigger (after an append, or on the wall-clock tick that advances
// now for an open session).
func BuildDayReport(events []domain.TimeEntryEvent, now time.Time) DayReport {
	session, breaks := Reconstruct(events, now)
	return DayReport{
		Session: session,
		Breaks:  breaks,
		Totals:  Aggregate(session, breaks),
	}
}
