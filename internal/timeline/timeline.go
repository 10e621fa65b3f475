// Package timeline derives a worker's daily work timeline from raw
// time entry events. Everything here is a pure function of an event
// snapshot and an evaluation instant; nothing is persisted and no
// clock is read, so callers can recompute as often as they like
// (an open session grows with the "now" they pass in).
package timeline

import "time"

// Session is one continuous work interval bounded by a check-in and a
// check-out, or by the evaluation instant when the worker has not
// checked out yet.
type Session struct {
	Start   time.Time
	End     time.Time
	Minutes int

	open bool
}

// Open reports whether the session end was supplied by the evaluation
// instant rather than a checkout event.
func (s *Session) Open() bool {
	return s != nil && s.open
}

// BreakInterval is a pause inside a session. Bounds are clamped to the
// enclosing session; an interval pushed outside the session keeps its
// clamped bounds and contributes zero minutes.
type BreakInterval struct {
	Start   time.Time
	End     time.Time
	Minutes int
}

// DailyTotals is the aggregation result for one UTC calendar day.
// Net minutes never go negative no matter how much break time was
// recorded; Hours and Minutes split the net via integer div/mod 60.
type DailyTotals struct {
	WorkMinutes  int
	BreakMinutes int
	NetMinutes   int
	Hours        int
	Minutes      int
}

// DayReport bundles the reconstructed timeline with its totals for
// the display layer.
type DayReport struct {
	Session *Session
	Breaks  []BreakInterval
	Totals  DailyTotals
}

// wholeMinutes converts a duration to whole minutes, truncating toward
// zero. Payroll math never rounds: 59.9s of work is 0 minutes.
func wholeMinutes(d time.Duration) int {
	return int(d / time.Minute)
}

// DayWindow returns the UTC day bounds containing t:
// [00:00:00.000, 23:59:59.999]. Store queries must use this window
// regardless of the local display timezone.
func DayWindow(t time.Time) (start, end time.Time) {
	u := t.UTC()
	start = time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	end = start.Add(24*time.Hour - time.Millisecond)
	return start, end
}
