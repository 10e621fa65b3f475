package timeline

import (
	"sort"
	"time"

	"github.com/sirapatk/clockwise/internal/domain"
)

// Reconstruct rebuilds the single daily session and its break
// intervals from one worker's events for one UTC day, evaluated at
// now. The input may arrive in any order; it is stably sorted
// ascending by timestamp before the scan, so any permutation of the
// same events yields the same result.
//
// Scan semantics, kept bit-exact for payroll purposes:
//   - checkin overwrites the registered session start (a second
//     check-in without an intervening checkout wins; this system
//     models a single session per day)
//   - checkout overwrites the registered session end
//   - break_start overwrites an unclosed break start
//   - break_end without an open break is dropped silently
//   - unknown actions are skipped, not rejected
//
// Without a check-in there is no session: a lone checkout or break
// pair never produces output. An open session or break is closed at
// the session end (checkout, or now when still checked in).
func Reconstruct(events []domain.TimeEntryEvent, now time.Time) (*Session, []BreakInterval) {
	sorted := make([]domain.TimeEntryEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	var checkIn, checkOut, breakStart time.Time
	var checkedIn, checkedOut, onBreak bool
	var breaks []BreakInterval

	for _, ev := range sorted {
		switch ev.Action {
		case domain.ActionCheckIn:
			checkIn = ev.Timestamp
			checkedIn = true
		case domain.ActionCheckOut:
			checkOut = ev.Timestamp
			checkedOut = true
		case domain.ActionBreakStart:
			breakStart = ev.Timestamp
			onBreak = true
		case domain.ActionBreakEnd:
			if onBreak {
				breaks = append(breaks, BreakInterval{Start: breakStart, End: ev.Timestamp})
				onBreak = false
			}
		}
	}

	if !checkedIn {
		return nil, nil
	}

	sessionEnd := now
	if checkedOut {
		sessionEnd = checkOut
	}
	if onBreak {
		breaks = append(breaks, BreakInterval{Start: breakStart, End: sessionEnd})
	}

	session := &Session{
		Start:   checkIn,
		End:     sessionEnd,
		Minutes: wholeMinutes(sessionEnd.Sub(checkIn)),
		open:    !checkedOut,
	}

	for i := range breaks {
		breaks[i] = clampToSession(breaks[i], checkIn, sessionEnd)
	}

	return session, breaks
}

// clampToSession truncates a break to the overlap with the session
// bounds. A break fully outside the session keeps its clamped bounds
// in the list but contributes zero minutes.
func clampToSession(b BreakInterval, sessionStart, sessionEnd time.Time) BreakInterval {
	if b.Start.Before(sessionStart) {
		b.Start = sessionStart
	}
	if b.End.After(sessionEnd) {
		b.End = sessionEnd
	}
	b.Minutes = wholeMinutes(b.End.Sub(b.Start))
	if b.Minutes < 0 {
		b.Minutes = 0
	}
	return b
}
