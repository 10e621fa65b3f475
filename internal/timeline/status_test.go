package timeline

import (
	"testing"

	"github.com/sirapatk/clockwise/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCurrentStatus(t *testing.T) {
	cases := []struct {
		name   string
		events []domain.TimeEntryEvent
		want   domain.WorkStatus
	}{
		{
			name: "no events",
			want: domain.StatusOffline,
		},
		{
			name:   "checked in",
			events: []domain.TimeEntryEvent{entry(domain.ActionCheckIn, at(9, 0))},
			want:   domain.StatusWorking,
		},
		{
			name: "checked out",
			events: []domain.TimeEntryEvent{
				entry(domain.ActionCheckIn, at(9, 0)),
				entry(domain.ActionCheckOut, at(17, 0)),
			},
			want: domain.StatusOffline,
		},
		{
			name: "on break",
			events: []domain.TimeEntryEvent{
				entry(domain.ActionCheckIn, at(9, 0)),
				entry(domain.ActionBreakStart, at(12, 0)),
			},
			want: domain.StatusOnBreak,
		},
		{
			name: "back from break",
			events: []domain.TimeEntryEvent{
				entry(domain.ActionCheckIn, at(9, 0)),
				entry(domain.ActionBreakStart, at(12, 0)),
				entry(domain.ActionBreakEnd, at(12, 30)),
			},
			want: domain.StatusWorking,
		},
		{
			name: "latest wins regardless of slice order",
			events: []domain.TimeEntryEvent{
				entry(domain.ActionCheckOut, at(17, 0)),
				entry(domain.ActionCheckIn, at(9, 0)),
			},
			want: domain.StatusOffline,
		},
		{
			name:   "unknown latest action",
			events: []domain.TimeEntryEvent{entry(domain.EntryAction("standup"), at(9, 0))},
			want:   domain.StatusOffline,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CurrentStatus(tc.events))
		})
	}
}
