package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirapatk/clockwise/internal/domain"
	"github.com/sirapatk/clockwise/internal/timeline"
)

// FormatDayReport renders today's status, totals and entry log.
// Both the one-shot `today` command and every frame of the live view
// go through here; the report must already be evaluated at now.
func FormatDayReport(report *timeline.DayReport, status domain.WorkStatus, entries []domain.TimeEntryEvent, now time.Time) string {
	var b strings.Builder

	b.WriteString(StatusPill(status))
	b.WriteString(Dim("  " + HumanDate(now.UTC()) + "  " + ClockTime(now)))
	b.WriteString("\n\n")

	b.WriteString(formatTotals(report))

	if report.Session != nil {
		b.WriteString("\n")
		b.WriteString(formatSession(report))
	}

	if len(entries) > 0 {
		b.WriteString("\n")
		b.WriteString(formatEntries(entries))
	}

	return RenderBox("Today", strings.TrimRight(b.String(), "\n"))
}

func formatTotals(report *timeline.DayReport) string {
	t := report.Totals
	worked := StyleBold.Render(fmt.Sprintf("%dh %02dm", t.Hours, t.Minutes))
	line := fmt.Sprintf("Worked %s", worked)
	if t.BreakMinutes > 0 {
		line += Dim(fmt.Sprintf("  (%s break)", FormatMinutes(t.BreakMinutes)))
	}
	return line + "\n"
}

func formatSession(report *timeline.DayReport) string {
	s := report.Session
	end := ClockTime(s.End)
	if s.Open() {
		end = StyleGreen.Render("now")
	}
	line := fmt.Sprintf("Session %s – %s", ClockTime(s.Start), end)

	for _, br := range report.Breaks {
		line += "\n" + Dim(fmt.Sprintf("  break %s – %s (%s)",
			ClockTime(br.Start), ClockTime(br.End), FormatMinutes(br.Minutes)))
	}
	return line + "\n"
}

func formatEntries(entries []domain.TimeEntryEvent) string {
	headers := []string{"TIME", "ACTION", "MODE", "LOCATION"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		loc := Dim("--")
		if e.Location != nil {
			loc = Dim("recorded")
		}
		rows = append(rows, []string{
			ClockTime(e.Timestamp),
			ActionLabel(e.Action),
			e.WorkMode,
			loc,
		})
	}
	return RenderTable(headers, rows)
}
