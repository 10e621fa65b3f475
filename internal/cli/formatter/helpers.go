package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirapatk/clockwise/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatMinutes converts raw minutes into "Xh Ym" form.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// ClockTime renders a timestamp as a HH:MM:SS wall clock in UTC.
func ClockTime(t time.Time) string {
	return t.UTC().Format("15:04:05")
}

// HumanDate returns a short absolute date.
func HumanDate(t time.Time) string {
	return t.Format("Mon Jan 2, 2006")
}

// StatusPill returns a colored indicator for the worker's status.
func StatusPill(status domain.WorkStatus) string {
	switch status {
	case domain.StatusWorking:
		return StyleGreen.Render("● Working")
	case domain.StatusOnBreak:
		return StyleYellow.Render("◐ On break")
	default:
		return StyleDim.Render("○ Off the clock")
	}
}

// ActionLabel returns the display name for an entry action.
func ActionLabel(action domain.EntryAction) string {
	switch action {
	case domain.ActionCheckIn:
		return StyleGreen.Render("Check in")
	case domain.ActionCheckOut:
		return StyleRed.Render("Check out")
	case domain.ActionBreakStart:
		return StyleYellow.Render("Break start")
	case domain.ActionBreakEnd:
		return StyleBlue.Render("Break end")
	default:
		return StyleDim.Render(string(action))
	}
}

// LeavePill returns a colored indicator for a leave request status.
func LeavePill(status domain.LeaveStatus) string {
	switch status {
	case domain.LeaveApproved:
		return StyleGreen.Render("✔ Approved")
	case domain.LeaveRejected:
		return StyleRed.Render("✖ Rejected")
	default:
		return StyleYellow.Render("… Pending")
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
