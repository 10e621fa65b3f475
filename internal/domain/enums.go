package domain

// EntryAction is the kind of a time entry event. The set is closed;
// values outside it are carried in the store but skipped by the
// timeline reconstruction (forward compatibility with newer clients).
type EntryAction string

const (
	ActionCheckIn    EntryAction = "checkin"
	ActionCheckOut   EntryAction = "checkout"
	ActionBreakStart EntryAction = "break_start"
	ActionBreakEnd   EntryAction = "break_end"
)

// KnownActions is the canonical set of accepted action strings.
var KnownActions = map[string]bool{
	"checkin": true, "checkout": true,
	"break_start": true, "break_end": true,
}

type WorkStatus string

const (
	StatusWorking WorkStatus = "working"
	StatusOnBreak WorkStatus = "on_break"
	StatusOffline WorkStatus = "offline"
)

// Common work mode tags. WorkMode is free-form; these are only the
// values the stock clients offer.
const (
	ModeOffice  = "office"
	ModeHome    = "wfh"
	ModeField   = "field"
	ModeMeeting = "meeting"
)

type LeaveType string

const (
	LeaveVacation LeaveType = "vacation"
	LeaveSick     LeaveType = "sick"
	LeavePersonal LeaveType = "personal"
)

// ValidLeaveTypes is the canonical set of accepted leave type strings.
var ValidLeaveTypes = map[string]bool{
	"vacation": true, "sick": true, "personal": true,
}

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)
