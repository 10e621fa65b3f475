package domain

import "time"

// LeaveRequest is a worker's request for time off. StartDate and
// EndDate are calendar dates (midnight UTC); the range is inclusive.
type LeaveRequest struct {
	ID        string
	WorkerID  string
	Type      LeaveType
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	Status    LeaveStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Days returns the inclusive length of the requested range in days.
func (l *LeaveRequest) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}
