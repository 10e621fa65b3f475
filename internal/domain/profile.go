package domain

import "time"

// WorkerProfile holds a worker's display identity plus the
// notification and privacy toggles from the settings page.
type WorkerProfile struct {
	WorkerID           string
	DisplayName        string
	Email              string
	EmailNotifications bool
	PushNotifications  bool
	WorktimeReminder   bool
	LeaveStatusUpdate  bool
	ShareLocation      bool
	AutoCheckout       bool
	BreakReminder      bool
	UpdatedAt          time.Time
}

// DefaultProfile returns the settings a worker gets before ever
// saving anything.
func DefaultProfile(workerID string) *WorkerProfile {
	return &WorkerProfile{
		WorkerID:           workerID,
		EmailNotifications: true,
		PushNotifications:  true,
		WorktimeReminder:   true,
		LeaveStatusUpdate:  true,
		ShareLocation:      true,
	}
}
