package domain

import "time"

// Holiday is one entry of the company holiday calendar.
type Holiday struct {
	ID        string
	Name      string
	Date      time.Time
	Note      string
	CreatedAt time.Time
}
