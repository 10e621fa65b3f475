package repository

import (
	"database/sql"
	"time"
)

// Entry timestamps keep sub-second precision; audit and date columns
// do not need it. The fractional digits are fixed-width (RFC3339Nano
// trims trailing zeros), so the stored strings compare in timestamp
// order and the day-window range query works on text.
const (
	entryTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"
	auditTimeLayout = time.RFC3339
	dateLayout      = "2006-01-02"
)

// nullableString converts a *string to a value suitable for SQLite
// storage (nil becomes SQL NULL).
func nullableString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// stringPtr converts a scanned sql.NullString back to a *string.
func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}
