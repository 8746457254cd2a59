package punch

import (
	"fmt"
	"strings"
	"time"
)

// Kind is the normalized punch type. Raw device exports use a wider
// vocabulary (IN/OUT, Check-In, ...) which is normalized at ingestion.
type Kind string

const (
	KindCheckIn  Kind = "check_in"
	KindCheckOut Kind = "check_out"
	KindBreakOut Kind = "break_out"
	KindBreakIn  Kind = "break_in"
)

// Event is a single raw punch. Immutable once created except for the
// processed flag and record back-reference, which reconciliation sets
// exactly once.
type Event struct {
	ID                 string
	EmployeeID         string
	DeviceID           string
	Kind               Kind
	Timestamp          time.Time
	IsProcessed        bool
	AttendanceRecordID *string
	CreatedAt          time.Time
}

// DayKey identifies one employee-day group of unprocessed events.
type DayKey struct {
	EmployeeID string
	Date       time.Time
}

// NormalizeKind maps the raw log types seen in device exports and CSV
// files onto the canonical Kind values.
func NormalizeKind(raw string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "in", "check_in", "check-in", "checkin":
		return KindCheckIn, nil
	case "out", "check_out", "check-out", "checkout":
		return KindCheckOut, nil
	case "break_out", "break-out", "breakout":
		return KindBreakOut, nil
	case "break_in", "break-in", "breakin":
		return KindBreakIn, nil
	}
	return "", fmt.Errorf("unrecognized log type %q", raw)
}
