package shift

import "time"

const (
	TypeDay       = "day"
	TypeAfternoon = "afternoon"
	TypeNight     = "night"
)

// DefaultWeekendDays is the system-wide weekend fallback, Saturday and
// Sunday in Monday-indexed form (0=Monday .. 6=Sunday).
var DefaultWeekendDays = []int{5, 6}

// Shift defines a scheduled working window. StartTime and EndTime carry
// time-of-day only; the date component is ignored. An overnight shift
// ends on the calendar day after it starts.
type Shift struct {
	ID                  string
	Name                string
	StartTime           time.Time
	EndTime             time.Time
	IsOvernight         bool
	BreakAllowanceHours float64
	GracePeriodMinutes  int
	WeekendDays         []int
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Assignment binds an employee to a shift over a date interval. A nil
// EndDate means open-ended.
type Assignment struct {
	ID         string
	EmployeeID string
	ShiftID    string
	StartDate  time.Time
	EndDate    *time.Time
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DurationHours returns the scheduled length of the shift, accounting
// for overnight wrap.
func (s *Shift) DurationHours() float64 {
	start := clockMinutes(s.StartTime)
	end := clockMinutes(s.EndTime)
	if end <= start {
		end += 24 * 60
	}
	return float64(end-start) / 60.0
}

// WeekdayIndex converts Go's Sunday-based weekday to the Monday-indexed
// convention used throughout weekend configuration.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// IsWeekendDay reports whether the date falls on one of the given
// weekend days. A nil or empty set falls back to DefaultWeekendDays.
func IsWeekendDay(t time.Time, weekendDays []int) bool {
	if len(weekendDays) == 0 {
		weekendDays = DefaultWeekendDays
	}
	idx := WeekdayIndex(t)
	for _, d := range weekendDays {
		if d == idx {
			return true
		}
	}
	return false
}

func clockMinutes(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
