package shift

import (
	"strings"
	"time"
)

// ActiveAssignment selects the assignment covering the given date: the
// date must be on or after StartDate and, when EndDate is set, on or
// before it. When several assignments overlap, the one with the latest
// StartDate wins; among equal start dates the highest ID wins so the
// result is deterministic regardless of input order.
func ActiveAssignment(assignments []Assignment, date time.Time) *Assignment {
	var best *Assignment
	for i := range assignments {
		a := &assignments[i]
		if !a.IsActive {
			continue
		}
		if beforeDay(date, a.StartDate) {
			continue
		}
		if a.EndDate != nil && beforeDay(*a.EndDate, date) {
			continue
		}
		if best == nil {
			best = a
			continue
		}
		switch {
		case a.StartDate.After(best.StartDate):
			best = a
		case a.StartDate.Equal(best.StartDate) && a.ID > best.ID:
			best = a
		}
	}
	return best
}

// beforeDay compares wall-clock calendar days. Assignment dates are
// tz-naive local dates, so each side is read in its own location
// rather than truncated against the UTC epoch.
func beforeDay(a, b time.Time) bool {
	if a.Year() != b.Year() {
		return a.Year() < b.Year()
	}
	return a.YearDay() < b.YearDay()
}

// Classify buckets a shift into day, afternoon or night. The name is
// consulted first, then the scheduled start hour.
func (s *Shift) Classify() string {
	name := strings.ToLower(s.Name)
	for _, kw := range []string{"night", "evening", "malam"} {
		if strings.Contains(name, kw) {
			return TypeNight
		}
	}
	for _, kw := range []string{"morning", "day", "pagi"} {
		if strings.Contains(name, kw) {
			return TypeDay
		}
	}

	return classifyHour(s.StartTime.Hour())
}

// ClassifyByCheckIn buckets an employee-day with no resolvable shift
// using the hour of the first check-in.
func ClassifyByCheckIn(checkIn time.Time) string {
	return classifyHour(checkIn.Hour())
}

func classifyHour(hour int) string {
	switch {
	case hour >= 17 || hour < 5:
		return TypeNight
	case hour < 12:
		return TypeDay
	default:
		return TypeAfternoon
	}
}

