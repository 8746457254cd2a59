package overtime

import "time"

// Rule parameterizes overtime calculation for the dates it is valid
// on. Rules are versioned through ValidFrom/ValidUntil and ranked by
// Priority; the calculator picks exactly one rule per day.
type Rule struct {
	ID          string
	Name        string
	Description *string

	ApplyOnWeekday bool
	ApplyOnWeekend bool
	ApplyOnHoliday bool

	DailyRegularHours float64
	MaxDailyOvertime  float64

	WeekdayMultiplier float64
	WeekendMultiplier float64
	HolidayMultiplier float64

	Priority   int
	IsActive   bool
	ValidFrom  *time.Time
	ValidUntil *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidOn reports whether the rule's validity window contains the date.
// Nil bounds are open.
func (r *Rule) ValidOn(date time.Time) bool {
	day := date.Truncate(24 * time.Hour)
	if r.ValidFrom != nil && day.Before(r.ValidFrom.Truncate(24*time.Hour)) {
		return false
	}
	if r.ValidUntil != nil && day.After(r.ValidUntil.Truncate(24*time.Hour)) {
		return false
	}
	return true
}

// SelectRule picks the active rule with the highest priority whose
// validity window contains the date. Ties break on the lexically
// smallest ID so selection is deterministic.
func SelectRule(rules []Rule, date time.Time) *Rule {
	var best *Rule
	for i := range rules {
		r := &rules[i]
		if !r.IsActive || !r.ValidOn(date) {
			continue
		}
		if best == nil {
			best = r
			continue
		}
		switch {
		case r.Priority > best.Priority:
			best = r
		case r.Priority == best.Priority && r.ID < best.ID:
			best = r
		}
	}
	return best
}
