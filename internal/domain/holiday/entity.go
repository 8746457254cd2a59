package holiday

import "time"

// Holiday marks a date as non-working. A recurring holiday repeats
// every year on the same month and day. A holiday scoped to an
// EmployeeID applies to that employee only; a nil scope is global.
type Holiday struct {
	ID          string
	Name        string
	Date        time.Time
	IsRecurring bool
	EmployeeID  *string
	CreatedAt   time.Time
}

// AppliesTo reports whether the holiday covers the given employee on
// the given date.
func (h *Holiday) AppliesTo(employeeID string, date time.Time) bool {
	if h.EmployeeID != nil && *h.EmployeeID != employeeID {
		return false
	}
	if h.IsRecurring {
		return h.Date.Month() == date.Month() && h.Date.Day() == date.Day()
	}
	hy, hm, hd := h.Date.Date()
	dy, dm, dd := date.Date()
	return hy == dy && hm == dm && hd == dd
}

// AnyApplies reports whether any holiday in the list covers the
// employee on the date.
func AnyApplies(holidays []Holiday, employeeID string, date time.Time) bool {
	for i := range holidays {
		if holidays[i].AppliesTo(employeeID, date) {
			return true
		}
	}
	return false
}
