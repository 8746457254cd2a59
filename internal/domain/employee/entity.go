package employee

import "time"

// Employee is the HR master record reconciliation resolves punches
// against. WeekendDays overrides the shift-level weekend set when
// non-nil; days are Monday-indexed (0=Monday .. 6=Sunday).
type Employee struct {
	ID             string
	EmployeeCode   string
	Name           string
	Email          *string
	Phone          *string
	Department     *string
	Position       *string
	JoinDate       *time.Time
	CurrentShiftID *string
	WeekendDays    []int
	IsActive       bool

	EligibleForWeekdayOvertime bool
	EligibleForWeekendOvertime bool
	EligibleForHolidayOvertime bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
