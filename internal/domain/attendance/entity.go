package attendance

import "time"

const (
	StatusPresent         = "present"
	StatusHalfDay         = "half-day"
	StatusMissingCheckIn  = "missing_checkin"
	StatusMissingCheckOut = "missing_checkout"
	StatusMissingLogs     = "missing_logs"
)

// HalfDayThresholdHours is the worked-hours boundary between a half-day
// and a full present day.
const HalfDayThresholdHours = 4.0

// Record is the derived attendance row for one employee-day. It is
// fully recomputed from raw punch events on every reconciliation pass;
// nothing here is hand-edited.
type Record struct {
	ID             string
	EmployeeID     string
	Date           time.Time
	ShiftID        *string
	OvertimeRuleID *string

	CheckIn  *time.Time
	CheckOut *time.Time
	Status   string

	IsHoliday bool
	IsWeekend bool

	WorkHours     float64
	BreakDuration float64
	TotalDuration float64
	LateMinutes   int
	ShiftType     string

	OvertimeHours        float64
	OvertimeRate         float64
	RegularOvertimeHours float64
	WeekendOvertimeHours float64
	HolidayOvertimeHours float64
	OvertimeNightHours   float64

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for list responses, not a column of the record itself.
	EmployeeName *string
}
