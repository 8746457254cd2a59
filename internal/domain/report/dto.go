package report

import "github.com/shopspring/decimal"

// OvertimeSummary aggregates overtime over a date range. Hours are
// decimals so repeated summation stays exact; weighted hours multiply
// each day's total by its rate.
type OvertimeSummary struct {
	EmployeeID    *string         `json:"employee_id,omitempty"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	Days          int             `json:"days"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	RegularHours  decimal.Decimal `json:"regular_hours"`
	WeekendHours  decimal.Decimal `json:"weekend_hours"`
	HolidayHours  decimal.Decimal `json:"holiday_hours"`
	NightHours    decimal.Decimal `json:"night_hours"`
	WeightedHours decimal.Decimal `json:"weighted_hours"`
}

// AttendanceSummary counts statuses over a date range.
type AttendanceSummary struct {
	EmployeeID       *string         `json:"employee_id,omitempty"`
	StartDate        string          `json:"start_date"`
	EndDate          string          `json:"end_date"`
	Present          int             `json:"present"`
	HalfDay          int             `json:"half_day"`
	MissingCheckIn   int             `json:"missing_checkin"`
	MissingCheckOut  int             `json:"missing_checkout"`
	TotalWorkHours   decimal.Decimal `json:"total_work_hours"`
	TotalLateMinutes int             `json:"total_late_minutes"`
}

// DepartmentOvertime is one department's share of a period's overtime.
type DepartmentOvertime struct {
	Department    string          `json:"department"`
	Employees     int             `json:"employees"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	WeightedHours decimal.Decimal `json:"weighted_hours"`
}
