package attendance

import (
	"time"

	"github.com/mir-ams/attendance-backend-go/internal/pkg/validator"
)

type ListFilter struct {
	EmployeeID *string
	Department *string
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *string
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil {
		valid := []string{
			StatusPresent, StatusHalfDay,
			StatusMissingCheckIn, StatusMissingCheckOut, StatusMissingLogs,
		}
		if !validator.IsInSlice(*f.Status, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "invalid status filter",
			})
		}
	}

	if f.StartDate != nil && f.EndDate != nil && f.EndDate.Before(*f.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.SortBy == "" {
		f.SortBy = "date"
	}
	if f.SortOrder != "asc" && f.SortOrder != "desc" {
		f.SortOrder = "desc"
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReprocessRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
}

func (r *ReprocessRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReconcileRangeRequest struct {
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

func (r *ReconcileRangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employee_id"`
	EmployeeName   *string  `json:"employee_name,omitempty"`
	Date           string   `json:"date"`
	ShiftID        *string  `json:"shift_id,omitempty"`
	OvertimeRuleID *string  `json:"overtime_rule_id,omitempty"`
	CheckIn        *string  `json:"check_in,omitempty"`
	CheckOut       *string  `json:"check_out,omitempty"`
	Status         string   `json:"status"`
	IsHoliday      bool     `json:"is_holiday"`
	IsWeekend      bool     `json:"is_weekend"`
	WorkHours      float64  `json:"work_hours"`
	BreakDuration  float64  `json:"break_duration"`
	TotalDuration  float64  `json:"total_duration"`
	LateMinutes    int      `json:"late_minutes"`
	ShiftType      string   `json:"shift_type,omitempty"`
	OvertimeHours  float64  `json:"overtime_hours"`
	OvertimeRate   float64  `json:"overtime_rate"`
	RegularOT      float64  `json:"regular_overtime_hours"`
	WeekendOT      float64  `json:"weekend_overtime_hours"`
	HolidayOT      float64  `json:"holiday_overtime_hours"`
	NightOT        float64  `json:"overtime_night_hours"`
	Notes          *string  `json:"notes,omitempty"`
}

func ToRecordResponse(rec Record) RecordResponse {
	resp := RecordResponse{
		ID:             rec.ID,
		EmployeeID:     rec.EmployeeID,
		EmployeeName:   rec.EmployeeName,
		Date:           rec.Date.Format("2006-01-02"),
		ShiftID:        rec.ShiftID,
		OvertimeRuleID: rec.OvertimeRuleID,
		Status:         rec.Status,
		IsHoliday:      rec.IsHoliday,
		IsWeekend:      rec.IsWeekend,
		WorkHours:      rec.WorkHours,
		BreakDuration:  rec.BreakDuration,
		TotalDuration:  rec.TotalDuration,
		LateMinutes:    rec.LateMinutes,
		ShiftType:      rec.ShiftType,
		OvertimeHours:  rec.OvertimeHours,
		OvertimeRate:   rec.OvertimeRate,
		RegularOT:      rec.RegularOvertimeHours,
		WeekendOT:      rec.WeekendOvertimeHours,
		HolidayOT:      rec.HolidayOvertimeHours,
		NightOT:        rec.OvertimeNightHours,
		Notes:          rec.Notes,
	}
	if rec.CheckIn != nil {
		s := rec.CheckIn.Format(time.RFC3339)
		resp.CheckIn = &s
	}
	if rec.CheckOut != nil {
		s := rec.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &s
	}
	return resp
}

type ListRecordsResponse struct {
	Records    []RecordResponse `json:"records"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

// BatchResult summarizes one reconciliation sweep.
type BatchResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}
