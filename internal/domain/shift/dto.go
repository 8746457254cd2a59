package shift

import (
	"github.com/mir-ams/attendance-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name                string  `json:"name"`
	StartTime           string  `json:"start_time"`
	EndTime             string  `json:"end_time"`
	IsOvernight         bool    `json:"is_overnight"`
	BreakAllowanceHours float64 `json:"break_allowance_hours"`
	GracePeriodMinutes  int     `json:"grace_period_minutes"`
	WeekendDays         []int   `json:"weekend_days,omitempty"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if _, ok := validator.IsValidClockTime(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if _, ok := validator.IsValidClockTime(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if r.BreakAllowanceHours < 0 || r.BreakAllowanceHours > 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_allowance_hours",
			Message: "break_allowance_hours must be between 0 and 8",
		})
	}

	for _, d := range r.WeekendDays {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "weekend_days",
				Message: "weekend days must be between 0 (Monday) and 6 (Sunday)",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignShiftRequest struct {
	EmployeeID string  `json:"employee_id"`
	ShiftID    string  `json:"shift_id"`
	StartDate  string  `json:"start_date"`
	EndDate    *string `json:"end_date,omitempty"`
}

func (r *AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
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
