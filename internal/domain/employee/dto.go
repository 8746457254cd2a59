package employee

import (
	"github.com/mir-ams/attendance-backend-go/internal/pkg/validator"
)

type ListFilter struct {
	Department *string
	IsActive   *bool
	Search     string
	Page       int
	Limit      int
}

type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_code"`
	Name         string  `json:"name"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Department   *string `json:"department,omitempty"`
	Position     *string `json:"position,omitempty"`
	JoinDate     *string `json:"join_date,omitempty"`
	ShiftID      *string `json:"shift_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must be 2-50 alphanumeric characters",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "join_date",
				Message: "join_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEligibilityRequest struct {
	EligibleForWeekdayOvertime *bool `json:"eligible_for_weekday_overtime,omitempty"`
	EligibleForWeekendOvertime *bool `json:"eligible_for_weekend_overtime,omitempty"`
	EligibleForHolidayOvertime *bool `json:"eligible_for_holiday_overtime,omitempty"`
}

type UpdateWeekendDaysRequest struct {
	WeekendDays []int `json:"weekend_days"`
}

func (r *UpdateWeekendDaysRequest) Validate() error {
	var errs validator.ValidationErrors

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
