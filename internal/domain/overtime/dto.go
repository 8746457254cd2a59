package overtime

import (
	"github.com/mir-ams/attendance-backend-go/internal/pkg/validator"
)

type CreateRuleRequest struct {
	Name              string  `json:"name"`
	Description       *string `json:"description,omitempty"`
	ApplyOnWeekday    bool    `json:"apply_on_weekday"`
	ApplyOnWeekend    bool    `json:"apply_on_weekend"`
	ApplyOnHoliday    bool    `json:"apply_on_holiday"`
	DailyRegularHours float64 `json:"daily_regular_hours"`
	MaxDailyOvertime  float64 `json:"max_daily_overtime"`
	WeekdayMultiplier float64 `json:"weekday_multiplier"`
	WeekendMultiplier float64 `json:"weekend_multiplier"`
	HolidayMultiplier float64 `json:"holiday_multiplier"`
	Priority          int     `json:"priority"`
	ValidFrom         *string `json:"valid_from,omitempty"`
	ValidUntil        *string `json:"valid_until,omitempty"`
}

func (r *CreateRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.DailyRegularHours <= 0 || r.DailyRegularHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_regular_hours",
			Message: "daily_regular_hours must be between 0 and 24",
		})
	}

	if r.MaxDailyOvertime < 0 || r.MaxDailyOvertime > 16 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_daily_overtime",
			Message: "max_daily_overtime must be between 0 and 16",
		})
	}

	for field, m := range map[string]float64{
		"weekday_multiplier": r.WeekdayMultiplier,
		"weekend_multiplier": r.WeekendMultiplier,
		"holiday_multiplier": r.HolidayMultiplier,
	} {
		if m < 1.0 || m > 10.0 {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be between 1.0 and 10.0",
			})
		}
	}

	if r.ValidFrom != nil {
		if _, ok := validator.IsValidDate(*r.ValidFrom); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "valid_from",
				Message: "valid_from must be in YYYY-MM-DD format",
			})
		}
	}

	if r.ValidUntil != nil {
		if _, ok := validator.IsValidDate(*r.ValidUntil); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "valid_until",
				Message: "valid_until must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
