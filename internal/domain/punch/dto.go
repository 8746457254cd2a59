package punch

import (
	"github.com/mir-ams/attendance-backend-go/internal/pkg/validator"
)

// RecordPunchRequest is a single punch pushed by a device connector or
// entered manually.
type RecordPunchRequest struct {
	EmployeeCode string `json:"employee_code"`
	DeviceSerial string `json:"device_serial"`
	Timestamp    string `json:"timestamp"`
	LogType      string `json:"log_type"`
}

func (r *RecordPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}

	if validator.IsEmpty(r.DeviceSerial) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_serial",
			Message: "device_serial is required",
		})
	}

	if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be RFC3339 or YYYY-MM-DD HH:MM:SS",
		})
	}

	if _, err := NormalizeKind(r.LogType); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "log_type",
			Message: "log_type must be one of check_in, check_out, break_out, break_in",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ImportRowError describes one rejected CSV row.
type ImportRowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportResult summarizes a CSV import run.
type ImportResult struct {
	Created    int              `json:"created"`
	Duplicates int              `json:"duplicates"`
	Errors     []ImportRowError `json:"errors,omitempty"`
}
