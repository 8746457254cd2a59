package response

import (
	"errors"
	"net/http"

	"github.com/mir-ams/attendance-backend-go/internal/domain/attendance"
	"github.com/mir-ams/attendance-backend-go/internal/domain/bonus"
	"github.com/mir-ams/attendance-backend-go/internal/domain/device"
	"github.com/mir-ams/attendance-backend-go/internal/domain/employee"
	"github.com/mir-ams/attendance-backend-go/internal/domain/holiday"
	"github.com/mir-ams/attendance-backend-go/internal/domain/overtime"
	"github.com/mir-ams/attendance-backend-go/internal/domain/punch"
	"github.com/mir-ams/attendance-backend-go/internal/domain/shift"
	"github.com/mir-ams/attendance-backend-go/internal/domain/user"
	"github.com/mir-ams/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrUserInactive):
		Unauthorized(w, "User account is disabled")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")

	// Employee errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is inactive")
	case errors.Is(err, employee.ErrInvalidWeekendDays):
		BadRequest(w, err.Error(), nil)

	// Punch ingestion errors
	case errors.Is(err, punch.ErrEventNotFound):
		NotFound(w, "Punch event not found")
	case errors.Is(err, punch.ErrDuplicateEvent):
		Conflict(w, "Duplicate punch within de-duplication window")
	case errors.Is(err, punch.ErrUnknownKind):
		BadRequest(w, err.Error(), nil)

	// Attendance errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoPunches):
		NotFound(w, "No punch events for the given employee and date")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)

	// Shift errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, shift.ErrShiftInUse):
		Conflict(w, "Shift has active assignments")
	case errors.Is(err, shift.ErrInvalidTimeFormat):
		BadRequest(w, err.Error(), nil)

	// Overtime rule errors
	case errors.Is(err, overtime.ErrRuleNotFound):
		NotFound(w, "Overtime rule not found")

	// Holiday errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already exists for this date")

	// Device errors
	case errors.Is(err, device.ErrDeviceNotFound):
		NotFound(w, "Device not found")
	case errors.Is(err, device.ErrSerialNumberExists):
		Conflict(w, "Device serial number already registered")
	case errors.Is(err, device.ErrDeviceInactive):
		Forbidden(w, "Device is inactive")

	// Bonus workflow errors
	case errors.Is(err, bonus.ErrPeriodNotFound):
		NotFound(w, "Bonus period not found")
	case errors.Is(err, bonus.ErrSubmissionNotFound):
		NotFound(w, "Bonus submission not found")
	case errors.Is(err, bonus.ErrAlreadyApproved):
		Conflict(w, "User has already approved this submission")
	case errors.Is(err, bonus.ErrSubmissionClosed):
		Conflict(w, "Submission is not open for review")
	case errors.Is(err, bonus.ErrNotSubmitted):
		Conflict(w, "Submission has not been submitted for review")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
