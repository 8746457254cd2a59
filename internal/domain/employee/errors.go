package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrEmployeeInactive   = errors.New("employee is inactive")
	ErrInvalidWeekendDays = errors.New("weekend days must be between 0 (Monday) and 6 (Sunday)")
)
