package shift

import "errors"

var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrAssignmentNotFound = errors.New("shift assignment not found")
	ErrShiftInUse         = errors.New("shift has active assignments")
	ErrInvalidTimeFormat  = errors.New("time must be in HH:MM format")
)
