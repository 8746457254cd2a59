package attendance

import "errors"

var (
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrNoPunches      = errors.New("no punch events for the given employee and date")
	ErrInvalidStatus  = errors.New("invalid attendance status")
)
