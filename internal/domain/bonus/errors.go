package bonus

import "errors"

var (
	ErrPeriodNotFound     = errors.New("bonus period not found")
	ErrSubmissionNotFound = errors.New("bonus submission not found")
	ErrAlreadyApproved    = errors.New("user has already approved this submission")
	ErrSubmissionClosed   = errors.New("submission is not open for review")
	ErrNotSubmitted       = errors.New("submission has not been submitted for review")
)
