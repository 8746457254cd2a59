package overtime

import "errors"

var (
	ErrRuleNotFound     = errors.New("overtime rule not found")
	ErrNoApplicableRule = errors.New("no overtime rule applies to the given date")
)
