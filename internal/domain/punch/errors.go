package punch

import "errors"

var (
	ErrEventNotFound  = errors.New("punch event not found")
	ErrDuplicateEvent = errors.New("duplicate punch event within de-duplication window")
	ErrUnknownKind    = errors.New("unrecognized punch log type")
)
