package device

import "errors"

var (
	ErrDeviceNotFound     = errors.New("device not found")
	ErrSerialNumberExists = errors.New("device serial number already registered")
	ErrDeviceInactive     = errors.New("device is inactive")
)
