package device

import "time"

const (
	StatusOnline  = "online"
	StatusOffline = "offline"
	StatusError   = "error"
)

// Device is a registered attendance terminal (fingerprint reader, card
// scanner, mobile endpoint). Punches reference the device they came from.
type Device struct {
	ID           string
	Name         string
	SerialNumber string
	DeviceType   string
	Location     *string
	IPAddress    *string
	Status       string
	IsActive     bool
	LastSeen     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
