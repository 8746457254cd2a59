package device

import (
	"context"
	"time"
)

type DeviceRepository interface {
	Create(ctx context.Context, dev Device) (Device, error)
	GetByID(ctx context.Context, id string) (Device, error)
	GetBySerialNumber(ctx context.Context, serial string) (Device, error)
	List(ctx context.Context) ([]Device, error)
	Update(ctx context.Context, dev Device) (Device, error)
	UpdateStatus(ctx context.Context, id, status string, lastSeen time.Time) error
}
