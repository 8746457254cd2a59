package device

import "context"

type DeviceService interface {
	Register(ctx context.Context, req RegisterDeviceRequest) (Device, error)
	GetByID(ctx context.Context, id string) (Device, error)
	List(ctx context.Context) ([]Device, error)
	Deactivate(ctx context.Context, id string) error
}
