package device

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mir-ams/attendance-backend-go/internal/domain/device"
)

type deviceService struct {
	deviceRepo device.DeviceRepository
}

func NewDeviceService(deviceRepo device.DeviceRepository) device.DeviceService {
	return &deviceService{deviceRepo: deviceRepo}
}

func (s *deviceService) Register(ctx context.Context, req device.RegisterDeviceRequest) (device.Device, error) {
	if err := req.Validate(); err != nil {
		return device.Device{}, err
	}

	_, err := s.deviceRepo.GetBySerialNumber(ctx, req.SerialNumber)
	if err == nil {
		return device.Device{}, device.ErrSerialNumberExists
	}
	if !errors.Is(err, device.ErrDeviceNotFound) {
		return device.Device{}, fmt.Errorf("failed to check serial number: %w", err)
	}

	dev := device.Device{
		ID:           uuid.NewString(),
		Name:         req.Name,
		SerialNumber: req.SerialNumber,
		DeviceType:   req.DeviceType,
		Location:     req.Location,
		IPAddress:    req.IPAddress,
		Status:       device.StatusOffline,
		IsActive:     true,
	}

	created, err := s.deviceRepo.Create(ctx, dev)
	if err != nil {
		return device.Device{}, fmt.Errorf("failed to register device: %w", err)
	}
	return created, nil
}

func (s *deviceService) GetByID(ctx context.Context, id string) (device.Device, error) {
	return s.deviceRepo.GetByID(ctx, id)
}

func (s *deviceService) List(ctx context.Context) ([]device.Device, error) {
	return s.deviceRepo.List(ctx)
}

func (s *deviceService) Deactivate(ctx context.Context, id string) error {
	dev, err := s.deviceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	dev.IsActive = false
	_, err = s.deviceRepo.Update(ctx, dev)
	return err
}
