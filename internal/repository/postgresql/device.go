package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mir-ams/attendance-backend-go/internal/domain/device"
	"github.com/mir-ams/attendance-backend-go/internal/pkg/database"
)

type deviceRepository struct {
	db *database.DB
}

func NewDeviceRepository(db *database.DB) device.DeviceRepository {
	return &deviceRepository{db: db}
}

const deviceColumns = `
	id, name, serial_number, device_type, location, ip_address,
	status, is_active, last_seen, created_at, updated_at
`

func scanDevice(row pgx.Row) (device.Device, error) {
	var d device.Device
	err := row.Scan(
		&d.ID, &d.Name, &d.SerialNumber, &d.DeviceType, &d.Location, &d.IPAddress,
		&d.Status, &d.IsActive, &d.LastSeen, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

func (r *deviceRepository) Create(ctx context.Context, dev device.Device) (device.Device, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_devices (
			id, name, serial_number, device_type, location, ip_address,
			status, is_active, last_seen, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := querier.QueryRow(ctx, query,
		dev.ID, dev.Name, dev.SerialNumber, dev.DeviceType, dev.Location, dev.IPAddress,
		dev.Status, dev.IsActive, dev.LastSeen,
	).Scan(&dev.CreatedAt, &dev.UpdatedAt)
	if err != nil {
		return device.Device{}, fmt.Errorf("failed to insert device: %w", err)
	}

	return dev, nil
}

func (r *deviceRepository) GetByID(ctx context.Context, id string) (device.Device, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + deviceColumns + ` FROM attendance_devices WHERE id = $1`

	dev, err := scanDevice(querier.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return device.Device{}, device.ErrDeviceNotFound
	}
	if err != nil {
		return device.Device{}, fmt.Errorf("failed to get device: %w", err)
	}
	return dev, nil
}

func (r *deviceRepository) GetBySerialNumber(ctx context.Context, serial string) (device.Device, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + deviceColumns + ` FROM attendance_devices WHERE serial_number = $1`

	dev, err := scanDevice(querier.QueryRow(ctx, query, serial))
	if errors.Is(err, pgx.ErrNoRows) {
		return device.Device{}, device.ErrDeviceNotFound
	}
	if err != nil {
		return device.Device{}, fmt.Errorf("failed to get device: %w", err)
	}
	return dev, nil
}

func (r *deviceRepository) List(ctx context.Context) ([]device.Device, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + deviceColumns + ` FROM attendance_devices ORDER BY name`

	rows, err := querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query devices: %w", err)
	}
	defer rows.Close()

	var devices []device.Device
	for rows.Next() {
		dev, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		devices = append(devices, dev)
	}

	return devices, rows.Err()
}

func (r *deviceRepository) Update(ctx context.Context, dev device.Device) (device.Device, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_devices
		SET name = $2, device_type = $3, location = $4, ip_address = $5,
		    status = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := querier.QueryRow(ctx, query,
		dev.ID, dev.Name, dev.DeviceType, dev.Location, dev.IPAddress,
		dev.Status, dev.IsActive,
	).Scan(&dev.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return device.Device{}, device.ErrDeviceNotFound
	}
	if err != nil {
		return device.Device{}, fmt.Errorf("failed to update device: %w", err)
	}

	return dev, nil
}

func (r *deviceRepository) UpdateStatus(ctx context.Context, id, status string, lastSeen time.Time) error {
	querier := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_devices
		SET status = $2, last_seen = GREATEST(COALESCE(last_seen, $3), $3), updated_at = NOW()
		WHERE id = $1
	`

	tag, err := querier.Exec(ctx, query, id, status, lastSeen)
	if err != nil {
		return fmt.Errorf("failed to update device status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return device.ErrDeviceNotFound
	}
	return nil
}
