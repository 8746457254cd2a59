package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mir-ams/attendance-backend-go/internal/domain/device"
	"github.com/mir-ams/attendance-backend-go/internal/domain/employee"
	"github.com/mir-ams/attendance-backend-go/internal/domain/punch"
	"github.com/mir-ams/attendance-backend-go/internal/pkg/validator"
)

type ingestService struct {
	eventRepo   punch.EventRepository
	empRepo     employee.EmployeeRepository
	deviceRepo  device.DeviceRepository
	dedupWindow time.Duration
}

func NewIngestService(
	eventRepo punch.EventRepository,
	empRepo employee.EmployeeRepository,
	deviceRepo device.DeviceRepository,
	dedupWindow time.Duration,
) punch.IngestService {
	return &ingestService{
		eventRepo:   eventRepo,
		empRepo:     empRepo,
		deviceRepo:  deviceRepo,
		dedupWindow: dedupWindow,
	}
}

func (s *ingestService) ImportCSV(ctx context.Context, r io.Reader) (punch.ImportResult, error) {
	var result punch.ImportResult

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return result, fmt.Errorf("failed to read CSV header: %w", err)
	}
	cols, err := mapColumns(header)
	if err != nil {
		return result, err
	}

	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Errors = append(result.Errors, punch.ImportRowError{
				Line: line, Message: "malformed row",
			})
			continue
		}

		req := punch.RecordPunchRequest{
			EmployeeCode: row[cols.employeeCode],
			DeviceSerial: row[cols.deviceSerial],
			Timestamp:    row[cols.timestamp],
			LogType:      row[cols.logType],
		}

		_, err = s.RecordPunch(ctx, req)
		switch {
		case err == nil:
			result.Created++
		case errors.Is(err, punch.ErrDuplicateEvent):
			result.Duplicates++
		default:
			result.Errors = append(result.Errors, punch.ImportRowError{
				Line: line, Message: err.Error(),
			})
		}
	}

	return result, nil
}

func (s *ingestService) RecordPunch(ctx context.Context, req punch.RecordPunchRequest) (punch.Event, error) {
	if err := req.Validate(); err != nil {
		return punch.Event{}, err
	}

	kind, err := punch.NormalizeKind(req.LogType)
	if err != nil {
		return punch.Event{}, punch.ErrUnknownKind
	}
	ts, _ := validator.IsValidDateTime(req.Timestamp)

	emp, err := s.empRepo.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		return punch.Event{}, fmt.Errorf("failed to resolve employee %q: %w", req.EmployeeCode, err)
	}

	dev, err := s.resolveDevice(ctx, req.DeviceSerial)
	if err != nil {
		return punch.Event{}, err
	}

	neighbors, err := s.eventRepo.ListWindow(ctx, emp.ID, dev.ID, kind, ts, s.dedupWindow)
	if err != nil {
		return punch.Event{}, fmt.Errorf("failed to check duplicate window: %w", err)
	}

	candidate := punch.Event{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		DeviceID:   dev.ID,
		Kind:       kind,
		Timestamp:  ts,
	}
	if punch.IsDuplicate(neighbors, candidate, s.dedupWindow) {
		return punch.Event{}, punch.ErrDuplicateEvent
	}

	created, err := s.eventRepo.Create(ctx, candidate)
	if err != nil {
		return punch.Event{}, fmt.Errorf("failed to store punch event: %w", err)
	}

	if err := s.deviceRepo.UpdateStatus(ctx, dev.ID, device.StatusOnline, ts); err != nil {
		return created, fmt.Errorf("failed to update device status: %w", err)
	}

	return created, nil
}

func (s *ingestService) ListDay(ctx context.Context, employeeID string, date time.Time) ([]punch.Event, error) {
	return s.eventRepo.ListByEmployeeAndDate(ctx, employeeID, date)
}

func (s *ingestService) Stats(ctx context.Context) (punch.Stats, error) {
	return s.eventRepo.Stats(ctx)
}

// resolveDevice looks up a terminal by serial, registering unknown
// serials on the fly so historical exports from retired readers still
// import.
func (s *ingestService) resolveDevice(ctx context.Context, serial string) (device.Device, error) {
	dev, err := s.deviceRepo.GetBySerialNumber(ctx, serial)
	if err == nil {
		return dev, nil
	}
	if !errors.Is(err, device.ErrDeviceNotFound) {
		return device.Device{}, fmt.Errorf("failed to resolve device %q: %w", serial, err)
	}

	dev = device.Device{
		ID:           uuid.NewString(),
		Name:         "Imported " + serial,
		SerialNumber: serial,
		DeviceType:   "import",
		Status:       device.StatusOffline,
		IsActive:     true,
	}
	created, err := s.deviceRepo.Create(ctx, dev)
	if err != nil {
		return device.Device{}, fmt.Errorf("failed to register device %q: %w", serial, err)
	}
	return created, nil
}

type columnMap struct {
	employeeCode int
	deviceSerial int
	timestamp    int
	logType      int
}

func mapColumns(header []string) (columnMap, error) {
	cols := columnMap{employeeCode: -1, deviceSerial: -1, timestamp: -1, logType: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "employee_code", "employee_id", "emp_code":
			cols.employeeCode = i
		case "device_serial", "device_sn", "serial_number":
			cols.deviceSerial = i
		case "timestamp", "log_time", "datetime":
			cols.timestamp = i
		case "log_type", "type", "punch_type":
			cols.logType = i
		}
	}
	if cols.employeeCode < 0 || cols.deviceSerial < 0 || cols.timestamp < 0 || cols.logType < 0 {
		return cols, fmt.Errorf("CSV header missing required columns: employee_code, device_serial, timestamp, log_type")
	}
	return cols, nil
}
