package ingest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mir-ams/attendance-backend-go/internal/domain/device"
	"github.com/mir-ams/attendance-backend-go/internal/domain/employee"
	"github.com/mir-ams/attendance-backend-go/internal/domain/punch"
)

type memEventRepo struct {
	events []punch.Event
}

func (r *memEventRepo) Create(_ context.Context, e punch.Event) (punch.Event, error) {
	r.events = append(r.events, e)
	return e, nil
}

func (r *memEventRepo) ListByEmployeeAndDate(_ context.Context, _ string, _ time.Time) ([]punch.Event, error) {
	return nil, nil
}

func (r *memEventRepo) ListUnprocessedDays(_ context.Context, _, _ time.Time) ([]punch.DayKey, error) {
	return nil, nil
}

func (r *memEventRepo) ListWindow(_ context.Context, employeeID, deviceID string, kind punch.Kind, at time.Time, window time.Duration) ([]punch.Event, error) {
	var out []punch.Event
	for _, e := range r.events {
		if e.EmployeeID != employeeID || e.DeviceID != deviceID || e.Kind != kind {
			continue
		}
		diff := e.Timestamp.Sub(at)
		if diff < 0 {
			diff = -diff
		}
		if diff <= window {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memEventRepo) MarkProcessed(_ context.Context, _ []string, _ *string) error { return nil }
func (r *memEventRepo) ResetDay(_ context.Context, _ string, _ time.Time) error     { return nil }

func (r *memEventRepo) Stats(_ context.Context) (punch.Stats, error) {
	return punch.Stats{TotalEvents: int64(len(r.events))}, nil
}

type memEmployeeRepo struct {
	byCode map[string]employee.Employee
}

func (r *memEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (r *memEmployeeRepo) GetByID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *memEmployeeRepo) GetByCode(_ context.Context, code string) (employee.Employee, error) {
	if e, ok := r.byCode[code]; ok {
		return e, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *memEmployeeRepo) List(_ context.Context, _ employee.ListFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (r *memEmployeeRepo) Update(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (r *memEmployeeRepo) UpdateOvertimeEligibility(_ context.Context, _ string, _, _, _ bool) error {
	return nil
}

func (r *memEmployeeRepo) UpdateWeekendDays(_ context.Context, _ string, _ []int) error { return nil }

type memDeviceRepo struct {
	bySerial map[string]device.Device
}

func (r *memDeviceRepo) Create(_ context.Context, d device.Device) (device.Device, error) {
	r.bySerial[d.SerialNumber] = d
	return d, nil
}

func (r *memDeviceRepo) GetByID(_ context.Context, _ string) (device.Device, error) {
	return device.Device{}, device.ErrDeviceNotFound
}

func (r *memDeviceRepo) GetBySerialNumber(_ context.Context, serial string) (device.Device, error) {
	if d, ok := r.bySerial[serial]; ok {
		return d, nil
	}
	return device.Device{}, device.ErrDeviceNotFound
}

func (r *memDeviceRepo) List(_ context.Context) ([]device.Device, error) { return nil, nil }

func (r *memDeviceRepo) Update(_ context.Context, d device.Device) (device.Device, error) {
	return d, nil
}

func (r *memDeviceRepo) UpdateStatus(_ context.Context, id, status string, lastSeen time.Time) error {
	for serial, d := range r.bySerial {
		if d.ID == id {
			d.Status = status
			seen := lastSeen
			d.LastSeen = &seen
			r.bySerial[serial] = d
		}
	}
	return nil
}

func newTestService() (punch.IngestService, *memEventRepo, *memDeviceRepo) {
	events := &memEventRepo{}
	emps := &memEmployeeRepo{byCode: map[string]employee.Employee{
		"E001": {ID: "emp-1", EmployeeCode: "E001", Name: "Alice", IsActive: true},
	}}
	devices := &memDeviceRepo{bySerial: map[string]device.Device{
		"SN-1": {ID: "dev-1", SerialNumber: "SN-1", IsActive: true},
	}}
	return NewIngestService(events, emps, devices, 5*time.Minute), events, devices
}

func TestRecordPunch_StoresNormalizedEvent(t *testing.T) {
	t.Parallel()
	svc, events, devices := newTestService()

	ev, err := svc.RecordPunch(context.Background(), punch.RecordPunchRequest{
		EmployeeCode: "E001",
		DeviceSerial: "SN-1",
		Timestamp:    "2024-01-15 09:00:00",
		LogType:      "IN",
	})
	require.NoError(t, err)

	assert.Equal(t, punch.KindCheckIn, ev.Kind)
	assert.Equal(t, "emp-1", ev.EmployeeID)
	assert.Equal(t, "dev-1", ev.DeviceID)
	assert.Len(t, events.events, 1)

	// Seeing a punch marks the device online.
	assert.Equal(t, device.StatusOnline, devices.bySerial["SN-1"].Status)
}

func TestRecordPunch_DuplicateWithinWindow(t *testing.T) {
	t.Parallel()
	svc, events, _ := newTestService()
	ctx := context.Background()

	first := punch.RecordPunchRequest{
		EmployeeCode: "E001",
		DeviceSerial: "SN-1",
		Timestamp:    "2024-01-15 09:00:00",
		LogType:      "IN",
	}
	_, err := svc.RecordPunch(ctx, first)
	require.NoError(t, err)

	dup := first
	dup.Timestamp = "2024-01-15 09:02:00"
	_, err = svc.RecordPunch(ctx, dup)
	assert.ErrorIs(t, err, punch.ErrDuplicateEvent)
	assert.Len(t, events.events, 1)

	// Outside the window it is a fresh punch.
	later := first
	later.Timestamp = "2024-01-15 09:07:00"
	_, err = svc.RecordPunch(ctx, later)
	assert.NoError(t, err)
	assert.Len(t, events.events, 2)
}

func TestRecordPunch_UnknownEmployee(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()

	_, err := svc.RecordPunch(context.Background(), punch.RecordPunchRequest{
		EmployeeCode: "E999",
		DeviceSerial: "SN-1",
		Timestamp:    "2024-01-15 09:00:00",
		LogType:      "IN",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRecordPunch_AutoRegistersDevice(t *testing.T) {
	t.Parallel()
	svc, _, devices := newTestService()

	_, err := svc.RecordPunch(context.Background(), punch.RecordPunchRequest{
		EmployeeCode: "E001",
		DeviceSerial: "SN-NEW",
		Timestamp:    "2024-01-15 09:00:00",
		LogType:      "OUT",
	})
	require.NoError(t, err)

	dev, ok := devices.bySerial["SN-NEW"]
	require.True(t, ok)
	assert.Equal(t, "import", dev.DeviceType)
}

func TestImportCSV(t *testing.T) {
	t.Parallel()
	svc, events, _ := newTestService()

	data := strings.Join([]string{
		"employee_code,device_serial,timestamp,log_type",
		"E001,SN-1,2024-01-15 09:00:00,IN",
		"E001,SN-1,2024-01-15 09:01:00,IN",
		"E001,SN-1,2024-01-15 18:00:00,OUT",
		"E999,SN-1,2024-01-15 09:00:00,IN",
		"E001,SN-1,not-a-timestamp,IN",
	}, "\n")

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Duplicates)
	assert.Len(t, result.Errors, 2)
	assert.Len(t, events.events, 2)
}

func TestImportCSV_HeaderAliases(t *testing.T) {
	t.Parallel()
	svc, events, _ := newTestService()

	data := strings.Join([]string{
		"emp_code,serial_number,log_time,punch_type",
		"E001,SN-1,2024-01-15 09:00:00,check_in",
	}, "\n")

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Len(t, events.events, 1)
}

func TestImportCSV_MissingColumns(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()

	_, err := svc.ImportCSV(context.Background(), strings.NewReader("a,b,c\n1,2,3"))
	assert.Error(t, err)
}
