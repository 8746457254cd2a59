package reconcile

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mir-ams/attendance-backend-go/internal/domain/attendance"
	"github.com/mir-ams/attendance-backend-go/internal/domain/employee"
	"github.com/mir-ams/attendance-backend-go/internal/domain/holiday"
	"github.com/mir-ams/attendance-backend-go/internal/domain/overtime"
	"github.com/mir-ams/attendance-backend-go/internal/domain/punch"
	"github.com/mir-ams/attendance-backend-go/internal/domain/shift"
)

// ----- in-memory fakes -----

type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memEventRepo struct {
	events map[string]*punch.Event
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{events: make(map[string]*punch.Event)}
}

func (r *memEventRepo) add(e punch.Event) {
	cp := e
	r.events[e.ID] = &cp
}

func (r *memEventRepo) Create(_ context.Context, e punch.Event) (punch.Event, error) {
	r.add(e)
	return e, nil
}

func (r *memEventRepo) ListByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) ([]punch.Event, error) {
	var out []punch.Event
	for _, e := range r.events {
		if e.EmployeeID == employeeID && sameDay(e.Timestamp, date) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *memEventRepo) ListUnprocessedDays(_ context.Context, from, to time.Time) ([]punch.DayKey, error) {
	seen := make(map[punch.DayKey]bool)
	var out []punch.DayKey
	for _, e := range r.events {
		if e.IsProcessed {
			continue
		}
		day := time.Date(e.Timestamp.Year(), e.Timestamp.Month(), e.Timestamp.Day(), 0, 0, 0, 0, time.UTC)
		if day.Before(from) || day.After(to) {
			continue
		}
		key := punch.DayKey{EmployeeID: e.EmployeeID, Date: day}
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	return out, nil
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
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *memEventRepo) MarkProcessed(_ context.Context, ids []string, recordID *string) error {
	for _, id := range ids {
		e, ok := r.events[id]
		if !ok {
			return fmt.Errorf("event %s not found", id)
		}
		e.IsProcessed = true
		e.AttendanceRecordID = recordID
	}
	return nil
}

func (r *memEventRepo) ResetDay(_ context.Context, employeeID string, date time.Time) error {
	for _, e := range r.events {
		if e.EmployeeID == employeeID && sameDay(e.Timestamp, date) {
			e.IsProcessed = false
			e.AttendanceRecordID = nil
		}
	}
	return nil
}

func (r *memEventRepo) Stats(_ context.Context) (punch.Stats, error) {
	var s punch.Stats
	for _, e := range r.events {
		s.TotalEvents++
		if e.IsProcessed {
			s.ProcessedEvents++
		} else {
			s.UnprocessedEvents++
		}
	}
	return s, nil
}

type memRecordRepo struct {
	records map[string]attendance.Record // keyed employeeID|date
}

func newMemRecordRepo() *memRecordRepo {
	return &memRecordRepo{records: make(map[string]attendance.Record)}
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (r *memRecordRepo) Upsert(_ context.Context, rec attendance.Record) (attendance.Record, bool, error) {
	key := recordKey(rec.EmployeeID, rec.Date)
	if existing, ok := r.records[key]; ok {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
		r.records[key] = rec
		return rec, false, nil
	}
	rec.CreatedAt = time.Now()
	r.records[key] = rec
	return rec, true, nil
}

func (r *memRecordRepo) GetByID(_ context.Context, id string) (attendance.Record, error) {
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (r *memRecordRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	if rec, ok := r.records[recordKey(employeeID, date)]; ok {
		return rec, nil
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (r *memRecordRepo) List(_ context.Context, _ attendance.ListFilter) ([]attendance.Record, int64, error) {
	var out []attendance.Record
	for _, rec := range r.records {
		out = append(out, rec)
	}
	return out, int64(len(out)), nil
}

func (r *memRecordRepo) DeleteByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) error {
	delete(r.records, recordKey(employeeID, date))
	return nil
}

type memEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *memEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.employees[e.ID] = e
	return e, nil
}

func (r *memEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if e, ok := r.employees[id]; ok {
		return e, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *memEmployeeRepo) GetByCode(_ context.Context, code string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.EmployeeCode == code {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *memEmployeeRepo) List(_ context.Context, _ employee.ListFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (r *memEmployeeRepo) Update(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.employees[e.ID] = e
	return e, nil
}

func (r *memEmployeeRepo) UpdateOvertimeEligibility(_ context.Context, id string, weekday, weekend, holiday bool) error {
	e := r.employees[id]
	e.EligibleForWeekdayOvertime = weekday
	e.EligibleForWeekendOvertime = weekend
	e.EligibleForHolidayOvertime = holiday
	r.employees[id] = e
	return nil
}

func (r *memEmployeeRepo) UpdateWeekendDays(_ context.Context, id string, days []int) error {
	e := r.employees[id]
	e.WeekendDays = days
	r.employees[id] = e
	return nil
}

type memShiftRepo struct {
	shifts map[string]shift.Shift
}

func (r *memShiftRepo) Create(_ context.Context, s shift.Shift) (shift.Shift, error) {
	r.shifts[s.ID] = s
	return s, nil
}

func (r *memShiftRepo) GetByID(_ context.Context, id string) (shift.Shift, error) {
	if s, ok := r.shifts[id]; ok {
		return s, nil
	}
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (r *memShiftRepo) List(_ context.Context, _ bool) ([]shift.Shift, error) { return nil, nil }

func (r *memShiftRepo) Update(_ context.Context, s shift.Shift) (shift.Shift, error) {
	r.shifts[s.ID] = s
	return s, nil
}

func (r *memShiftRepo) Deactivate(_ context.Context, id string) error { return nil }

type memAssignRepo struct {
	assignments []shift.Assignment
}

func (r *memAssignRepo) Create(_ context.Context, a shift.Assignment) (shift.Assignment, error) {
	r.assignments = append(r.assignments, a)
	return a, nil
}

func (r *memAssignRepo) ListByEmployee(_ context.Context, employeeID string) ([]shift.Assignment, error) {
	var out []shift.Assignment
	for _, a := range r.assignments {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAssignRepo) End(_ context.Context, id string, endDate time.Time) error { return nil }

type memRuleRepo struct {
	rules []overtime.Rule
}

func (r *memRuleRepo) Create(_ context.Context, rule overtime.Rule) (overtime.Rule, error) {
	r.rules = append(r.rules, rule)
	return rule, nil
}

func (r *memRuleRepo) GetByID(_ context.Context, id string) (overtime.Rule, error) {
	for _, rule := range r.rules {
		if rule.ID == id {
			return rule, nil
		}
	}
	return overtime.Rule{}, overtime.ErrRuleNotFound
}

func (r *memRuleRepo) ListActive(_ context.Context) ([]overtime.Rule, error) {
	var out []overtime.Rule
	for _, rule := range r.rules {
		if rule.IsActive {
			out = append(out, rule)
		}
	}
	return out, nil
}

func (r *memRuleRepo) List(_ context.Context) ([]overtime.Rule, error) { return r.rules, nil }

func (r *memRuleRepo) Update(_ context.Context, rule overtime.Rule) (overtime.Rule, error) {
	return rule, nil
}

func (r *memRuleRepo) Deactivate(_ context.Context, id string) error { return nil }

type memHolidayRepo struct {
	holidays []holiday.Holiday
}

func (r *memHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	r.holidays = append(r.holidays, h)
	return h, nil
}

func (r *memHolidayRepo) GetByID(_ context.Context, id string) (holiday.Holiday, error) {
	return holiday.Holiday{}, holiday.ErrHolidayNotFound
}

func (r *memHolidayRepo) ListForDate(_ context.Context, date time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range r.holidays {
		if h.IsRecurring {
			if h.Date.Month() == date.Month() && h.Date.Day() == date.Day() {
				out = append(out, h)
			}
			continue
		}
		if sameDay(h.Date, date) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *memHolidayRepo) ListRange(_ context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	return r.holidays, nil
}

func (r *memHolidayRepo) Delete(_ context.Context, id string) error { return nil }

func sameDay(t, day time.Time) bool {
	y1, m1, d1 := t.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// ----- fixture -----

type fixture struct {
	svc      attendance.ReconcileService
	events   *memEventRepo
	records  *memRecordRepo
	rules    *memRuleRepo
	holidays *memHolidayRepo
	emps     *memEmployeeRepo
}

func newFixture() *fixture {
	f := &fixture{
		events:   newMemEventRepo(),
		records:  newMemRecordRepo(),
		rules:    &memRuleRepo{},
		holidays: &memHolidayRepo{},
		emps:     &memEmployeeRepo{employees: make(map[string]employee.Employee)},
	}

	f.emps.employees["emp-1"] = employee.Employee{
		ID:                         "emp-1",
		EmployeeCode:               "E001",
		Name:                       "Test Employee",
		IsActive:                   true,
		EligibleForWeekdayOvertime: true,
		EligibleForWeekendOvertime: true,
		EligibleForHolidayOvertime: true,
	}

	f.rules.rules = []overtime.Rule{{
		ID:                "rule-1",
		Name:              "Standard",
		ApplyOnWeekday:    true,
		ApplyOnWeekend:    true,
		ApplyOnHoliday:    true,
		DailyRegularHours: 8.0,
		MaxDailyOvertime:  4.0,
		WeekdayMultiplier: 1.5,
		WeekendMultiplier: 2.0,
		HolidayMultiplier: 2.5,
		Priority:          1,
		IsActive:          true,
	}}

	f.svc = NewReconcileService(
		passthroughTx{},
		f.events,
		f.records,
		f.emps,
		&memShiftRepo{shifts: make(map[string]shift.Shift)},
		&memAssignRepo{},
		f.rules,
		f.holidays,
		8.0,
	)
	return f
}

func punchAt(id, kind string, t time.Time) punch.Event {
	return punch.Event{
		ID:         id,
		EmployeeID: "emp-1",
		DeviceID:   "dev-1",
		Kind:       punch.Kind(kind),
		Timestamp:  t,
	}
}

// ----- tests -----

func TestReconcileDay_CreatesRecordAndConsumesEvents(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture()

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	f.events.add(punchAt("1", "check_in", day.Add(9*time.Hour)))
	f.events.add(punchAt("2", "check_out", day.Add(19*time.Hour)))

	rec, err := f.svc.ReconcileDay(ctx, "emp-1", day)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Equal(t, 10.0, rec.WorkHours)
	assert.Equal(t, 2.0, rec.OvertimeHours)
	assert.Equal(t, 2.0, rec.RegularOvertimeHours)
	assert.Equal(t, 1.5, rec.OvertimeRate)
	require.NotNil(t, rec.OvertimeRuleID)

	for _, e := range f.events.events {
		assert.True(t, e.IsProcessed)
		require.NotNil(t, e.AttendanceRecordID)
		assert.Equal(t, rec.ID, *e.AttendanceRecordID)
	}
}

func TestReconcileDay_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture()

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	f.events.add(punchAt("1", "check_in", day.Add(9*time.Hour)))
	f.events.add(punchAt("2", "check_out", day.Add(17*time.Hour)))

	first, err := f.svc.ReconcileDay(ctx, "emp-1", day)
	require.NoError(t, err)

	second, err := f.svc.ReconcileDay(ctx, "emp-1", day)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.WorkHours, second.WorkHours)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.OvertimeHours, second.OvertimeHours)

	records, total, err := f.records.List(ctx, attendance.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, int64(1), total)
}

func TestReconcileDay_MissingCheckoutThenRepaired(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture()

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	f.events.add(punchAt("1", "check_in", day.Add(9*time.Hour)))

	rec, err := f.svc.ReconcileDay(ctx, "emp-1", day)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusMissingCheckOut, rec.Status)
	assert.Equal(t, 0.0, rec.WorkHours)

	// The checkout arrives late; reconciliation overwrites the same row.
	f.events.add(punchAt("2", "check_out", day.Add(17*time.Hour)))

	repaired, err := f.svc.ReconcileDay(ctx, "emp-1", day)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, repaired.ID)
	assert.Equal(t, attendance.StatusPresent, repaired.Status)
	assert.Equal(t, 8.0, repaired.WorkHours)
}

func TestReconcileDay_NoPunches(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture()

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	_, err := f.svc.ReconcileDay(ctx, "emp-1", day)
	assert.ErrorIs(t, err, attendance.ErrNoPunches)
}

func TestReconcileDay_BreakOnlyDaySkipped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture()

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	f.events.add(punchAt("1", "break_out", day.Add(12*time.Hour)))
	f.events.add(punchAt("2", "break_in", day.Add(13*time.Hour)))

	_, err := f.svc.ReconcileDay(ctx, "emp-1", day)
	assert.ErrorIs(t, err, attendance.ErrNoPunches)

	records, _, err := f.records.List(ctx, attendance.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, records)

	// The break punches are retired without a record link so the next
	// sweep does not pick the day up again.
	for _, id := range []string{"1", "2"} {
		assert.True(t, f.events.events[id].IsProcessed)
		assert.Nil(t, f.events.events[id].AttendanceRecordID)
	}
	days, err := f.events.ListUnprocessedDays(ctx, day, day)
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestReconcileDay_WeekendAllHoursOvertime(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture()

	saturday := time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)
	f.events.add(punchAt("1", "check_in", saturday.Add(10*time.Hour)))
	f.events.add(punchAt("2", "check_out", saturday.Add(16*time.Hour)))

	rec, err := f.svc.ReconcileDay(ctx, "emp-1", saturday)
	require.NoError(t, err)

	assert.True(t, rec.IsWeekend)
	assert.Equal(t, 6.0, rec.WeekendOvertimeHours)
	assert.Equal(t, 6.0, rec.OvertimeHours)
	assert.Equal(t, 0.0, rec.RegularOvertimeHours)
	assert.Equal(t, 2.0, rec.OvertimeRate)
}

func TestReconcileDay_HolidayPrecedence(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture()

	saturday := time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)
	f.holidays.holidays = append(f.holidays.holidays, holiday.Holiday{
		ID:   "h1",
		Name: "Founders Day",
		Date: saturday,
	})
	f.events.add(punchAt("1", "check_in", saturday.Add(10*time.Hour)))
	f.events.add(punchAt("2", "check_out", saturday.Add(15*time.Hour)))

	rec, err := f.svc.ReconcileDay(ctx, "emp-1", saturday)
	require.NoError(t, err)

	assert.True(t, rec.IsHoliday)
	assert.Equal(t, 5.0, rec.HolidayOvertimeHours)
	assert.Equal(t, 0.0, rec.WeekendOvertimeHours)
	assert.Equal(t, 2.5, rec.OvertimeRate)
}

func TestReconcileAll_SweepsAndCounts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture()

	day1 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	f.events.add(punchAt("1", "check_in", day1.Add(9*time.Hour)))
	f.events.add(punchAt("2", "check_out", day1.Add(17*time.Hour)))
	f.events.add(punchAt("3", "check_in", day2.Add(9*time.Hour)))
	// Break-only day: skipped, no record.
	day3 := time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC)
	f.events.add(punchAt("4", "break_out", day3.Add(12*time.Hour)))

	result, err := f.svc.ReconcileAll(ctx, day1, day3)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Failed)

	// Everything was consumed, the break-only day included, so a
	// second sweep finds nothing to do.
	result, err = f.svc.ReconcileAll(ctx, day1, day3)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 0, result.Skipped)
}

func TestReprocess_RebuildsFromScratch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture()

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	f.events.add(punchAt("1", "check_in", day.Add(9*time.Hour)))
	f.events.add(punchAt("2", "check_out", day.Add(17*time.Hour)))

	first, err := f.svc.ReconcileDay(ctx, "emp-1", day)
	require.NoError(t, err)

	rec, err := f.svc.Reprocess(ctx, "emp-1", day)
	require.NoError(t, err)

	assert.Equal(t, first.ID, rec.ID)
	assert.Equal(t, first.WorkHours, rec.WorkHours)
	for _, e := range f.events.events {
		assert.True(t, e.IsProcessed)
	}
}
