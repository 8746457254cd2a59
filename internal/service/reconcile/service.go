package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mir-ams/attendance-backend-go/internal/domain/attendance"
	"github.com/mir-ams/attendance-backend-go/internal/domain/employee"
	"github.com/mir-ams/attendance-backend-go/internal/domain/holiday"
	"github.com/mir-ams/attendance-backend-go/internal/domain/overtime"
	"github.com/mir-ams/attendance-backend-go/internal/domain/punch"
	"github.com/mir-ams/attendance-backend-go/internal/domain/shift"
	overtimecalc "github.com/mir-ams/attendance-backend-go/internal/service/overtime"
)

// TxRunner runs a function inside one database transaction. The
// postgresql package provides the production implementation.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type reconcileService struct {
	tx          TxRunner
	eventRepo   punch.EventRepository
	recordRepo  attendance.RecordRepository
	empRepo     employee.EmployeeRepository
	shiftRepo   shift.ShiftRepository
	assignRepo  shift.AssignmentRepository
	ruleRepo    overtime.RuleRepository
	holidayRepo holiday.HolidayRepository

	defaultDailyHours float64
}

func NewReconcileService(
	tx TxRunner,
	eventRepo punch.EventRepository,
	recordRepo attendance.RecordRepository,
	empRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	assignRepo shift.AssignmentRepository,
	ruleRepo overtime.RuleRepository,
	holidayRepo holiday.HolidayRepository,
	defaultDailyHours float64,
) attendance.ReconcileService {
	return &reconcileService{
		tx:                tx,
		eventRepo:         eventRepo,
		recordRepo:        recordRepo,
		empRepo:           empRepo,
		shiftRepo:         shiftRepo,
		assignRepo:        assignRepo,
		ruleRepo:          ruleRepo,
		holidayRepo:       holidayRepo,
		defaultDailyHours: defaultDailyHours,
	}
}

func (s *reconcileService) ReconcileDay(ctx context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	rec, _, err := s.reconcileDay(ctx, employeeID, date)
	return rec, err
}

func (s *reconcileService) Reprocess(ctx context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	date = truncateDay(date)

	if err := s.eventRepo.ResetDay(ctx, employeeID, date); err != nil {
		return attendance.Record{}, fmt.Errorf("failed to reset punch events: %w", err)
	}

	rec, _, err := s.reconcileDay(ctx, employeeID, date)
	return rec, err
}

func (s *reconcileService) ReconcileAll(ctx context.Context, from, to time.Time) (attendance.BatchResult, error) {
	var result attendance.BatchResult

	days, err := s.eventRepo.ListUnprocessedDays(ctx, truncateDay(from), truncateDay(to))
	if err != nil {
		return result, fmt.Errorf("failed to list unprocessed days: %w", err)
	}

	for _, day := range days {
		_, created, err := s.reconcileDay(ctx, day.EmployeeID, day.Date)
		switch {
		case err == nil && created:
			result.Created++
		case err == nil:
			result.Updated++
		case errors.Is(err, attendance.ErrNoPunches):
			result.Skipped++
		default:
			result.Failed++
			slog.Error("Reconcile: employee-day failed",
				"employee_id", day.EmployeeID,
				"date", day.Date.Format("2006-01-02"),
				"error", err)
		}
	}

	return result, nil
}

// reconcileDay rebuilds one employee-day. Reference data is loaded
// outside the transaction; the punch read, record upsert and event
// marking commit atomically so a crash can never leave events consumed
// without their record.
func (s *reconcileService) reconcileDay(ctx context.Context, employeeID string, date time.Time) (attendance.Record, bool, error) {
	date = truncateDay(date)

	emp, err := s.empRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.Record{}, false, fmt.Errorf("failed to load employee: %w", err)
	}

	sh, err := s.resolveShift(ctx, emp, date)
	if err != nil {
		return attendance.Record{}, false, err
	}

	holidays, err := s.holidayRepo.ListForDate(ctx, date)
	if err != nil {
		return attendance.Record{}, false, fmt.Errorf("failed to load holidays: %w", err)
	}
	isHoliday := holiday.AnyApplies(holidays, employeeID, date)

	rules, err := s.ruleRepo.ListActive(ctx)
	if err != nil {
		return attendance.Record{}, false, fmt.Errorf("failed to load overtime rules: %w", err)
	}

	var rec attendance.Record
	var created bool
	var skipped bool

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		events, err := s.eventRepo.ListByEmployeeAndDate(txCtx, employeeID, date)
		if err != nil {
			return fmt.Errorf("failed to load punch events: %w", err)
		}
		if len(events) == 0 {
			return attendance.ErrNoPunches
		}

		d := DeriveDay(DayInput{
			EmployeeID:  employeeID,
			Date:        date,
			Events:      events,
			Shift:       sh,
			WeekendDays: effectiveWeekendDays(emp, sh),
			IsHoliday:   isHoliday,
		})
		if d.Status == attendance.StatusMissingLogs {
			// Break punches with no check-in or check-out can never
			// form a record. Consume them without a record link so the
			// sweep does not re-surface the day every run.
			skipped = true
			if err := s.eventRepo.MarkProcessed(txCtx, d.ConsumedEventIDs, nil); err != nil {
				return fmt.Errorf("failed to mark punch events processed: %w", err)
			}
			return nil
		}

		calc := overtimecalc.Calculate(overtimecalc.CalcInput{
			Date:      date,
			WorkHours: d.WorkHours,
			IsWeekend: d.IsWeekend,
			IsHoliday: isHoliday,
			ShiftType: d.ShiftType,
			Eligibility: overtimecalc.Eligibility{
				Weekday: emp.EligibleForWeekdayOvertime,
				Weekend: emp.EligibleForWeekendOvertime,
				Holiday: emp.EligibleForHolidayOvertime,
			},
			Rules:             rules,
			DefaultDailyHours: s.defaultDailyHours,
		})

		candidate := attendance.Record{
			ID:                   uuid.NewString(),
			EmployeeID:           employeeID,
			Date:                 date,
			CheckIn:              d.CheckIn,
			CheckOut:             d.CheckOut,
			Status:               d.Status,
			IsHoliday:            isHoliday,
			IsWeekend:            d.IsWeekend,
			WorkHours:            d.WorkHours,
			BreakDuration:        d.BreakDuration,
			TotalDuration:        d.TotalDuration,
			LateMinutes:          d.LateMinutes,
			ShiftType:            d.ShiftType,
			OvertimeHours:        calc.Total,
			OvertimeRate:         calc.Rate,
			RegularOvertimeHours: calc.Regular,
			WeekendOvertimeHours: calc.Weekend,
			HolidayOvertimeHours: calc.Holiday,
			OvertimeNightHours:   calc.Night,
			OvertimeRuleID:       calc.RuleID,
		}
		if sh != nil {
			id := sh.ID
			candidate.ShiftID = &id
		}

		rec, created, err = s.recordRepo.Upsert(txCtx, candidate)
		if err != nil {
			return fmt.Errorf("failed to upsert attendance record: %w", err)
		}

		if err := s.eventRepo.MarkProcessed(txCtx, d.ConsumedEventIDs, &rec.ID); err != nil {
			return fmt.Errorf("failed to mark punch events processed: %w", err)
		}

		return nil
	})
	if err != nil {
		return attendance.Record{}, false, err
	}
	if skipped {
		return attendance.Record{}, false, attendance.ErrNoPunches
	}

	return rec, created, nil
}

// resolveShift walks assignment history for the day, falling back to
// the employee's current shift. A dangling shift reference is not
// fatal; the day just reconciles shiftless.
func (s *reconcileService) resolveShift(ctx context.Context, emp employee.Employee, date time.Time) (*shift.Shift, error) {
	assignments, err := s.assignRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift assignments: %w", err)
	}

	shiftID := ""
	if a := shift.ActiveAssignment(assignments, date); a != nil {
		shiftID = a.ShiftID
	} else if emp.CurrentShiftID != nil {
		shiftID = *emp.CurrentShiftID
	}
	if shiftID == "" {
		return nil, nil
	}

	sh, err := s.shiftRepo.GetByID(ctx, shiftID)
	if errors.Is(err, shift.ErrShiftNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load shift: %w", err)
	}
	return &sh, nil
}

func effectiveWeekendDays(emp employee.Employee, sh *shift.Shift) []int {
	if len(emp.WeekendDays) > 0 {
		return emp.WeekendDays
	}
	if sh != nil && len(sh.WeekendDays) > 0 {
		return sh.WeekendDays
	}
	return shift.DefaultWeekendDays
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
