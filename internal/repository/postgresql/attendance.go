package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mir-ams/attendance-backend-go/internal/domain/attendance"
	"github.com/mir-ams/attendance-backend-go/internal/pkg/database"
)

type attendanceRecordRepository struct {
	db *database.DB
}

func NewAttendanceRecordRepository(db *database.DB) attendance.RecordRepository {
	return &attendanceRecordRepository{db: db}
}

const recordColumns = `
	ar.id, ar.employee_id, ar.date, ar.shift_id, ar.overtime_rule_id,
	ar.check_in, ar.check_out, ar.status, ar.is_holiday, ar.is_weekend,
	ar.work_hours, ar.break_duration, ar.total_duration, ar.late_minutes, ar.shift_type,
	ar.overtime_hours, ar.overtime_rate, ar.regular_overtime_hours,
	ar.weekend_overtime_hours, ar.holiday_overtime_hours, ar.overtime_night_hours,
	ar.notes, ar.created_at, ar.updated_at
`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.ShiftID, &rec.OvertimeRuleID,
		&rec.CheckIn, &rec.CheckOut, &rec.Status, &rec.IsHoliday, &rec.IsWeekend,
		&rec.WorkHours, &rec.BreakDuration, &rec.TotalDuration, &rec.LateMinutes, &rec.ShiftType,
		&rec.OvertimeHours, &rec.OvertimeRate, &rec.RegularOvertimeHours,
		&rec.WeekendOvertimeHours, &rec.HolidayOvertimeHours, &rec.OvertimeNightHours,
		&rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Upsert writes one employee-day, fully replacing every derived column
// on conflict. The inserted flag comes from xmax: a freshly inserted
// row has xmax 0.
func (r *attendanceRecordRepository) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, bool, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, shift_id, overtime_rule_id,
			check_in, check_out, status, is_holiday, is_weekend,
			work_hours, break_duration, total_duration, late_minutes, shift_type,
			overtime_hours, overtime_rate, regular_overtime_hours,
			weekend_overtime_hours, holiday_overtime_hours, overtime_night_hours,
			notes, created_at, updated_at
		)
		VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15,
			$16, $17, $18,
			$19, $20, $21,
			$22, NOW(), NOW()
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			shift_id = EXCLUDED.shift_id,
			overtime_rule_id = EXCLUDED.overtime_rule_id,
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			status = EXCLUDED.status,
			is_holiday = EXCLUDED.is_holiday,
			is_weekend = EXCLUDED.is_weekend,
			work_hours = EXCLUDED.work_hours,
			break_duration = EXCLUDED.break_duration,
			total_duration = EXCLUDED.total_duration,
			late_minutes = EXCLUDED.late_minutes,
			shift_type = EXCLUDED.shift_type,
			overtime_hours = EXCLUDED.overtime_hours,
			overtime_rate = EXCLUDED.overtime_rate,
			regular_overtime_hours = EXCLUDED.regular_overtime_hours,
			weekend_overtime_hours = EXCLUDED.weekend_overtime_hours,
			holiday_overtime_hours = EXCLUDED.holiday_overtime_hours,
			overtime_night_hours = EXCLUDED.overtime_night_hours,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at, (xmax = 0) AS inserted
	`

	var inserted bool
	err := querier.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.Date, rec.ShiftID, rec.OvertimeRuleID,
		rec.CheckIn, rec.CheckOut, rec.Status, rec.IsHoliday, rec.IsWeekend,
		rec.WorkHours, rec.BreakDuration, rec.TotalDuration, rec.LateMinutes, rec.ShiftType,
		rec.OvertimeHours, rec.OvertimeRate, rec.RegularOvertimeHours,
		rec.WeekendOvertimeHours, rec.HolidayOvertimeHours, rec.OvertimeNightHours,
		rec.Notes,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt, &inserted)
	if err != nil {
		return attendance.Record{}, false, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return rec, inserted, nil
}

func (r *attendanceRecordRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + recordColumns + ` FROM attendance_records ar WHERE ar.id = $1`

	rec, err := scanRecord(querier.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return rec, nil
}

func (r *attendanceRecordRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + recordColumns + ` FROM attendance_records ar WHERE ar.employee_id = $1 AND ar.date = $2`

	rec, err := scanRecord(querier.QueryRow(ctx, query, employeeID, date))
	if errors.Is(err, pgx.ErrNoRows) {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return rec, nil
}

func (r *attendanceRecordRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	querier := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("ar.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Department != nil {
		conditions = append(conditions, fmt.Sprintf("e.department = $%d", argPos))
		args = append(args, *filter.Department)
		argPos++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("ar.date >= $%d", argPos))
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("ar.date <= $%d", argPos))
		args = append(args, *filter.EndDate)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("ar.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	countQuery := `
		SELECT COUNT(*)
		FROM attendance_records ar
		JOIN employees e ON e.id = ar.employee_id
		WHERE ` + where

	var total int64
	if err := querier.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	sortBy := "ar.date"
	switch filter.SortBy {
	case "work_hours":
		sortBy = "ar.work_hours"
	case "overtime_hours":
		sortBy = "ar.overtime_hours"
	case "status":
		sortBy = "ar.status"
	}
	sortOrder := "DESC"
	if filter.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT `+recordColumns+`, e.name
		FROM attendance_records ar
		JOIN employees e ON e.id = ar.employee_id
		WHERE %s
		ORDER BY %s %s, ar.employee_id
		LIMIT $%d OFFSET $%d
	`, where, sortBy, sortOrder, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		var name string
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.ShiftID, &rec.OvertimeRuleID,
			&rec.CheckIn, &rec.CheckOut, &rec.Status, &rec.IsHoliday, &rec.IsWeekend,
			&rec.WorkHours, &rec.BreakDuration, &rec.TotalDuration, &rec.LateMinutes, &rec.ShiftType,
			&rec.OvertimeHours, &rec.OvertimeRate, &rec.RegularOvertimeHours,
			&rec.WeekendOvertimeHours, &rec.HolidayOvertimeHours, &rec.OvertimeNightHours,
			&rec.Notes, &rec.CreatedAt, &rec.UpdatedAt, &name,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		rec.EmployeeName = &name
		records = append(records, rec)
	}

	return records, total, rows.Err()
}

func (r *attendanceRecordRepository) DeleteByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) error {
	querier := GetQuerier(ctx, r.db)

	query := `DELETE FROM attendance_records WHERE employee_id = $1 AND date = $2`

	if _, err := querier.Exec(ctx, query, employeeID, date); err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	return nil
}
