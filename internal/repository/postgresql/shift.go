package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mir-ams/attendance-backend-go/internal/domain/shift"
	"github.com/mir-ams/attendance-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftColumns = `
	id, name, start_time, end_time, is_overnight, break_allowance_hours,
	grace_period_minutes, weekend_days, is_active, created_at, updated_at
`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.IsOvernight, &s.BreakAllowanceHours,
		&s.GracePeriodMinutes, &s.WeekendDays, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *shiftRepository) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (
			id, name, start_time, end_time, is_overnight, break_allowance_hours,
			grace_period_minutes, weekend_days, is_active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := querier.QueryRow(ctx, query,
		s.ID, s.Name, s.StartTime, s.EndTime, s.IsOvernight, s.BreakAllowanceHours,
		s.GracePeriodMinutes, s.WeekendDays, s.IsActive,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to insert shift: %w", err)
	}

	return s, nil
}

func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`

	s, err := scanShift(querier.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}
	return s, nil
}

func (r *shiftRepository) List(ctx context.Context, activeOnly bool) ([]shift.Shift, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name`

	rows, err := querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	return shifts, rows.Err()
}

func (r *shiftRepository) Update(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET name = $2, start_time = $3, end_time = $4, is_overnight = $5,
		    break_allowance_hours = $6, grace_period_minutes = $7, weekend_days = $8,
		    is_active = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := querier.QueryRow(ctx, query,
		s.ID, s.Name, s.StartTime, s.EndTime, s.IsOvernight,
		s.BreakAllowanceHours, s.GracePeriodMinutes, s.WeekendDays, s.IsActive,
	).Scan(&s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to update shift: %w", err)
	}

	return s, nil
}

func (r *shiftRepository) Deactivate(ctx context.Context, id string) error {
	querier := GetQuerier(ctx, r.db)

	query := `UPDATE shifts SET is_active = false, updated_at = NOW() WHERE id = $1`

	tag, err := querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

type shiftAssignmentRepository struct {
	db *database.DB
}

func NewShiftAssignmentRepository(db *database.DB) shift.AssignmentRepository {
	return &shiftAssignmentRepository{db: db}
}

func (r *shiftAssignmentRepository) Create(ctx context.Context, a shift.Assignment) (shift.Assignment, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (id, employee_id, shift_id, start_date, end_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := querier.QueryRow(ctx, query,
		a.ID, a.EmployeeID, a.ShiftID, a.StartDate, a.EndDate, a.IsActive,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return shift.Assignment{}, fmt.Errorf("failed to insert shift assignment: %w", err)
	}

	return a, nil
}

func (r *shiftAssignmentRepository) ListByEmployee(ctx context.Context, employeeID string) ([]shift.Assignment, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, shift_id, start_date, end_date, is_active, created_at, updated_at
		FROM shift_assignments
		WHERE employee_id = $1
		ORDER BY start_date DESC, id
	`

	rows, err := querier.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []shift.Assignment
	for rows.Next() {
		var a shift.Assignment
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.ShiftID, &a.StartDate, &a.EndDate,
			&a.IsActive, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}

func (r *shiftAssignmentRepository) End(ctx context.Context, id string, endDate time.Time) error {
	querier := GetQuerier(ctx, r.db)

	query := `UPDATE shift_assignments SET end_date = $2, updated_at = NOW() WHERE id = $1`

	tag, err := querier.Exec(ctx, query, id, endDate)
	if err != nil {
		return fmt.Errorf("failed to end shift assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrAssignmentNotFound
	}
	return nil
}
