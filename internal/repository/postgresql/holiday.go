package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mir-ams/attendance-backend-go/internal/domain/holiday"
	"github.com/mir-ams/attendance-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, name, date, is_recurring, employee_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	err := querier.QueryRow(ctx, query,
		h.ID, h.Name, h.Date, h.IsRecurring, h.EmployeeID,
	).Scan(&h.CreatedAt)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to insert holiday: %w", err)
	}

	return h, nil
}

func (r *holidayRepository) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date, is_recurring, employee_id, created_at
		FROM holidays
		WHERE id = $1
	`

	var h holiday.Holiday
	err := querier.QueryRow(ctx, query, id).Scan(&h.ID, &h.Name, &h.Date, &h.IsRecurring, &h.EmployeeID, &h.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return holiday.Holiday{}, holiday.ErrHolidayNotFound
	}
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to get holiday: %w", err)
	}
	return h, nil
}

func (r *holidayRepository) ListForDate(ctx context.Context, date time.Time) ([]holiday.Holiday, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date, is_recurring, employee_id, created_at
		FROM holidays
		WHERE date = $1
		   OR (is_recurring AND EXTRACT(MONTH FROM date) = $2 AND EXTRACT(DAY FROM date) = $3)
	`

	rows, err := querier.Query(ctx, query, date, int(date.Month()), date.Day())
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	return scanHolidays(rows)
}

func (r *holidayRepository) ListRange(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date, is_recurring, employee_id, created_at
		FROM holidays
		WHERE (date BETWEEN $1 AND $2) OR is_recurring
		ORDER BY date
	`

	rows, err := querier.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	return scanHolidays(rows)
}

func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	querier := GetQuerier(ctx, r.db)

	tag, err := querier.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

func scanHolidays(rows pgx.Rows) ([]holiday.Holiday, error) {
	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date, &h.IsRecurring, &h.EmployeeID, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}
