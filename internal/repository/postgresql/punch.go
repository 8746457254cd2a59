package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/mir-ams/attendance-backend-go/internal/domain/punch"
	"github.com/mir-ams/attendance-backend-go/internal/pkg/database"
)

type punchEventRepository struct {
	db *database.DB
}

func NewPunchEventRepository(db *database.DB) punch.EventRepository {
	return &punchEventRepository{db: db}
}

func (r *punchEventRepository) Create(ctx context.Context, event punch.Event) (punch.Event, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punch_events (id, employee_id, device_id, kind, event_time, is_processed, created_at)
		VALUES ($1, $2, $3, $4, $5, false, NOW())
		RETURNING created_at
	`

	err := querier.QueryRow(ctx, query,
		event.ID, event.EmployeeID, event.DeviceID, string(event.Kind), event.Timestamp,
	).Scan(&event.CreatedAt)
	if err != nil {
		return punch.Event{}, fmt.Errorf("failed to insert punch event: %w", err)
	}

	return event, nil
}

func (r *punchEventRepository) ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]punch.Event, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, device_id, kind, event_time, is_processed, attendance_record_id, created_at
		FROM punch_events
		WHERE employee_id = $1
		  AND event_time >= $2
		  AND event_time < $2 + INTERVAL '1 day'
		ORDER BY event_time, id
	`

	rows, err := querier.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query punch events: %w", err)
	}
	defer rows.Close()

	var events []punch.Event
	for rows.Next() {
		var e punch.Event
		var kind string
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.DeviceID, &kind, &e.Timestamp,
			&e.IsProcessed, &e.AttendanceRecordID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan punch event: %w", err)
		}
		e.Kind = punch.Kind(kind)
		events = append(events, e)
	}

	return events, rows.Err()
}

func (r *punchEventRepository) ListUnprocessedDays(ctx context.Context, from, to time.Time) ([]punch.DayKey, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, DATE(event_time)
		FROM punch_events
		WHERE is_processed = false
		  AND event_time >= $1
		  AND event_time < $2 + INTERVAL '1 day'
		GROUP BY employee_id, DATE(event_time)
		ORDER BY employee_id, DATE(event_time)
	`

	rows, err := querier.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query unprocessed days: %w", err)
	}
	defer rows.Close()

	var days []punch.DayKey
	for rows.Next() {
		var key punch.DayKey
		if err := rows.Scan(&key.EmployeeID, &key.Date); err != nil {
			return nil, fmt.Errorf("failed to scan day key: %w", err)
		}
		days = append(days, key)
	}

	return days, rows.Err()
}

func (r *punchEventRepository) ListWindow(ctx context.Context, employeeID, deviceID string, kind punch.Kind, at time.Time, window time.Duration) ([]punch.Event, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, device_id, kind, event_time, is_processed, attendance_record_id, created_at
		FROM punch_events
		WHERE employee_id = $1
		  AND device_id = $2
		  AND kind = $3
		  AND event_time BETWEEN $4 AND $5
		ORDER BY event_time
	`

	rows, err := querier.Query(ctx, query, employeeID, deviceID, string(kind),
		at.Add(-window), at.Add(window))
	if err != nil {
		return nil, fmt.Errorf("failed to query punch window: %w", err)
	}
	defer rows.Close()

	var events []punch.Event
	for rows.Next() {
		var e punch.Event
		var k string
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.DeviceID, &k, &e.Timestamp,
			&e.IsProcessed, &e.AttendanceRecordID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan punch event: %w", err)
		}
		e.Kind = punch.Kind(k)
		events = append(events, e)
	}

	return events, rows.Err()
}

func (r *punchEventRepository) MarkProcessed(ctx context.Context, ids []string, recordID *string) error {
	if len(ids) == 0 {
		return nil
	}
	querier := GetQuerier(ctx, r.db)

	query := `
		UPDATE punch_events
		SET is_processed = true, attendance_record_id = $1
		WHERE id = ANY($2)
	`

	tag, err := querier.Exec(ctx, query, recordID, ids)
	if err != nil {
		return fmt.Errorf("failed to mark punch events processed: %w", err)
	}
	if tag.RowsAffected() != int64(len(ids)) {
		return fmt.Errorf("expected to mark %d punch events, marked %d", len(ids), tag.RowsAffected())
	}
	return nil
}

func (r *punchEventRepository) ResetDay(ctx context.Context, employeeID string, date time.Time) error {
	querier := GetQuerier(ctx, r.db)

	query := `
		UPDATE punch_events
		SET is_processed = false, attendance_record_id = NULL
		WHERE employee_id = $1
		  AND event_time >= $2
		  AND event_time < $2 + INTERVAL '1 day'
	`

	if _, err := querier.Exec(ctx, query, employeeID, date); err != nil {
		return fmt.Errorf("failed to reset punch events: %w", err)
	}
	return nil
}

func (r *punchEventRepository) Stats(ctx context.Context) (punch.Stats, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_processed),
		       COUNT(*) FILTER (WHERE NOT is_processed)
		FROM punch_events
	`

	var stats punch.Stats
	err := querier.QueryRow(ctx, query).Scan(&stats.TotalEvents, &stats.ProcessedEvents, &stats.UnprocessedEvents)
	if err != nil {
		return punch.Stats{}, fmt.Errorf("failed to query punch stats: %w", err)
	}
	return stats, nil
}
