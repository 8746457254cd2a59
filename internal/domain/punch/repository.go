package punch

import (
	"context"
	"time"
)

// Stats summarizes the state of the event store.
type Stats struct {
	TotalEvents       int64
	ProcessedEvents   int64
	UnprocessedEvents int64
}

// EventRepository defines data access for raw punch events. Events are
// append-only; only reconciliation flips the processed flag.
type EventRepository interface {
	// Create stores a new event.
	Create(ctx context.Context, event Event) (Event, error)

	// ListByEmployeeAndDate returns all events whose timestamp falls on
	// the given calendar date, ordered by timestamp.
	ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]Event, error)

	// ListUnprocessedDays returns the distinct (employee, date) groups
	// that still have unprocessed events, ordered by employee then date.
	ListUnprocessedDays(ctx context.Context, from, to time.Time) ([]DayKey, error)

	// ListWindow returns events for the employee/device/kind whose
	// timestamp lies within window of the given instant. Used for
	// ingestion de-duplication.
	ListWindow(ctx context.Context, employeeID, deviceID string, kind Kind, at time.Time, window time.Duration) ([]Event, error)

	// MarkProcessed sets the processed flag and record back-reference on
	// the given events. Called exactly once per event, inside the same
	// transaction that upserts the record. A nil recordID consumes the
	// events without a record link; groups that can never form a record
	// are retired this way.
	MarkProcessed(ctx context.Context, ids []string, recordID *string) error

	// ResetDay clears the processed flag and record link for an
	// employee-day so reconciliation can be re-run from scratch.
	ResetDay(ctx context.Context, employeeID string, date time.Time) error

	// Stats reports processed/unprocessed counts.
	Stats(ctx context.Context) (Stats, error)
}
