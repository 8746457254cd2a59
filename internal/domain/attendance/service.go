package attendance

import (
	"context"
	"time"
)

// RecordService serves read access to reconciled attendance.
type RecordService interface {
	List(ctx context.Context, filter ListFilter) ([]Record, int64, error)
	GetByID(ctx context.Context, id string) (Record, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Record, error)
}

// ReconcileService turns unprocessed punch events into attendance
// records.
type ReconcileService interface {
	// ReconcileDay rebuilds the record for one employee-day from its
	// punches. Returns ErrNoPunches when the day has no check-in and no
	// check-out.
	ReconcileDay(ctx context.Context, employeeID string, date time.Time) (Record, error)

	// ReconcileAll sweeps every unprocessed employee-day in the window.
	// Each day commits independently; one bad day never blocks the rest.
	ReconcileAll(ctx context.Context, from, to time.Time) (BatchResult, error)

	// Reprocess forces a from-scratch rebuild of one employee-day,
	// clearing processed flags first. Admin operation.
	Reprocess(ctx context.Context, employeeID string, date time.Time) (Record, error)
}
