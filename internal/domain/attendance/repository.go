package attendance

import (
	"context"
	"time"
)

type RecordRepository interface {
	// Upsert writes the record keyed on (employee_id, date), replacing
	// every derived column on conflict. The returned bool is true when a
	// new row was inserted.
	Upsert(ctx context.Context, rec Record) (Record, bool, error)

	GetByID(ctx context.Context, id string) (Record, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Record, error)
	List(ctx context.Context, filter ListFilter) ([]Record, int64, error)
	DeleteByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) error
}
