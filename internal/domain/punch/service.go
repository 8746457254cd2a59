package punch

import (
	"context"
	"io"
	"time"
)

// IngestService funnels every punch source through the same
// normalization and de-duplication pipeline.
type IngestService interface {
	// ImportCSV reads a device export and stores the valid rows.
	ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error)

	// RecordPunch stores one punch pushed by a connector.
	RecordPunch(ctx context.Context, req RecordPunchRequest) (Event, error)

	// ListDay returns one employee's raw events for a calendar date.
	ListDay(ctx context.Context, employeeID string, date time.Time) ([]Event, error)

	// Stats reports event store counters.
	Stats(ctx context.Context) (Stats, error)
}
