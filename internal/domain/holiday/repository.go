package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)
	// ListForDate returns holidays that can cover the given date: exact
	// matches plus recurring holidays on the same month and day.
	ListForDate(ctx context.Context, date time.Time) ([]Holiday, error)
	ListRange(ctx context.Context, from, to time.Time) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
}
