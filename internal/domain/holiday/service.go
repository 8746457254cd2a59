package holiday

import (
	"context"
	"time"
)

type HolidayService interface {
	Create(ctx context.Context, req CreateHolidayRequest) (Holiday, error)
	ListRange(ctx context.Context, from, to time.Time) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
}
