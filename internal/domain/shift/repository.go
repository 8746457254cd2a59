package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	List(ctx context.Context, activeOnly bool) ([]Shift, error)
	Update(ctx context.Context, s Shift) (Shift, error)
	Deactivate(ctx context.Context, id string) error
}

type AssignmentRepository interface {
	Create(ctx context.Context, a Assignment) (Assignment, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Assignment, error)
	End(ctx context.Context, id string, endDate time.Time) error
}
