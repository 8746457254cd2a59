package shift

import "context"

type ShiftService interface {
	Create(ctx context.Context, req CreateShiftRequest) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	List(ctx context.Context, activeOnly bool) ([]Shift, error)
	Deactivate(ctx context.Context, id string) error

	Assign(ctx context.Context, req AssignShiftRequest) (Assignment, error)
	ListAssignments(ctx context.Context, employeeID string) ([]Assignment, error)
}
