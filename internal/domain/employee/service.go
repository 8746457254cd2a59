package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter ListFilter) ([]Employee, int64, error)
	UpdateEligibility(ctx context.Context, id string, req UpdateEligibilityRequest) (Employee, error)
	UpdateWeekendDays(ctx context.Context, id string, req UpdateWeekendDaysRequest) (Employee, error)
}
