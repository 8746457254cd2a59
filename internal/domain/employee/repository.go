package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	List(ctx context.Context, filter ListFilter) ([]Employee, int64, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	UpdateOvertimeEligibility(ctx context.Context, id string, weekday, weekend, holiday bool) error
	UpdateWeekendDays(ctx context.Context, id string, days []int) error
}
