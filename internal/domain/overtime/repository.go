package overtime

import "context"

type RuleRepository interface {
	Create(ctx context.Context, r Rule) (Rule, error)
	GetByID(ctx context.Context, id string) (Rule, error)
	ListActive(ctx context.Context) ([]Rule, error)
	List(ctx context.Context) ([]Rule, error)
	Update(ctx context.Context, r Rule) (Rule, error)
	Deactivate(ctx context.Context, id string) error
}
