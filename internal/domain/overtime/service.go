package overtime

import "context"

type RuleService interface {
	Create(ctx context.Context, req CreateRuleRequest) (Rule, error)
	GetByID(ctx context.Context, id string) (Rule, error)
	List(ctx context.Context) ([]Rule, error)
	Deactivate(ctx context.Context, id string) error
}
