package overtime

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mir-ams/attendance-backend-go/internal/domain/overtime"
	"github.com/mir-ams/attendance-backend-go/internal/pkg/validator"
)

type ruleService struct {
	ruleRepo overtime.RuleRepository
}

func NewRuleService(ruleRepo overtime.RuleRepository) overtime.RuleService {
	return &ruleService{ruleRepo: ruleRepo}
}

func (s *ruleService) Create(ctx context.Context, req overtime.CreateRuleRequest) (overtime.Rule, error) {
	if err := req.Validate(); err != nil {
		return overtime.Rule{}, err
	}

	rule := overtime.Rule{
		ID:                uuid.NewString(),
		Name:              req.Name,
		Description:       req.Description,
		ApplyOnWeekday:    req.ApplyOnWeekday,
		ApplyOnWeekend:    req.ApplyOnWeekend,
		ApplyOnHoliday:    req.ApplyOnHoliday,
		DailyRegularHours: req.DailyRegularHours,
		MaxDailyOvertime:  req.MaxDailyOvertime,
		WeekdayMultiplier: req.WeekdayMultiplier,
		WeekendMultiplier: req.WeekendMultiplier,
		HolidayMultiplier: req.HolidayMultiplier,
		Priority:          req.Priority,
		IsActive:          true,
	}
	if req.ValidFrom != nil {
		if d, ok := validator.IsValidDate(*req.ValidFrom); ok {
			rule.ValidFrom = &d
		}
	}
	if req.ValidUntil != nil {
		if d, ok := validator.IsValidDate(*req.ValidUntil); ok {
			rule.ValidUntil = &d
		}
	}

	created, err := s.ruleRepo.Create(ctx, rule)
	if err != nil {
		return overtime.Rule{}, fmt.Errorf("failed to create overtime rule: %w", err)
	}
	return created, nil
}

func (s *ruleService) GetByID(ctx context.Context, id string) (overtime.Rule, error) {
	return s.ruleRepo.GetByID(ctx, id)
}

func (s *ruleService) List(ctx context.Context) ([]overtime.Rule, error) {
	return s.ruleRepo.List(ctx)
}

func (s *ruleService) Deactivate(ctx context.Context, id string) error {
	if _, err := s.ruleRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.ruleRepo.Deactivate(ctx, id)
}
