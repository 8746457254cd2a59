package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mir-ams/attendance-backend-go/internal/domain/overtime"
	"github.com/mir-ams/attendance-backend-go/internal/pkg/database"
)

type overtimeRuleRepository struct {
	db *database.DB
}

func NewOvertimeRuleRepository(db *database.DB) overtime.RuleRepository {
	return &overtimeRuleRepository{db: db}
}

const ruleColumns = `
	id, name, description, apply_on_weekday, apply_on_weekend, apply_on_holiday,
	daily_regular_hours, max_daily_overtime,
	weekday_multiplier, weekend_multiplier, holiday_multiplier,
	priority, is_active, valid_from, valid_until, created_at, updated_at
`

func scanRule(row pgx.Row) (overtime.Rule, error) {
	var rule overtime.Rule
	err := row.Scan(
		&rule.ID, &rule.Name, &rule.Description,
		&rule.ApplyOnWeekday, &rule.ApplyOnWeekend, &rule.ApplyOnHoliday,
		&rule.DailyRegularHours, &rule.MaxDailyOvertime,
		&rule.WeekdayMultiplier, &rule.WeekendMultiplier, &rule.HolidayMultiplier,
		&rule.Priority, &rule.IsActive, &rule.ValidFrom, &rule.ValidUntil,
		&rule.CreatedAt, &rule.UpdatedAt,
	)
	return rule, err
}

func (r *overtimeRuleRepository) Create(ctx context.Context, rule overtime.Rule) (overtime.Rule, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_rules (
			id, name, description, apply_on_weekday, apply_on_weekend, apply_on_holiday,
			daily_regular_hours, max_daily_overtime,
			weekday_multiplier, weekend_multiplier, holiday_multiplier,
			priority, is_active, valid_from, valid_until, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := querier.QueryRow(ctx, query,
		rule.ID, rule.Name, rule.Description,
		rule.ApplyOnWeekday, rule.ApplyOnWeekend, rule.ApplyOnHoliday,
		rule.DailyRegularHours, rule.MaxDailyOvertime,
		rule.WeekdayMultiplier, rule.WeekendMultiplier, rule.HolidayMultiplier,
		rule.Priority, rule.IsActive, rule.ValidFrom, rule.ValidUntil,
	).Scan(&rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		return overtime.Rule{}, fmt.Errorf("failed to insert overtime rule: %w", err)
	}

	return rule, nil
}

func (r *overtimeRuleRepository) GetByID(ctx context.Context, id string) (overtime.Rule, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + ruleColumns + ` FROM overtime_rules WHERE id = $1`

	rule, err := scanRule(querier.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return overtime.Rule{}, overtime.ErrRuleNotFound
	}
	if err != nil {
		return overtime.Rule{}, fmt.Errorf("failed to get overtime rule: %w", err)
	}
	return rule, nil
}

func (r *overtimeRuleRepository) ListActive(ctx context.Context) ([]overtime.Rule, error) {
	return r.list(ctx, `SELECT `+ruleColumns+` FROM overtime_rules WHERE is_active = true ORDER BY priority DESC, id`)
}

func (r *overtimeRuleRepository) List(ctx context.Context) ([]overtime.Rule, error) {
	return r.list(ctx, `SELECT `+ruleColumns+` FROM overtime_rules ORDER BY priority DESC, id`)
}

func (r *overtimeRuleRepository) list(ctx context.Context, query string) ([]overtime.Rule, error) {
	querier := GetQuerier(ctx, r.db)

	rows, err := querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query overtime rules: %w", err)
	}
	defer rows.Close()

	var rules []overtime.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime rule: %w", err)
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

func (r *overtimeRuleRepository) Update(ctx context.Context, rule overtime.Rule) (overtime.Rule, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime_rules
		SET name = $2, description = $3,
		    apply_on_weekday = $4, apply_on_weekend = $5, apply_on_holiday = $6,
		    daily_regular_hours = $7, max_daily_overtime = $8,
		    weekday_multiplier = $9, weekend_multiplier = $10, holiday_multiplier = $11,
		    priority = $12, is_active = $13, valid_from = $14, valid_until = $15,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := querier.QueryRow(ctx, query,
		rule.ID, rule.Name, rule.Description,
		rule.ApplyOnWeekday, rule.ApplyOnWeekend, rule.ApplyOnHoliday,
		rule.DailyRegularHours, rule.MaxDailyOvertime,
		rule.WeekdayMultiplier, rule.WeekendMultiplier, rule.HolidayMultiplier,
		rule.Priority, rule.IsActive, rule.ValidFrom, rule.ValidUntil,
	).Scan(&rule.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return overtime.Rule{}, overtime.ErrRuleNotFound
	}
	if err != nil {
		return overtime.Rule{}, fmt.Errorf("failed to update overtime rule: %w", err)
	}

	return rule, nil
}

func (r *overtimeRuleRepository) Deactivate(ctx context.Context, id string) error {
	querier := GetQuerier(ctx, r.db)

	query := `UPDATE overtime_rules SET is_active = false, updated_at = NOW() WHERE id = $1`

	tag, err := querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate overtime rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrRuleNotFound
	}
	return nil
}
