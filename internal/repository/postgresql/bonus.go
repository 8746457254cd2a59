package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mir-ams/attendance-backend-go/internal/domain/bonus"
	"github.com/mir-ams/attendance-backend-go/internal/pkg/database"
)

type bonusPeriodRepository struct {
	db *database.DB
}

func NewBonusPeriodRepository(db *database.DB) bonus.PeriodRepository {
	return &bonusPeriodRepository{db: db}
}

func (r *bonusPeriodRepository) Create(ctx context.Context, p bonus.Period) (bonus.Period, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bonus_periods (id, name, start_date, end_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	err := querier.QueryRow(ctx, query,
		p.ID, p.Name, p.StartDate, p.EndDate, p.Status,
	).Scan(&p.CreatedAt)
	if err != nil {
		return bonus.Period{}, fmt.Errorf("failed to insert bonus period: %w", err)
	}

	return p, nil
}

func (r *bonusPeriodRepository) GetByID(ctx context.Context, id string) (bonus.Period, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT id, name, start_date, end_date, status, created_at FROM bonus_periods WHERE id = $1`

	var p bonus.Period
	err := querier.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.Status, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return bonus.Period{}, bonus.ErrPeriodNotFound
	}
	if err != nil {
		return bonus.Period{}, fmt.Errorf("failed to get bonus period: %w", err)
	}
	return p, nil
}

func (r *bonusPeriodRepository) List(ctx context.Context) ([]bonus.Period, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT id, name, start_date, end_date, status, created_at FROM bonus_periods ORDER BY start_date DESC`

	rows, err := querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bonus periods: %w", err)
	}
	defer rows.Close()

	var periods []bonus.Period
	for rows.Next() {
		var p bonus.Period
		if err := rows.Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bonus period: %w", err)
		}
		periods = append(periods, p)
	}

	return periods, rows.Err()
}

type bonusSubmissionRepository struct {
	db *database.DB
}

func NewBonusSubmissionRepository(db *database.DB) bonus.SubmissionRepository {
	return &bonusSubmissionRepository{db: db}
}

const submissionColumns = `
	id, period_id, department, status, notes, submitted_by, submitted_at,
	approvers, approval_level, reviewed_by, reviewed_at, created_at, updated_at
`

func scanSubmission(row pgx.Row) (bonus.Submission, error) {
	var s bonus.Submission
	err := row.Scan(
		&s.ID, &s.PeriodID, &s.Department, &s.Status, &s.Notes, &s.SubmittedBy, &s.SubmittedAt,
		&s.Approvers, &s.ApprovalLevel, &s.ReviewedBy, &s.ReviewedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *bonusSubmissionRepository) Create(ctx context.Context, s bonus.Submission) (bonus.Submission, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bonus_submissions (
			id, period_id, department, status, notes, submitted_by, submitted_at,
			approvers, approval_level, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	if s.Approvers == nil {
		s.Approvers = []string{}
	}

	err := querier.QueryRow(ctx, query,
		s.ID, s.PeriodID, s.Department, s.Status, s.Notes, s.SubmittedBy, s.SubmittedAt,
		s.Approvers, s.ApprovalLevel,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return bonus.Submission{}, fmt.Errorf("failed to insert bonus submission: %w", err)
	}

	return s, nil
}

func (r *bonusSubmissionRepository) GetByID(ctx context.Context, id string) (bonus.Submission, error) {
	querier := GetQuerier(ctx, r.db)

	// FOR UPDATE serializes concurrent approvals inside a transaction.
	query := `SELECT ` + submissionColumns + ` FROM bonus_submissions WHERE id = $1 FOR UPDATE`

	s, err := scanSubmission(querier.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return bonus.Submission{}, bonus.ErrSubmissionNotFound
	}
	if err != nil {
		return bonus.Submission{}, fmt.Errorf("failed to get bonus submission: %w", err)
	}
	return s, nil
}

func (r *bonusSubmissionRepository) ListByPeriod(ctx context.Context, periodID string) ([]bonus.Submission, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + submissionColumns + ` FROM bonus_submissions WHERE period_id = $1 ORDER BY department`

	rows, err := querier.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bonus submissions: %w", err)
	}
	defer rows.Close()

	var submissions []bonus.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bonus submission: %w", err)
		}
		submissions = append(submissions, s)
	}

	return submissions, rows.Err()
}

func (r *bonusSubmissionRepository) Update(ctx context.Context, s bonus.Submission) (bonus.Submission, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		UPDATE bonus_submissions
		SET status = $2, notes = $3, approvers = $4, approval_level = $5,
		    reviewed_by = $6, reviewed_at = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := querier.QueryRow(ctx, query,
		s.ID, s.Status, s.Notes, s.Approvers, s.ApprovalLevel, s.ReviewedBy, s.ReviewedAt,
	).Scan(&s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return bonus.Submission{}, bonus.ErrSubmissionNotFound
	}
	if err != nil {
		return bonus.Submission{}, fmt.Errorf("failed to update bonus submission: %w", err)
	}

	return s, nil
}
