package bonus

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mir-ams/attendance-backend-go/internal/domain/bonus"
	"github.com/mir-ams/attendance-backend-go/internal/pkg/validator"
)

// TxRunner runs a function inside one database transaction, so
// concurrent approvals of the same submission serialize.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type bonusService struct {
	tx             TxRunner
	periodRepo     bonus.PeriodRepository
	submissionRepo bonus.SubmissionRepository

	requiredApprovals int
}

func NewBonusService(
	tx TxRunner,
	periodRepo bonus.PeriodRepository,
	submissionRepo bonus.SubmissionRepository,
	requiredApprovals int,
) bonus.BonusService {
	if requiredApprovals < 1 {
		requiredApprovals = 1
	}
	return &bonusService{
		tx:                tx,
		periodRepo:        periodRepo,
		submissionRepo:    submissionRepo,
		requiredApprovals: requiredApprovals,
	}
}

func (s *bonusService) CreatePeriod(ctx context.Context, req bonus.CreatePeriodRequest) (bonus.Period, error) {
	if err := req.Validate(); err != nil {
		return bonus.Period{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	period := bonus.Period{
		ID:        uuid.NewString(),
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
		Status:    "open",
	}

	created, err := s.periodRepo.Create(ctx, period)
	if err != nil {
		return bonus.Period{}, fmt.Errorf("failed to create bonus period: %w", err)
	}
	return created, nil
}

func (s *bonusService) ListPeriods(ctx context.Context) ([]bonus.Period, error) {
	return s.periodRepo.List(ctx)
}

func (s *bonusService) Submit(ctx context.Context, userID string, req bonus.SubmitRequest) (bonus.Submission, error) {
	if err := req.Validate(); err != nil {
		return bonus.Submission{}, err
	}

	if _, err := s.periodRepo.GetByID(ctx, req.PeriodID); err != nil {
		return bonus.Submission{}, err
	}

	now := time.Now()
	submission := bonus.Submission{
		ID:          uuid.NewString(),
		PeriodID:    req.PeriodID,
		Department:  req.Department,
		Status:      bonus.StatusSubmitted,
		Notes:       req.Notes,
		SubmittedBy: &userID,
		SubmittedAt: &now,
	}

	created, err := s.submissionRepo.Create(ctx, submission)
	if err != nil {
		return bonus.Submission{}, fmt.Errorf("failed to create bonus submission: %w", err)
	}
	return created, nil
}

// Approve records one approval. The submission flips to approved the
// moment the distinct approver count reaches the threshold.
func (s *bonusService) Approve(ctx context.Context, submissionID, userID string) (bonus.Submission, error) {
	var updated bonus.Submission

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		submission, err := s.submissionRepo.GetByID(txCtx, submissionID)
		if err != nil {
			return err
		}

		if submission.Status != bonus.StatusSubmitted && submission.Status != bonus.StatusInReview {
			return bonus.ErrSubmissionClosed
		}
		if submission.HasApprover(userID) {
			return bonus.ErrAlreadyApproved
		}

		submission.Approvers = append(submission.Approvers, userID)
		submission.ApprovalLevel = len(submission.Approvers)

		if submission.ApprovalLevel >= s.requiredApprovals {
			now := time.Now()
			submission.Status = bonus.StatusApproved
			submission.ReviewedBy = &userID
			submission.ReviewedAt = &now
		} else {
			submission.Status = bonus.StatusInReview
		}

		updated, err = s.submissionRepo.Update(txCtx, submission)
		return err
	})
	if err != nil {
		return bonus.Submission{}, err
	}

	return updated, nil
}

func (s *bonusService) Reject(ctx context.Context, submissionID, userID, reason string) (bonus.Submission, error) {
	var updated bonus.Submission

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		submission, err := s.submissionRepo.GetByID(txCtx, submissionID)
		if err != nil {
			return err
		}

		if submission.Status != bonus.StatusSubmitted && submission.Status != bonus.StatusInReview {
			return bonus.ErrSubmissionClosed
		}

		now := time.Now()
		submission.Status = bonus.StatusRejected
		submission.ReviewedBy = &userID
		submission.ReviewedAt = &now
		submission.Notes = &reason

		updated, err = s.submissionRepo.Update(txCtx, submission)
		return err
	})
	if err != nil {
		return bonus.Submission{}, err
	}

	return updated, nil
}

func (s *bonusService) GetSubmission(ctx context.Context, id string) (bonus.Submission, error) {
	return s.submissionRepo.GetByID(ctx, id)
}

func (s *bonusService) ListSubmissions(ctx context.Context, periodID string) ([]bonus.Submission, error) {
	return s.submissionRepo.ListByPeriod(ctx, periodID)
}
