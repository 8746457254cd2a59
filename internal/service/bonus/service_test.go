package bonus

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mir-ams/attendance-backend-go/internal/domain/bonus"
)

type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memPeriodRepo struct {
	periods map[string]bonus.Period
}

func (r *memPeriodRepo) Create(_ context.Context, p bonus.Period) (bonus.Period, error) {
	r.periods[p.ID] = p
	return p, nil
}

func (r *memPeriodRepo) GetByID(_ context.Context, id string) (bonus.Period, error) {
	if p, ok := r.periods[id]; ok {
		return p, nil
	}
	return bonus.Period{}, bonus.ErrPeriodNotFound
}

func (r *memPeriodRepo) List(_ context.Context) ([]bonus.Period, error) {
	var out []bonus.Period
	for _, p := range r.periods {
		out = append(out, p)
	}
	return out, nil
}

type memSubmissionRepo struct {
	submissions map[string]bonus.Submission
}

func (r *memSubmissionRepo) Create(_ context.Context, s bonus.Submission) (bonus.Submission, error) {
	r.submissions[s.ID] = s
	return s, nil
}

func (r *memSubmissionRepo) GetByID(_ context.Context, id string) (bonus.Submission, error) {
	if s, ok := r.submissions[id]; ok {
		return s, nil
	}
	return bonus.Submission{}, bonus.ErrSubmissionNotFound
}

func (r *memSubmissionRepo) ListByPeriod(_ context.Context, periodID string) ([]bonus.Submission, error) {
	var out []bonus.Submission
	for _, s := range r.submissions {
		if s.PeriodID == periodID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memSubmissionRepo) Update(_ context.Context, s bonus.Submission) (bonus.Submission, error) {
	r.submissions[s.ID] = s
	return s, nil
}

func newTestService(requiredApprovals int) (bonus.BonusService, *memSubmissionRepo) {
	periods := &memPeriodRepo{periods: map[string]bonus.Period{
		"period-1": {
			ID:        "period-1",
			Name:      "March 2024",
			StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			Status:    "open",
		},
	}}
	submissions := &memSubmissionRepo{submissions: make(map[string]bonus.Submission)}
	return NewBonusService(passthroughTx{}, periods, submissions, requiredApprovals), submissions
}

func submitOne(t *testing.T, svc bonus.BonusService) bonus.Submission {
	t.Helper()
	s, err := svc.Submit(context.Background(), "hr-1", bonus.SubmitRequest{
		PeriodID:   "period-1",
		Department: "Engineering",
	})
	require.NoError(t, err)
	return s
}

func TestSubmit(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(2)

	s := submitOne(t, svc)

	assert.Equal(t, bonus.StatusSubmitted, s.Status)
	assert.Equal(t, 0, s.ApprovalLevel)
	require.NotNil(t, s.SubmittedBy)
	assert.Equal(t, "hr-1", *s.SubmittedBy)
}

func TestSubmit_UnknownPeriod(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(2)

	_, err := svc.Submit(context.Background(), "hr-1", bonus.SubmitRequest{
		PeriodID:   "period-999",
		Department: "Engineering",
	})
	assert.ErrorIs(t, err, bonus.ErrPeriodNotFound)
}

func TestApprove_ThresholdFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(2)
	s := submitOne(t, svc)

	first, err := svc.Approve(ctx, s.ID, "mgr-1")
	require.NoError(t, err)
	assert.Equal(t, bonus.StatusInReview, first.Status)
	assert.Equal(t, 1, first.ApprovalLevel)
	assert.Nil(t, first.ReviewedBy)

	second, err := svc.Approve(ctx, s.ID, "mgr-2")
	require.NoError(t, err)
	assert.Equal(t, bonus.StatusApproved, second.Status)
	assert.Equal(t, 2, second.ApprovalLevel)
	require.NotNil(t, second.ReviewedBy)
	assert.Equal(t, "mgr-2", *second.ReviewedBy)
	assert.NotNil(t, second.ReviewedAt)
}

func TestApprove_SameUserTwice(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(2)
	s := submitOne(t, svc)

	_, err := svc.Approve(ctx, s.ID, "mgr-1")
	require.NoError(t, err)

	_, err = svc.Approve(ctx, s.ID, "mgr-1")
	assert.ErrorIs(t, err, bonus.ErrAlreadyApproved)
}

func TestApprove_ClosedSubmission(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(1)
	s := submitOne(t, svc)

	_, err := svc.Approve(ctx, s.ID, "mgr-1")
	require.NoError(t, err)

	// Already approved; further approvals are rejected.
	_, err = svc.Approve(ctx, s.ID, "mgr-2")
	assert.ErrorIs(t, err, bonus.ErrSubmissionClosed)
}

func TestReject(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(2)
	s := submitOne(t, svc)

	rejected, err := svc.Reject(ctx, s.ID, "mgr-1", "hours do not match the report")
	require.NoError(t, err)

	assert.Equal(t, bonus.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.Notes)
	assert.Equal(t, "hours do not match the report", *rejected.Notes)

	_, err = svc.Approve(ctx, s.ID, "mgr-2")
	assert.ErrorIs(t, err, bonus.ErrSubmissionClosed)
}
