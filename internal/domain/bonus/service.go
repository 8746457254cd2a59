package bonus

import "context"

// BonusService runs the overtime bonus approval workflow. A submission
// is approved once the number of distinct approvers reaches the
// configured threshold.
type BonusService interface {
	CreatePeriod(ctx context.Context, req CreatePeriodRequest) (Period, error)
	ListPeriods(ctx context.Context) ([]Period, error)

	Submit(ctx context.Context, userID string, req SubmitRequest) (Submission, error)
	Approve(ctx context.Context, submissionID, userID string) (Submission, error)
	Reject(ctx context.Context, submissionID, userID, reason string) (Submission, error)

	GetSubmission(ctx context.Context, id string) (Submission, error)
	ListSubmissions(ctx context.Context, periodID string) ([]Submission, error)
}
