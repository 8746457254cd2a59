package bonus

import "context"

type PeriodRepository interface {
	Create(ctx context.Context, p Period) (Period, error)
	GetByID(ctx context.Context, id string) (Period, error)
	List(ctx context.Context) ([]Period, error)
}

type SubmissionRepository interface {
	Create(ctx context.Context, s Submission) (Submission, error)
	GetByID(ctx context.Context, id string) (Submission, error)
	ListByPeriod(ctx context.Context, periodID string) ([]Submission, error)
	Update(ctx context.Context, s Submission) (Submission, error)
}
