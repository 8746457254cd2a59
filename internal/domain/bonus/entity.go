package bonus

import "time"

const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
	StatusInReview  = "in_review"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

// Period is a payroll window bonus submissions are filed against.
type Period struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Status    string
	CreatedAt time.Time
}

// Submission is a department's overtime bonus sheet for one period. It
// moves to approved once the approver set reaches the configured
// threshold; each user may approve at most once.
type Submission struct {
	ID            string
	PeriodID      string
	Department    string
	Status        string
	Notes         *string
	SubmittedBy   *string
	SubmittedAt   *time.Time
	Approvers     []string
	ApprovalLevel int
	ReviewedBy    *string
	ReviewedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasApprover reports whether the user already approved this submission.
func (s *Submission) HasApprover(userID string) bool {
	for _, a := range s.Approvers {
		if a == userID {
			return true
		}
	}
	return false
}
