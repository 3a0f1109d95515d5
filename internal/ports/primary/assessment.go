package primary

import (
	"context"
	"fmt"

	"github.com/example/talentflow/internal/core/assessment"
)

// AssessmentService defines the primary port for assessment operations.
type AssessmentService interface {
	// GetAssessment returns the assessment for a job, or nil (not an
	// error) when the job has none.
	GetAssessment(ctx context.Context, jobID string) (*Assessment, error)

	// UpsertAssessment saves the assessment for a job: updated in place
	// when one exists (keeping its id), inserted otherwise. Upserts for
	// the same job are serialized.
	UpsertAssessment(ctx context.Context, req UpsertAssessmentRequest) (*Assessment, error)

	// SubmitResponse validates the answers against the job's assessment
	// and records them. On validation failure no record is written and
	// the returned error carries all per-question messages.
	SubmitResponse(ctx context.Context, req SubmitResponseRequest) (*Response, error)
}

// Assessment is an assessment document as presented to callers.
type Assessment struct {
	ID        string               `json:"id"`
	JobID     string               `json:"jobId"`
	Sections  []assessment.Section `json:"sections"`
	CreatedAt string               `json:"createdAt"`
}

// UpsertAssessmentRequest carries the assessment document for a job.
type UpsertAssessmentRequest struct {
	JobID    string               `json:"-"`
	ID       string               `json:"id"`
	Sections []assessment.Section `json:"sections"`
}

// SubmitResponseRequest carries a candidate's answers for a job's assessment.
type SubmitResponseRequest struct {
	JobID       string             `json:"-"`
	ID          string             `json:"id"`
	CandidateID string             `json:"candidateId"`
	Answers     assessment.Answers `json:"answers"`
}

// Response is a recorded assessment submission.
type Response struct {
	ID           string             `json:"id"`
	AssessmentID string             `json:"assessmentId"`
	CandidateID  string             `json:"candidateId"`
	Answers      assessment.Answers `json:"answers"`
	SubmittedAt  string             `json:"submittedAt"`
}

// ValidationError reports per-question validation failures for a rejected
// submission.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d question(s)", len(e.Errors))
}
