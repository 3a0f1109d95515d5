package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/talentflow/internal/ports/secondary"
)

// ResponseRepository implements secondary.ResponseRepository with SQLite.
// Responses are append-only and never deduplicated: the same candidate may
// submit an assessment more than once.
type ResponseRepository struct {
	db *sql.DB
}

// NewResponseRepository creates a new SQLite response repository.
func NewResponseRepository(db *sql.DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

// Create persists a submitted response.
func (r *ResponseRepository) Create(ctx context.Context, response *secondary.ResponseRecord) error {
	submittedAt := response.SubmittedAt
	if submittedAt == "" {
		submittedAt = time.Now().UTC().Format(time.RFC3339)
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO assessment_responses (id, assessment_id, candidate_id, answers, submitted_at) VALUES (?, ?, ?, ?, ?)",
		response.ID, response.AssessmentID, response.CandidateID, response.Answers, submittedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create response: %w", err)
	}

	return nil
}

// CountByAssessment returns the number of responses for an assessment.
func (r *ResponseRepository) CountByAssessment(ctx context.Context, assessmentID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM assessment_responses WHERE assessment_id = ?",
		assessmentID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count responses: %w", err)
	}
	return count, nil
}
