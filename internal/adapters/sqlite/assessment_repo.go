package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/talentflow/internal/ports/secondary"
)

// AssessmentRepository implements secondary.AssessmentRepository with SQLite.
type AssessmentRepository struct {
	db *sql.DB
}

// NewAssessmentRepository creates a new SQLite assessment repository.
func NewAssessmentRepository(db *sql.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// Create persists a new assessment.
func (r *AssessmentRepository) Create(ctx context.Context, a *secondary.AssessmentRecord) error {
	createdAt := a.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO assessments (id, job_id, sections, created_at) VALUES (?, ?, ?, ?)",
		a.ID, a.JobID, a.Sections, createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create assessment: %w", err)
	}

	return nil
}

// GetByJobID retrieves the assessment for a job, or (nil, nil) when the
// job has none.
func (r *AssessmentRepository) GetByJobID(ctx context.Context, jobID string) (*secondary.AssessmentRecord, error) {
	var (
		record    secondary.AssessmentRecord
		createdAt time.Time
	)

	err := r.db.QueryRowContext(ctx,
		"SELECT id, job_id, sections, created_at FROM assessments WHERE job_id = ?",
		jobID,
	).Scan(&record.ID, &record.JobID, &record.Sections, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	return &record, nil
}

// Update overwrites an existing assessment's sections.
func (r *AssessmentRepository) Update(ctx context.Context, a *secondary.AssessmentRecord) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE assessments SET sections = ? WHERE id = ?",
		a.Sections, a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update assessment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update assessment: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("assessment %s: %w", a.ID, secondary.ErrNotFound)
	}

	return nil
}
