// Package sqlite contains SQLite implementations of the repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/example/talentflow/internal/ports/secondary"
)

// JobRepository implements secondary.JobRepository with SQLite.
type JobRepository struct {
	db *sql.DB
}

// NewJobRepository creates a new SQLite job repository.
func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create persists a new job.
func (r *JobRepository) Create(ctx context.Context, job *secondary.JobRecord) error {
	tags, err := json.Marshal(job.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	var description sql.NullString
	if job.Description != "" {
		description = sql.NullString{String: job.Description, Valid: true}
	}

	createdAt := job.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO jobs (id, title, slug, description, status, tags, sort_order, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		job.ID, job.Title, job.Slug, description, job.Status, string(tags), job.Order, createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// GetByID retrieves a job by its ID.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*secondary.JobRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, title, slug, description, status, tags, sort_order, created_at FROM jobs WHERE id = ?",
		id,
	)

	record, err := scanJob(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("job %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return record, nil
}

// Update overwrites an existing job's mutable fields.
func (r *JobRepository) Update(ctx context.Context, job *secondary.JobRecord) error {
	tags, err := json.Marshal(job.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	var description sql.NullString
	if job.Description != "" {
		description = sql.NullString{String: job.Description, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE jobs SET title = ?, slug = ?, description = ?, status = ?, tags = ?, sort_order = ? WHERE id = ?",
		job.Title, job.Slug, description, job.Status, string(tags), job.Order, job.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("job %s: %w", job.ID, secondary.ErrNotFound)
	}

	return nil
}

// List retrieves jobs matching the given filters, ascending by order.
// Status filtering happens in SQL; the substring search is applied over
// the decoded records since it spans the JSON-encoded tags.
func (r *JobRepository) List(ctx context.Context, filters secondary.JobFilters) ([]*secondary.JobRecord, error) {
	query := "SELECT id, title, slug, description, status, tags, sort_order, created_at FROM jobs WHERE 1=1"
	args := []any{}

	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}

	query += " ORDER BY sort_order ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*secondary.JobRecord
	for rows.Next() {
		record, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		if filters.Search == "" || jobMatchesSearch(record, filters.Search) {
			jobs = append(jobs, record)
		}
	}

	return jobs, rows.Err()
}

// SlugExists reports whether another job already uses the slug.
func (r *JobRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM jobs WHERE slug = ? AND id != ?",
		slug, excludeID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return count > 0, nil
}

// NextOrder returns the order value for a job appended at the end.
func (r *JobRepository) NextOrder(ctx context.Context) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(sort_order) + 1, 0) FROM jobs",
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to compute next order: %w", err)
	}
	return next, nil
}

// ApplyOrderChanges sets new order values inside one transaction so a
// failed reorder never leaves a partially shifted sequence.
func (r *JobRepository) ApplyOrderChanges(ctx context.Context, changes []secondary.OrderChange) error {
	if len(changes) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reorder: %w", err)
	}
	defer tx.Rollback()

	for _, c := range changes {
		if _, err := tx.ExecContext(ctx, "UPDATE jobs SET sort_order = ? WHERE id = ?", c.Order, c.ID); err != nil {
			return fmt.Errorf("failed to apply order change: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reorder: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*secondary.JobRecord, error) {
	var (
		record      secondary.JobRecord
		description sql.NullString
		tags        string
		createdAt   time.Time
	)

	err := row.Scan(&record.ID, &record.Title, &record.Slug, &description, &record.Status, &tags, &record.Order, &createdAt)
	if err != nil {
		return nil, err
	}

	record.Description = description.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	if err := json.Unmarshal([]byte(tags), &record.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}

	return &record, nil
}

func jobMatchesSearch(job *secondary.JobRecord, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(job.Title), needle) {
		return true
	}
	for _, tag := range job.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
