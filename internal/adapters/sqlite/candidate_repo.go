package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/example/talentflow/internal/ports/secondary"
)

// CandidateRepository implements secondary.CandidateRepository with SQLite.
type CandidateRepository struct {
	db *sql.DB
}

// NewCandidateRepository creates a new SQLite candidate repository.
func NewCandidateRepository(db *sql.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

// Create persists a new candidate.
func (r *CandidateRepository) Create(ctx context.Context, candidate *secondary.CandidateRecord) error {
	var phone sql.NullString
	if candidate.Phone != "" {
		phone = sql.NullString{String: candidate.Phone, Valid: true}
	}

	appliedAt := candidate.AppliedAt
	if appliedAt == "" {
		appliedAt = time.Now().UTC().Format(time.RFC3339)
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO candidates (id, name, email, phone, stage, job_id, applied_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		candidate.ID, candidate.Name, candidate.Email, phone, candidate.Stage, candidate.JobID, appliedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}

	return nil
}

// GetByID retrieves a candidate by its ID.
func (r *CandidateRepository) GetByID(ctx context.Context, id string) (*secondary.CandidateRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, email, phone, stage, job_id, applied_at FROM candidates WHERE id = ?",
		id,
	)

	record, err := scanCandidate(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("candidate %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	return record, nil
}

// Update overwrites an existing candidate's mutable fields.
func (r *CandidateRepository) Update(ctx context.Context, candidate *secondary.CandidateRecord) error {
	var phone sql.NullString
	if candidate.Phone != "" {
		phone = sql.NullString{String: candidate.Phone, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE candidates SET name = ?, email = ?, phone = ?, stage = ?, job_id = ? WHERE id = ?",
		candidate.Name, candidate.Email, phone, candidate.Stage, candidate.JobID, candidate.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("candidate %s: %w", candidate.ID, secondary.ErrNotFound)
	}

	return nil
}

// List retrieves candidates matching the given filters. Stage filtering
// happens in SQL; the name/email substring search is applied over the
// scanned records to match the jobs listing behavior.
func (r *CandidateRepository) List(ctx context.Context, filters secondary.CandidateFilters) ([]*secondary.CandidateRecord, error) {
	query := "SELECT id, name, email, phone, stage, job_id, applied_at FROM candidates WHERE 1=1"
	args := []any{}

	if filters.Stage != "" {
		query += " AND stage = ?"
		args = append(args, filters.Stage)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []*secondary.CandidateRecord
	for rows.Next() {
		record, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		if filters.Search == "" || candidateMatchesSearch(record, filters.Search) {
			candidates = append(candidates, record)
		}
	}

	return candidates, rows.Err()
}

func scanCandidate(row rowScanner) (*secondary.CandidateRecord, error) {
	var (
		record    secondary.CandidateRecord
		phone     sql.NullString
		appliedAt time.Time
	)

	err := row.Scan(&record.ID, &record.Name, &record.Email, &phone, &record.Stage, &record.JobID, &appliedAt)
	if err != nil {
		return nil, err
	}

	record.Phone = phone.String
	record.AppliedAt = appliedAt.Format(time.RFC3339)
	return &record, nil
}

func candidateMatchesSearch(c *secondary.CandidateRecord, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(c.Name), needle) ||
		strings.Contains(strings.ToLower(c.Email), needle)
}
