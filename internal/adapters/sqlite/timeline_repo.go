package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/talentflow/internal/ports/secondary"
)

// TimelineRepository implements secondary.TimelineRepository with SQLite.
// The table is append-only: transitions are facts and are never rewritten.
type TimelineRepository struct {
	db *sql.DB
}

// NewTimelineRepository creates a new SQLite timeline repository.
func NewTimelineRepository(db *sql.DB) *TimelineRepository {
	return &TimelineRepository{db: db}
}

// Create appends a stage transition entry.
func (r *TimelineRepository) Create(ctx context.Context, entry *secondary.TimelineRecord) error {
	createdAt := entry.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO candidate_timeline (id, candidate_id, from_stage, to_stage, created_at) VALUES (?, ?, ?, ?, ?)",
		entry.ID, entry.CandidateID, entry.FromStage, entry.ToStage, createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create timeline entry: %w", err)
	}

	return nil
}

// ListByCandidate retrieves all entries for a candidate, unsorted.
func (r *TimelineRepository) ListByCandidate(ctx context.Context, candidateID string) ([]*secondary.TimelineRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, candidate_id, from_stage, to_stage, created_at FROM candidate_timeline WHERE candidate_id = ?",
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list timeline: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.TimelineRecord
	for rows.Next() {
		var (
			record    secondary.TimelineRecord
			createdAt time.Time
		)
		if err := rows.Scan(&record.ID, &record.CandidateID, &record.FromStage, &record.ToStage, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan timeline entry: %w", err)
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)
		entries = append(entries, &record)
	}

	return entries, rows.Err()
}
