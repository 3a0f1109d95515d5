package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/talentflow/internal/ports/secondary"
)

// NoteRepository implements secondary.NoteRepository with SQLite.
type NoteRepository struct {
	db *sql.DB
}

// NewNoteRepository creates a new SQLite note repository.
func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create persists a new note.
func (r *NoteRepository) Create(ctx context.Context, note *secondary.NoteRecord) error {
	createdAt := note.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO candidate_notes (id, candidate_id, content, author, created_at) VALUES (?, ?, ?, ?, ?)",
		note.ID, note.CandidateID, note.Content, note.Author, createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	return nil
}

// ListByCandidate retrieves notes for a candidate, newest first.
func (r *NoteRepository) ListByCandidate(ctx context.Context, candidateID string) ([]*secondary.NoteRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, candidate_id, content, author, created_at FROM candidate_notes WHERE candidate_id = ? ORDER BY created_at DESC",
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []*secondary.NoteRecord
	for rows.Next() {
		var (
			record    secondary.NoteRecord
			createdAt time.Time
		)
		if err := rows.Scan(&record.ID, &record.CandidateID, &record.Content, &record.Author, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)
		notes = append(notes, &record)
	}

	return notes, rows.Err()
}
