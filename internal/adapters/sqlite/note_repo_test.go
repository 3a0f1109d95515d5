package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/talentflow/internal/adapters/sqlite"
	"github.com/example/talentflow/internal/ports/secondary"
)

func TestNoteRepository_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewNoteRepository(db)
	ctx := context.Background()

	seedJob(t, db, "job-1", "", 0)
	seedCandidate(t, db, "candidate-1", "job-1", "applied")

	notes := []*secondary.NoteRecord{
		{ID: "note-1", CandidateID: "candidate-1", Content: "strong phone screen", Author: "HR Team", CreatedAt: "2025-01-01T10:00:00Z"},
		{ID: "note-2", CandidateID: "candidate-1", Content: "follow up with @Alex", Author: "HR Team", CreatedAt: "2025-01-02T10:00:00Z"},
	}
	for _, n := range notes {
		if err := repo.Create(ctx, n); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	listed, err := repo.ListByCandidate(ctx, "candidate-1")
	if err != nil {
		t.Fatalf("ListByCandidate failed: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(listed))
	}
	// Newest first.
	if listed[0].ID != "note-2" || listed[1].ID != "note-1" {
		t.Errorf("unexpected ordering: %s, %s", listed[0].ID, listed[1].ID)
	}
	if listed[1].Content != "strong phone screen" {
		t.Errorf("content did not round-trip: %q", listed[1].Content)
	}
}
