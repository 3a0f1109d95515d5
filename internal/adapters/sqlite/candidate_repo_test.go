package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/example/talentflow/internal/adapters/sqlite"
	"github.com/example/talentflow/internal/ports/secondary"
)

func TestCandidateRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewCandidateRepository(db)
	ctx := context.Background()

	seedJob(t, db, "job-1", "", 0)

	candidate := &secondary.CandidateRecord{
		ID:    "candidate-1",
		Name:  "Emma Wilson",
		Email: "emma@example.com",
		Phone: "+1 555-0101",
		Stage: "applied",
		JobID: "job-1",
	}

	if err := repo.Create(ctx, candidate); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, "candidate-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if retrieved.Name != "Emma Wilson" || retrieved.Phone != "+1 555-0101" {
		t.Errorf("candidate did not round-trip: %+v", retrieved)
	}
	if retrieved.AppliedAt == "" {
		t.Error("expected applied_at to be set")
	}
}

func TestCandidateRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewCandidateRepository(db)

	_, err := repo.GetByID(context.Background(), "candidate-999")
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCandidateRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewCandidateRepository(db)
	ctx := context.Background()

	seedJob(t, db, "job-1", "", 0)
	seedCandidate(t, db, "candidate-1", "job-1", "applied")

	err := repo.Update(ctx, &secondary.CandidateRecord{
		ID:    "candidate-1",
		Name:  "Test Candidate",
		Email: "test@example.com",
		Stage: "screen",
		JobID: "job-1",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	retrieved, _ := repo.GetByID(ctx, "candidate-1")
	if retrieved.Stage != "screen" {
		t.Errorf("stage = %s, want screen", retrieved.Stage)
	}
}

func TestCandidateRepository_Update_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewCandidateRepository(db)

	err := repo.Update(context.Background(), &secondary.CandidateRecord{
		ID: "candidate-999", Name: "X", Email: "x@example.com", Stage: "applied", JobID: "job-1",
	})
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCandidateRepository_List_Filters(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewCandidateRepository(db)
	ctx := context.Background()

	seedJob(t, db, "job-1", "", 0)

	mustCreate := func(c *secondary.CandidateRecord) {
		t.Helper()
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	mustCreate(&secondary.CandidateRecord{ID: "c1", Name: "Emma Wilson", Email: "emma@example.com", Stage: "applied", JobID: "job-1"})
	mustCreate(&secondary.CandidateRecord{ID: "c2", Name: "Liam Brown", Email: "liam@example.com", Stage: "screen", JobID: "job-1"})
	mustCreate(&secondary.CandidateRecord{ID: "c3", Name: "Olivia Wilson", Email: "olivia@example.com", Stage: "applied", JobID: "job-1"})

	// Stage filter.
	candidates, err := repo.List(ctx, secondary.CandidateFilters{Stage: "applied"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(candidates) != 2 {
		t.Errorf("stage filter: expected 2, got %d", len(candidates))
	}

	// Name search, case-insensitive.
	candidates, _ = repo.List(ctx, secondary.CandidateFilters{Search: "wilson"})
	if len(candidates) != 2 {
		t.Errorf("name search: expected 2, got %d", len(candidates))
	}

	// Email search.
	candidates, _ = repo.List(ctx, secondary.CandidateFilters{Search: "liam@"})
	if len(candidates) != 1 || candidates[0].ID != "c2" {
		t.Errorf("email search: got %v", candidates)
	}
}
