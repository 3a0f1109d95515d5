package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/talentflow/internal/adapters/sqlite"
	"github.com/example/talentflow/internal/ports/secondary"
)

const sampleSections = `[{"id":"s1","title":"Basics","questions":[{"id":"q1","type":"short-text","text":"Why us?","required":true}]}]`

func TestAssessmentRepository_CreateAndGetByJobID(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAssessmentRepository(db)
	ctx := context.Background()

	seedJob(t, db, "job-1", "", 0)

	a := &secondary.AssessmentRecord{ID: "assessment-1", JobID: "job-1", Sections: sampleSections}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	retrieved, err := repo.GetByJobID(ctx, "job-1")
	if err != nil {
		t.Fatalf("GetByJobID failed: %v", err)
	}
	if retrieved == nil {
		t.Fatal("expected assessment, got nil")
	}
	if retrieved.ID != "assessment-1" || retrieved.Sections != sampleSections {
		t.Errorf("assessment did not round-trip: %+v", retrieved)
	}
}

func TestAssessmentRepository_GetByJobID_AbsentIsNil(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAssessmentRepository(db)

	retrieved, err := repo.GetByJobID(context.Background(), "job-999")
	if err != nil {
		t.Fatalf("GetByJobID failed: %v", err)
	}
	if retrieved != nil {
		t.Errorf("expected nil for absent assessment, got %+v", retrieved)
	}
}

func TestAssessmentRepository_GetByJobID_Stable(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAssessmentRepository(db)
	ctx := context.Background()

	seedJob(t, db, "job-1", "", 0)
	repo.Create(ctx, &secondary.AssessmentRecord{ID: "assessment-1", JobID: "job-1", Sections: sampleSections})

	first, err := repo.GetByJobID(ctx, "job-1")
	if err != nil {
		t.Fatalf("GetByJobID failed: %v", err)
	}
	second, err := repo.GetByJobID(ctx, "job-1")
	if err != nil {
		t.Fatalf("GetByJobID failed: %v", err)
	}
	if first.ID != second.ID || first.Sections != second.Sections || first.CreatedAt != second.CreatedAt {
		t.Errorf("reads differ without an intervening write: %+v vs %+v", first, second)
	}
}

func TestAssessmentRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAssessmentRepository(db)
	ctx := context.Background()

	seedJob(t, db, "job-1", "", 0)
	repo.Create(ctx, &secondary.AssessmentRecord{ID: "assessment-1", JobID: "job-1", Sections: "[]"})

	err := repo.Update(ctx, &secondary.AssessmentRecord{ID: "assessment-1", Sections: sampleSections})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	retrieved, _ := repo.GetByJobID(ctx, "job-1")
	if retrieved.Sections != sampleSections {
		t.Errorf("sections = %s", retrieved.Sections)
	}
	if retrieved.ID != "assessment-1" {
		t.Errorf("id changed across update: %s", retrieved.ID)
	}
}

func TestAssessmentRepository_SecondPerJobRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewAssessmentRepository(db)
	ctx := context.Background()

	seedJob(t, db, "job-1", "", 0)
	repo.Create(ctx, &secondary.AssessmentRecord{ID: "assessment-1", JobID: "job-1", Sections: "[]"})

	err := repo.Create(ctx, &secondary.AssessmentRecord{ID: "assessment-2", JobID: "job-1", Sections: "[]"})
	if err == nil {
		t.Fatal("expected second assessment for the same job to fail")
	}
}
