// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup loads the schema through db.GetSchemaSQL() so tests run
// against the authoritative schema. Do not hardcode CREATE TABLE statements
// in test files; use setupTestDB() and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/talentflow/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedJob inserts a test job and returns its ID.
func seedJob(t *testing.T, db *sql.DB, id, slug string, order int) string {
	t.Helper()
	if id == "" {
		id = "job-1"
	}
	if slug == "" {
		slug = id
	}
	_, err := db.Exec(
		"INSERT INTO jobs (id, title, slug, status, tags, sort_order) VALUES (?, 'Test Job', ?, 'active', '[]', ?)",
		id, slug, order,
	)
	if err != nil {
		t.Fatalf("failed to seed job: %v", err)
	}
	return id
}

// seedCandidate inserts a test candidate and returns its ID.
func seedCandidate(t *testing.T, db *sql.DB, id, jobID, stage string) string {
	t.Helper()
	if id == "" {
		id = "candidate-1"
	}
	if jobID == "" {
		jobID = "job-1"
	}
	if stage == "" {
		stage = "applied"
	}
	_, err := db.Exec(
		"INSERT INTO candidates (id, name, email, stage, job_id) VALUES (?, 'Test Candidate', 'test@example.com', ?, ?)",
		id, stage, jobID,
	)
	if err != nil {
		t.Fatalf("failed to seed candidate: %v", err)
	}
	return id
}
