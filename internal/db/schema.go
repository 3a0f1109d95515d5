package db

// SchemaSQL is the complete schema for fresh installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests load
// it via GetSchemaSQL(); repository code referencing a column that does not
// exist here fails immediately with "no such column" instead of drifting.
//
// Tags, assessment sections, and response answers are stored as JSON text:
// they are opaque documents to the store and are only interpreted by the
// core packages.
const SchemaSQL = `
-- Jobs (postings, manually ordered for drag-reorder)
CREATE TABLE IF NOT EXISTS jobs (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	slug TEXT NOT NULL UNIQUE,
	description TEXT,
	status TEXT NOT NULL CHECK(status IN ('active', 'archived')) DEFAULT 'active',
	tags TEXT NOT NULL DEFAULT '[]',
	sort_order INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs(status);
CREATE INDEX IF NOT EXISTS idx_jobs_sort_order ON jobs(sort_order);

-- Candidates (one row per applicant, stage tracks pipeline position)
CREATE TABLE IF NOT EXISTS candidates (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT,
	stage TEXT NOT NULL CHECK(stage IN ('applied', 'screen', 'tech', 'offer', 'hired', 'rejected')) DEFAULT 'applied',
	job_id TEXT NOT NULL,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (job_id) REFERENCES jobs(id)
);

CREATE INDEX IF NOT EXISTS idx_candidates_stage ON candidates(stage);
CREATE INDEX IF NOT EXISTS idx_candidates_job_id ON candidates(job_id);

-- Candidate timeline (append-only stage transition facts)
CREATE TABLE IF NOT EXISTS candidate_timeline (
	id TEXT PRIMARY KEY,
	candidate_id TEXT NOT NULL,
	from_stage TEXT NOT NULL,
	to_stage TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (candidate_id) REFERENCES candidates(id)
);

CREATE INDEX IF NOT EXISTS idx_timeline_candidate_id ON candidate_timeline(candidate_id);

-- Candidate notes (free text, may embed @name mention tokens)
CREATE TABLE IF NOT EXISTS candidate_notes (
	id TEXT PRIMARY KEY,
	candidate_id TEXT NOT NULL,
	content TEXT NOT NULL,
	author TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (candidate_id) REFERENCES candidates(id)
);

CREATE INDEX IF NOT EXISTS idx_notes_candidate_id ON candidate_notes(candidate_id);

-- Assessments (at most one per job; sections stored as a JSON document)
CREATE TABLE IF NOT EXISTS assessments (
	id TEXT PRIMARY KEY,
	job_id TEXT NOT NULL UNIQUE,
	sections TEXT NOT NULL DEFAULT '[]',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (job_id) REFERENCES jobs(id)
);

-- Assessment responses (append-only, no dedup by candidate)
CREATE TABLE IF NOT EXISTS assessment_responses (
	id TEXT PRIMARY KEY,
	assessment_id TEXT NOT NULL,
	candidate_id TEXT NOT NULL,
	answers TEXT NOT NULL DEFAULT '{}',
	submitted_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (assessment_id) REFERENCES assessments(id)
);

CREATE INDEX IF NOT EXISTS idx_responses_assessment_id ON assessment_responses(assessment_id);
CREATE INDEX IF NOT EXISTS idx_responses_candidate_id ON assessment_responses(candidate_id);
`

// GetSchemaSQL returns the authoritative schema SQL for tests and tooling.
func GetSchemaSQL() string {
	return SchemaSQL
}
