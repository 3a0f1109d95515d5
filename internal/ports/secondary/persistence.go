// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives the record store.
package secondary

import (
	"context"
	"errors"
)

// ErrNotFound marks lookups for records that do not exist. Repositories wrap
// it with the record kind and id; callers match with errors.Is.
var ErrNotFound = errors.New("not found")

// Job statuses.
const (
	JobStatusActive   = "active"
	JobStatusArchived = "archived"
)

// Candidate pipeline stages, in pipeline order.
const (
	StageApplied  = "applied"
	StageScreen   = "screen"
	StageTech     = "tech"
	StageOffer    = "offer"
	StageHired    = "hired"
	StageRejected = "rejected"
)

// Stages returns all candidate stages in pipeline order.
func Stages() []string {
	return []string{StageApplied, StageScreen, StageTech, StageOffer, StageHired, StageRejected}
}

// ValidStage reports whether s is a known pipeline stage.
func ValidStage(s string) bool {
	for _, stage := range Stages() {
		if s == stage {
			return true
		}
	}
	return false
}

// JobRepository defines the secondary port for job persistence.
type JobRepository interface {
	// Create persists a new job.
	Create(ctx context.Context, job *JobRecord) error

	// GetByID retrieves a job by its ID.
	GetByID(ctx context.Context, id string) (*JobRecord, error)

	// Update overwrites an existing job's mutable fields.
	Update(ctx context.Context, job *JobRecord) error

	// List retrieves jobs matching the given filters, ascending by order.
	List(ctx context.Context, filters JobFilters) ([]*JobRecord, error)

	// SlugExists reports whether another job already uses the slug.
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)

	// NextOrder returns the order value for a job appended at the end.
	NextOrder(ctx context.Context) (int, error)

	// ApplyOrderChanges sets new order values atomically. Either every
	// change lands or none do.
	ApplyOrderChanges(ctx context.Context, changes []OrderChange) error
}

// JobRecord represents a job as stored in persistence.
type JobRecord struct {
	ID          string
	Title       string
	Slug        string
	Description string
	Status      string
	Tags        []string
	Order       int
	CreatedAt   string
}

// JobFilters contains filter options for querying jobs.
type JobFilters struct {
	// Search matches case-insensitively against title and tags.
	Search string
	// Status filters by exact status when non-empty.
	Status string
}

// OrderChange assigns a new order value to one job.
type OrderChange struct {
	ID    string
	Order int
}

// CandidateRepository defines the secondary port for candidate persistence.
type CandidateRepository interface {
	// Create persists a new candidate.
	Create(ctx context.Context, candidate *CandidateRecord) error

	// GetByID retrieves a candidate by its ID.
	GetByID(ctx context.Context, id string) (*CandidateRecord, error)

	// Update overwrites an existing candidate's mutable fields.
	Update(ctx context.Context, candidate *CandidateRecord) error

	// List retrieves candidates matching the given filters.
	List(ctx context.Context, filters CandidateFilters) ([]*CandidateRecord, error)
}

// CandidateRecord represents a candidate as stored in persistence.
type CandidateRecord struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Stage     string
	JobID     string
	AppliedAt string
}

// CandidateFilters contains filter options for querying candidates.
type CandidateFilters struct {
	// Search matches case-insensitively against name and email.
	Search string
	// Stage filters by exact stage when non-empty.
	Stage string
}

// TimelineRepository defines the secondary port for stage transition facts.
// Entries are append-only: there is no update or delete.
type TimelineRepository interface {
	// Create appends a stage transition entry.
	Create(ctx context.Context, entry *TimelineRecord) error

	// ListByCandidate retrieves all entries for a candidate, unsorted.
	ListByCandidate(ctx context.Context, candidateID string) ([]*TimelineRecord, error)
}

// TimelineRecord represents one stage transition.
type TimelineRecord struct {
	ID          string
	CandidateID string
	FromStage   string
	ToStage     string
	CreatedAt   string
}

// NoteRepository defines the secondary port for candidate notes.
type NoteRepository interface {
	// Create persists a new note.
	Create(ctx context.Context, note *NoteRecord) error

	// ListByCandidate retrieves notes for a candidate, newest first.
	ListByCandidate(ctx context.Context, candidateID string) ([]*NoteRecord, error)
}

// NoteRecord represents a candidate note as stored in persistence.
type NoteRecord struct {
	ID          string
	CandidateID string
	Content     string
	Author      string
	CreatedAt   string
}

// AssessmentRepository defines the secondary port for assessment persistence.
type AssessmentRepository interface {
	// Create persists a new assessment.
	Create(ctx context.Context, a *AssessmentRecord) error

	// GetByJobID retrieves the assessment for a job, or (nil, nil) when
	// the job has none. Absence is a value, not an error.
	GetByJobID(ctx context.Context, jobID string) (*AssessmentRecord, error)

	// Update overwrites an existing assessment's sections.
	Update(ctx context.Context, a *AssessmentRecord) error
}

// AssessmentRecord represents an assessment as stored in persistence.
// Sections holds the section/question document as JSON.
type AssessmentRecord struct {
	ID        string
	JobID     string
	Sections  string
	CreatedAt string
}

// ResponseRepository defines the secondary port for submitted responses.
// Responses are immutable once created.
type ResponseRepository interface {
	// Create persists a submitted response.
	Create(ctx context.Context, r *ResponseRecord) error

	// CountByAssessment returns the number of responses for an assessment.
	CountByAssessment(ctx context.Context, assessmentID string) (int, error)
}

// ResponseRecord represents a submitted assessment response.
// Answers holds the questionId→answer mapping as JSON.
type ResponseRecord struct {
	ID           string
	AssessmentID string
	CandidateID  string
	Answers      string
	SubmittedAt  string
}
