package primary

import "context"

// CandidateService defines the primary port for candidate operations,
// including their timeline and notes.
type CandidateService interface {
	// ListCandidates returns a filtered, paginated page of candidates.
	ListCandidates(ctx context.Context, req ListCandidatesRequest) (*ListCandidatesResponse, error)

	// GetCandidate retrieves a single candidate.
	GetCandidate(ctx context.Context, id string) (*Candidate, error)

	// CreateCandidate inserts a new candidate.
	CreateCandidate(ctx context.Context, req CreateCandidateRequest) (*Candidate, error)

	// UpdateCandidate merges the set fields into an existing candidate.
	// A stage change first appends a timeline entry recording the
	// transition; updating to the same stage appends nothing.
	UpdateCandidate(ctx context.Context, req UpdateCandidateRequest) (*Candidate, error)

	// GetTimeline returns all stage transitions for a candidate,
	// unsorted; callers sort by timestamp as needed.
	GetTimeline(ctx context.Context, candidateID string) ([]*TimelineEntry, error)

	// ListNotes returns a candidate's notes, newest first.
	ListNotes(ctx context.Context, candidateID string) ([]*Note, error)

	// AddNote attaches a note to a candidate.
	AddNote(ctx context.Context, req AddNoteRequest) (*Note, error)
}

// Candidate is an applicant as presented to callers.
type Candidate struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Stage     string `json:"stage"`
	JobID     string `json:"jobId"`
	AppliedAt string `json:"appliedAt"`
}

// ListCandidatesRequest carries the list filters and pagination.
type ListCandidatesRequest struct {
	Search   string
	Stage    string
	Page     int
	PageSize int
}

// ListCandidatesResponse is the paginated envelope for candidate listings.
type ListCandidatesResponse struct {
	Data       []*Candidate `json:"data"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	TotalPages int          `json:"totalPages"`
}

// CreateCandidateRequest carries a new candidate. ID defaults to a
// generated id and Stage to applied.
type CreateCandidateRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Stage string `json:"stage"`
	JobID string `json:"jobId"`
}

// UpdateCandidateRequest carries a partial update; nil fields are left
// unchanged.
type UpdateCandidateRequest struct {
	ID    string  `json:"-"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Stage *string `json:"stage"`
	JobID *string `json:"jobId"`
}

// TimelineEntry is one recorded stage transition.
type TimelineEntry struct {
	ID          string `json:"id"`
	CandidateID string `json:"candidateId"`
	FromStage   string `json:"fromStage"`
	ToStage     string `json:"toStage"`
	Timestamp   string `json:"timestamp"`
}

// Note is a candidate note, with any @mentions extracted from the content.
type Note struct {
	ID          string   `json:"id"`
	CandidateID string   `json:"candidateId"`
	Content     string   `json:"content"`
	Author      string   `json:"author"`
	Mentions    []string `json:"mentions,omitempty"`
	CreatedAt   string   `json:"createdAt"`
}

// AddNoteRequest carries a new note for a candidate.
type AddNoteRequest struct {
	CandidateID string `json:"-"`
	Content     string `json:"content"`
	Author      string `json:"author"`
}
