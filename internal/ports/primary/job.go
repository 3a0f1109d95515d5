// Package primary defines the primary ports (driving interfaces) for the
// application along with their request/response types. The JSON tags mirror
// the wire format the UI consumes.
package primary

import "context"

// JobService defines the primary port for job operations.
type JobService interface {
	// ListJobs returns a filtered, order-sorted, paginated page of jobs.
	ListJobs(ctx context.Context, req ListJobsRequest) (*ListJobsResponse, error)

	// GetJob retrieves a single job.
	GetJob(ctx context.Context, id string) (*Job, error)

	// CreateJob validates and inserts a new job.
	CreateJob(ctx context.Context, req CreateJobRequest) (*Job, error)

	// UpdateJob merges the set fields into an existing job.
	UpdateJob(ctx context.Context, req UpdateJobRequest) (*Job, error)

	// ReorderJob moves the job at FromOrder to ToOrder, shifting the
	// jobs in between. All-or-nothing: a failure leaves every order
	// value untouched.
	ReorderJob(ctx context.Context, req ReorderJobRequest) error
}

// Job is a job posting as presented to callers.
type Job struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status"`
	Tags        []string `json:"tags"`
	Order       int      `json:"order"`
	CreatedAt   string   `json:"createdAt"`
}

// ListJobsRequest carries the list filters and pagination.
type ListJobsRequest struct {
	Search   string
	Status   string
	Page     int
	PageSize int
}

// ListJobsResponse is the paginated envelope for job listings. Total is
// the filtered count before pagination.
type ListJobsResponse struct {
	Data       []*Job `json:"data"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}

// CreateJobRequest carries a new job. ID defaults to a generated id, Slug
// to a slugified title, Status to active, and Order to the end of the list.
type CreateJobRequest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Tags        []string `json:"tags"`
	Order       *int     `json:"order"`
}

// UpdateJobRequest carries a partial update; nil fields are left unchanged.
type UpdateJobRequest struct {
	ID          string    `json:"-"`
	Title       *string   `json:"title"`
	Slug        *string   `json:"slug"`
	Description *string   `json:"description"`
	Status      *string   `json:"status"`
	Tags        *[]string `json:"tags"`
	Order       *int      `json:"order"`
}

// ReorderJobRequest identifies a move by its order slots, as the UI's
// drag handler does.
type ReorderJobRequest struct {
	ID        string `json:"-"`
	FromOrder int    `json:"fromOrder"`
	ToOrder   int    `json:"toOrder"`
}
