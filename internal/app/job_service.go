// Package app implements the primary ports over the repository interfaces.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/talentflow/internal/core/job"
	"github.com/example/talentflow/internal/core/reorder"
	"github.com/example/talentflow/internal/ports/primary"
	"github.com/example/talentflow/internal/ports/secondary"
)

// Listing defaults matching the UI's page sizes.
const (
	defaultJobPageSize       = 10
	defaultCandidatePageSize = 50
)

// JobServiceImpl implements the JobService interface.
type JobServiceImpl struct {
	jobRepo secondary.JobRepository
}

// NewJobService creates a new JobService with injected dependencies.
func NewJobService(jobRepo secondary.JobRepository) *JobServiceImpl {
	return &JobServiceImpl{jobRepo: jobRepo}
}

// ListJobs returns a filtered, order-sorted, paginated page of jobs.
func (s *JobServiceImpl) ListJobs(ctx context.Context, req primary.ListJobsRequest) (*primary.ListJobsResponse, error) {
	records, err := s.jobRepo.List(ctx, secondary.JobFilters{
		Search: req.Search,
		Status: req.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	page, pageSize := normalizePage(req.Page, req.PageSize, defaultJobPageSize)
	window, total, totalPages := paginate(records, page, pageSize)

	jobs := make([]*primary.Job, len(window))
	for i, r := range window {
		jobs[i] = recordToJob(r)
	}

	return &primary.ListJobsResponse{
		Data:       jobs,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// GetJob retrieves a single job.
func (s *JobServiceImpl) GetJob(ctx context.Context, id string) (*primary.Job, error) {
	record, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return recordToJob(record), nil
}

// CreateJob validates and inserts a new job. Missing id, slug, status, and
// order are defaulted; the caller's values win when present.
func (s *JobServiceImpl) CreateJob(ctx context.Context, req primary.CreateJobRequest) (*primary.Job, error) {
	record := &secondary.JobRecord{
		ID:          req.ID,
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Status:      req.Status,
		Tags:        req.Tags,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if record.ID == "" {
		record.ID = "job-" + uuid.NewString()
	}
	if record.Slug == "" {
		record.Slug = job.Slugify(record.Title)
	}
	if record.Status == "" {
		record.Status = secondary.JobStatusActive
	}
	if record.Tags == nil {
		record.Tags = []string{}
	}

	if err := s.guardJob(ctx, record); err != nil {
		return nil, err
	}

	if req.Order != nil {
		record.Order = *req.Order
	} else {
		next, err := s.jobRepo.NextOrder(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to assign order: %w", err)
		}
		record.Order = next
	}

	if err := s.jobRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	created, err := s.jobRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created job: %w", err)
	}
	return recordToJob(created), nil
}

// UpdateJob merges the set fields into an existing job.
func (s *JobServiceImpl) UpdateJob(ctx context.Context, req primary.UpdateJobRequest) (*primary.Job, error) {
	record, err := s.jobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		record.Title = *req.Title
	}
	if req.Slug != nil {
		record.Slug = *req.Slug
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.Status != nil {
		record.Status = *req.Status
	}
	if req.Tags != nil {
		record.Tags = *req.Tags
	}
	if req.Order != nil {
		record.Order = *req.Order
	}

	if err := s.guardJob(ctx, record); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	updated, err := s.jobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated job: %w", err)
	}
	return recordToJob(updated), nil
}

// ReorderJob moves the job at FromOrder to ToOrder. The shift is planned
// over the current order values and applied atomically.
func (s *JobServiceImpl) ReorderJob(ctx context.Context, req primary.ReorderJobRequest) error {
	records, err := s.jobRepo.List(ctx, secondary.JobFilters{})
	if err != nil {
		return fmt.Errorf("failed to load jobs for reorder: %w", err)
	}

	slots := make([]reorder.Slot, len(records))
	for i, r := range records {
		slots[i] = reorder.Slot{ID: r.ID, Order: r.Order}
	}

	plan, err := reorder.PlanMove(slots, req.FromOrder, req.ToOrder)
	if err != nil {
		return fmt.Errorf("no job at order %d: %w", req.FromOrder, secondary.ErrNotFound)
	}

	changes := make([]secondary.OrderChange, len(plan))
	for i, c := range plan {
		changes[i] = secondary.OrderChange{ID: c.ID, Order: c.Order}
	}

	if err := s.jobRepo.ApplyOrderChanges(ctx, changes); err != nil {
		return fmt.Errorf("failed to reorder job: %w", err)
	}
	return nil
}

func (s *JobServiceImpl) guardJob(ctx context.Context, record *secondary.JobRecord) error {
	taken, err := s.jobRepo.SlugExists(ctx, record.Slug, record.ID)
	if err != nil {
		return fmt.Errorf("failed to check slug: %w", err)
	}

	guard := job.CanSaveJob(job.ValidateJobContext{
		Title:       record.Title,
		Slug:        record.Slug,
		Description: record.Description,
		Status:      record.Status,
		SlugTaken:   taken,
	})
	if !guard.Allowed {
		return fmt.Errorf("%w: %s", primary.ErrInvalid, guard.Reason)
	}
	return nil
}

func recordToJob(r *secondary.JobRecord) *primary.Job {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return &primary.Job{
		ID:          r.ID,
		Title:       r.Title,
		Slug:        r.Slug,
		Description: r.Description,
		Status:      r.Status,
		Tags:        tags,
		Order:       r.Order,
		CreatedAt:   r.CreatedAt,
	}
}

// normalizePage applies the listing defaults for out-of-range paging input.
func normalizePage(page, pageSize, defaultSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	return page, pageSize
}

// paginate slices one page out of the filtered records and returns the
// pre-pagination total and the page count.
func paginate[T any](records []T, page, pageSize int) ([]T, int, int) {
	total := len(records)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start >= total {
		return nil, total, totalPages
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return records[start:end], total, totalPages
}
