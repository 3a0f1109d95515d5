package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/talentflow/internal/core/assessment"
	"github.com/example/talentflow/internal/ports/primary"
	"github.com/example/talentflow/internal/ports/secondary"
)

// AssessmentServiceImpl implements the AssessmentService interface.
type AssessmentServiceImpl struct {
	assessmentRepo secondary.AssessmentRepository
	responseRepo   secondary.ResponseRepository

	// upsertMu serializes read-modify-write upserts so two concurrent
	// saves for the same job cannot both take the create path. The
	// UNIQUE(job_id) constraint backs this up at the schema level.
	upsertMu sync.Mutex
}

// NewAssessmentService creates a new AssessmentService with injected dependencies.
func NewAssessmentService(
	assessmentRepo secondary.AssessmentRepository,
	responseRepo secondary.ResponseRepository,
) *AssessmentServiceImpl {
	return &AssessmentServiceImpl{
		assessmentRepo: assessmentRepo,
		responseRepo:   responseRepo,
	}
}

// GetAssessment returns the assessment for a job, or nil when the job has
// none. Absence is not an error.
func (s *AssessmentServiceImpl) GetAssessment(ctx context.Context, jobID string) (*primary.Assessment, error) {
	record, err := s.assessmentRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}
	if record == nil {
		return nil, nil
	}
	return recordToAssessment(record)
}

// UpsertAssessment saves a job's assessment, replacing the sections of an
// existing one in place. An existing assessment keeps its id across saves.
func (s *AssessmentServiceImpl) UpsertAssessment(ctx context.Context, req primary.UpsertAssessmentRequest) (*primary.Assessment, error) {
	sections, err := json.Marshal(req.Sections)
	if err != nil {
		return nil, fmt.Errorf("%w: sections are not serializable", primary.ErrInvalid)
	}

	s.upsertMu.Lock()
	defer s.upsertMu.Unlock()

	existing, err := s.assessmentRepo.GetByJobID(ctx, req.JobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assessment: %w", err)
	}

	if existing != nil {
		existing.Sections = string(sections)
		if err := s.assessmentRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update assessment: %w", err)
		}
		return recordToAssessment(existing)
	}

	record := &secondary.AssessmentRecord{
		ID:        req.ID,
		JobID:     req.JobID,
		Sections:  string(sections),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if record.ID == "" {
		record.ID = "assessment-" + uuid.NewString()
	}
	if err := s.assessmentRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create assessment: %w", err)
	}
	return recordToAssessment(record)
}

// SubmitResponse validates a candidate's answers against the job's
// assessment and stores them. Validation failures carry the per-question
// errors and write nothing.
func (s *AssessmentServiceImpl) SubmitResponse(ctx context.Context, req primary.SubmitResponseRequest) (*primary.Response, error) {
	record, err := s.assessmentRepo.GetByJobID(ctx, req.JobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assessment: %w", err)
	}
	if record == nil {
		return nil, fmt.Errorf("no assessment for job %s: %w", req.JobID, secondary.ErrNotFound)
	}

	var sections []assessment.Section
	if err := json.Unmarshal([]byte(record.Sections), &sections); err != nil {
		return nil, fmt.Errorf("failed to decode assessment sections: %w", err)
	}

	if errs := assessment.Validate(sections, req.Answers); len(errs) > 0 {
		return nil, &primary.ValidationError{Errors: errs}
	}

	answers, err := json.Marshal(req.Answers)
	if err != nil {
		return nil, fmt.Errorf("%w: answers are not serializable", primary.ErrInvalid)
	}

	response := &secondary.ResponseRecord{
		ID:           req.ID,
		AssessmentID: record.ID,
		CandidateID:  req.CandidateID,
		Answers:      string(answers),
		SubmittedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if response.ID == "" {
		response.ID = "resp-" + uuid.NewString()
	}
	if err := s.responseRepo.Create(ctx, response); err != nil {
		return nil, fmt.Errorf("failed to store response: %w", err)
	}

	return &primary.Response{
		ID:           response.ID,
		AssessmentID: response.AssessmentID,
		CandidateID:  response.CandidateID,
		Answers:      req.Answers,
		SubmittedAt:  response.SubmittedAt,
	}, nil
}

func recordToAssessment(r *secondary.AssessmentRecord) (*primary.Assessment, error) {
	var sections []assessment.Section
	if err := json.Unmarshal([]byte(r.Sections), &sections); err != nil {
		return nil, fmt.Errorf("failed to decode assessment sections: %w", err)
	}
	if sections == nil {
		sections = []assessment.Section{}
	}
	return &primary.Assessment{
		ID:        r.ID,
		JobID:     r.JobID,
		Sections:  sections,
		CreatedAt: r.CreatedAt,
	}, nil
}
