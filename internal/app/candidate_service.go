package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/talentflow/internal/core/notes"
	"github.com/example/talentflow/internal/ports/primary"
	"github.com/example/talentflow/internal/ports/secondary"
)

// CandidateServiceImpl implements the CandidateService interface.
type CandidateServiceImpl struct {
	candidateRepo secondary.CandidateRepository
	timelineRepo  secondary.TimelineRepository
	noteRepo      secondary.NoteRepository
}

// NewCandidateService creates a new CandidateService with injected dependencies.
func NewCandidateService(
	candidateRepo secondary.CandidateRepository,
	timelineRepo secondary.TimelineRepository,
	noteRepo secondary.NoteRepository,
) *CandidateServiceImpl {
	return &CandidateServiceImpl{
		candidateRepo: candidateRepo,
		timelineRepo:  timelineRepo,
		noteRepo:      noteRepo,
	}
}

// ListCandidates returns a filtered, paginated page of candidates.
func (s *CandidateServiceImpl) ListCandidates(ctx context.Context, req primary.ListCandidatesRequest) (*primary.ListCandidatesResponse, error) {
	records, err := s.candidateRepo.List(ctx, secondary.CandidateFilters{
		Search: req.Search,
		Stage:  req.Stage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	page, pageSize := normalizePage(req.Page, req.PageSize, defaultCandidatePageSize)
	window, total, totalPages := paginate(records, page, pageSize)

	candidates := make([]*primary.Candidate, len(window))
	for i, r := range window {
		candidates[i] = recordToCandidate(r)
	}

	return &primary.ListCandidatesResponse{
		Data:       candidates,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// GetCandidate retrieves a single candidate.
func (s *CandidateServiceImpl) GetCandidate(ctx context.Context, id string) (*primary.Candidate, error) {
	record, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return recordToCandidate(record), nil
}

// CreateCandidate inserts a new candidate.
func (s *CandidateServiceImpl) CreateCandidate(ctx context.Context, req primary.CreateCandidateRequest) (*primary.Candidate, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", primary.ErrInvalid)
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", primary.ErrInvalid)
	}
	if req.JobID == "" {
		return nil, fmt.Errorf("%w: jobId is required", primary.ErrInvalid)
	}

	record := &secondary.CandidateRecord{
		ID:        req.ID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Stage:     req.Stage,
		JobID:     req.JobID,
		AppliedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if record.ID == "" {
		record.ID = "candidate-" + uuid.NewString()
	}
	if record.Stage == "" {
		record.Stage = secondary.StageApplied
	}
	if !secondary.ValidStage(record.Stage) {
		return nil, fmt.Errorf("%w: unknown stage %q", primary.ErrInvalid, record.Stage)
	}

	if err := s.candidateRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	created, err := s.candidateRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created candidate: %w", err)
	}
	return recordToCandidate(created), nil
}

// UpdateCandidate merges the set fields into an existing candidate. When
// the stage actually changes, a timeline entry is appended first; the
// existence check precedes the append so a missing candidate never leaves
// a stray transition (check-then-act, not write-then-check).
func (s *CandidateServiceImpl) UpdateCandidate(ctx context.Context, req primary.UpdateCandidateRequest) (*primary.Candidate, error) {
	record, err := s.candidateRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Stage != nil {
		if !secondary.ValidStage(*req.Stage) {
			return nil, fmt.Errorf("%w: unknown stage %q", primary.ErrInvalid, *req.Stage)
		}
		if *req.Stage != record.Stage {
			entry := &secondary.TimelineRecord{
				ID:          "timeline-" + uuid.NewString(),
				CandidateID: record.ID,
				FromStage:   record.Stage,
				ToStage:     *req.Stage,
				CreatedAt:   time.Now().UTC().Format(time.RFC3339),
			}
			if err := s.timelineRepo.Create(ctx, entry); err != nil {
				return nil, fmt.Errorf("failed to record stage transition: %w", err)
			}
		}
		record.Stage = *req.Stage
	}
	if req.Name != nil {
		record.Name = *req.Name
	}
	if req.Email != nil {
		record.Email = *req.Email
	}
	if req.Phone != nil {
		record.Phone = *req.Phone
	}
	if req.JobID != nil {
		record.JobID = *req.JobID
	}

	if err := s.candidateRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}

	updated, err := s.candidateRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated candidate: %w", err)
	}
	return recordToCandidate(updated), nil
}

// GetTimeline returns all stage transitions for a candidate, unsorted.
func (s *CandidateServiceImpl) GetTimeline(ctx context.Context, candidateID string) ([]*primary.TimelineEntry, error) {
	records, err := s.timelineRepo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get timeline: %w", err)
	}

	entries := make([]*primary.TimelineEntry, len(records))
	for i, r := range records {
		entries[i] = &primary.TimelineEntry{
			ID:          r.ID,
			CandidateID: r.CandidateID,
			FromStage:   r.FromStage,
			ToStage:     r.ToStage,
			Timestamp:   r.CreatedAt,
		}
	}
	return entries, nil
}

// ListNotes returns a candidate's notes, newest first.
func (s *CandidateServiceImpl) ListNotes(ctx context.Context, candidateID string) ([]*primary.Note, error) {
	records, err := s.noteRepo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	result := make([]*primary.Note, len(records))
	for i, r := range records {
		result[i] = recordToNote(r)
	}
	return result, nil
}

// AddNote attaches a note to a candidate. The candidate must exist.
func (s *CandidateServiceImpl) AddNote(ctx context.Context, req primary.AddNoteRequest) (*primary.Note, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", primary.ErrInvalid)
	}

	if _, err := s.candidateRepo.GetByID(ctx, req.CandidateID); err != nil {
		return nil, err
	}

	record := &secondary.NoteRecord{
		ID:          "note-" + uuid.NewString(),
		CandidateID: req.CandidateID,
		Content:     req.Content,
		Author:      req.Author,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if record.Author == "" {
		record.Author = "HR Team"
	}

	if err := s.noteRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return recordToNote(record), nil
}

func recordToCandidate(r *secondary.CandidateRecord) *primary.Candidate {
	return &primary.Candidate{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Stage:     r.Stage,
		JobID:     r.JobID,
		AppliedAt: r.AppliedAt,
	}
}

func recordToNote(r *secondary.NoteRecord) *primary.Note {
	return &primary.Note{
		ID:          r.ID,
		CandidateID: r.CandidateID,
		Content:     r.Content,
		Author:      r.Author,
		Mentions:    notes.Mentions(r.Content),
		CreatedAt:   r.CreatedAt,
	}
}
