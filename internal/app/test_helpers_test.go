package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/example/talentflow/internal/ports/secondary"
)

// Ensure the mocks implement the secondary ports
var _ secondary.JobRepository = (*mockJobRepo)(nil)
var _ secondary.CandidateRepository = (*mockCandidateRepo)(nil)
var _ secondary.TimelineRepository = (*mockTimelineRepo)(nil)
var _ secondary.NoteRepository = (*mockNoteRepo)(nil)
var _ secondary.AssessmentRepository = (*mockAssessmentRepo)(nil)
var _ secondary.ResponseRepository = (*mockResponseRepo)(nil)

// mockJobRepo implements secondary.JobRepository for testing.
type mockJobRepo struct {
	jobs      map[string]*secondary.JobRecord
	createErr error
	updateErr error
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{jobs: make(map[string]*secondary.JobRecord)}
}

func (m *mockJobRepo) Create(ctx context.Context, j *secondary.JobRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	cp := *j
	m.jobs[j.ID] = &cp
	return nil
}

func (m *mockJobRepo) GetByID(ctx context.Context, id string) (*secondary.JobRecord, error) {
	j, ok := m.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job %s: %w", id, secondary.ErrNotFound)
	}
	cp := *j
	return &cp, nil
}

func (m *mockJobRepo) Update(ctx context.Context, j *secondary.JobRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.jobs[j.ID]; !ok {
		return fmt.Errorf("job %s: %w", j.ID, secondary.ErrNotFound)
	}
	cp := *j
	m.jobs[j.ID] = &cp
	return nil
}

func (m *mockJobRepo) List(ctx context.Context, filters secondary.JobFilters) ([]*secondary.JobRecord, error) {
	var result []*secondary.JobRecord
	for _, j := range m.jobs {
		if filters.Status != "" && j.Status != filters.Status {
			continue
		}
		if filters.Search != "" && !strings.Contains(strings.ToLower(j.Title), strings.ToLower(filters.Search)) {
			continue
		}
		cp := *j
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, k int) bool { return result[i].Order < result[k].Order })
	return result, nil
}

func (m *mockJobRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	for _, j := range m.jobs {
		if j.Slug == slug && j.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockJobRepo) NextOrder(ctx context.Context) (int, error) {
	next := 0
	for _, j := range m.jobs {
		if j.Order >= next {
			next = j.Order + 1
		}
	}
	return next, nil
}

func (m *mockJobRepo) ApplyOrderChanges(ctx context.Context, changes []secondary.OrderChange) error {
	for _, c := range changes {
		j, ok := m.jobs[c.ID]
		if !ok {
			return fmt.Errorf("job %s: %w", c.ID, secondary.ErrNotFound)
		}
		j.Order = c.Order
	}
	return nil
}

// mockCandidateRepo implements secondary.CandidateRepository for testing.
type mockCandidateRepo struct {
	candidates map[string]*secondary.CandidateRecord
	updateErr  error
}

func newMockCandidateRepo() *mockCandidateRepo {
	return &mockCandidateRepo{candidates: make(map[string]*secondary.CandidateRecord)}
}

func (m *mockCandidateRepo) Create(ctx context.Context, c *secondary.CandidateRecord) error {
	cp := *c
	m.candidates[c.ID] = &cp
	return nil
}

func (m *mockCandidateRepo) GetByID(ctx context.Context, id string) (*secondary.CandidateRecord, error) {
	c, ok := m.candidates[id]
	if !ok {
		return nil, fmt.Errorf("candidate %s: %w", id, secondary.ErrNotFound)
	}
	cp := *c
	return &cp, nil
}

func (m *mockCandidateRepo) Update(ctx context.Context, c *secondary.CandidateRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.candidates[c.ID]; !ok {
		return fmt.Errorf("candidate %s: %w", c.ID, secondary.ErrNotFound)
	}
	cp := *c
	m.candidates[c.ID] = &cp
	return nil
}

func (m *mockCandidateRepo) List(ctx context.Context, filters secondary.CandidateFilters) ([]*secondary.CandidateRecord, error) {
	var result []*secondary.CandidateRecord
	for _, c := range m.candidates {
		if filters.Stage != "" && c.Stage != filters.Stage {
			continue
		}
		if filters.Search != "" {
			needle := strings.ToLower(filters.Search)
			if !strings.Contains(strings.ToLower(c.Name), needle) && !strings.Contains(strings.ToLower(c.Email), needle) {
				continue
			}
		}
		cp := *c
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, k int) bool { return result[i].ID < result[k].ID })
	return result, nil
}

// mockTimelineRepo implements secondary.TimelineRepository for testing.
type mockTimelineRepo struct {
	entries   []*secondary.TimelineRecord
	createErr error
}

func newMockTimelineRepo() *mockTimelineRepo {
	return &mockTimelineRepo{}
}

func (m *mockTimelineRepo) Create(ctx context.Context, e *secondary.TimelineRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	cp := *e
	m.entries = append(m.entries, &cp)
	return nil
}

func (m *mockTimelineRepo) ListByCandidate(ctx context.Context, candidateID string) ([]*secondary.TimelineRecord, error) {
	var result []*secondary.TimelineRecord
	for _, e := range m.entries {
		if e.CandidateID == candidateID {
			cp := *e
			result = append(result, &cp)
		}
	}
	return result, nil
}

// mockNoteRepo implements secondary.NoteRepository for testing.
type mockNoteRepo struct {
	notes []*secondary.NoteRecord
}

func newMockNoteRepo() *mockNoteRepo {
	return &mockNoteRepo{}
}

func (m *mockNoteRepo) Create(ctx context.Context, n *secondary.NoteRecord) error {
	cp := *n
	m.notes = append(m.notes, &cp)
	return nil
}

func (m *mockNoteRepo) ListByCandidate(ctx context.Context, candidateID string) ([]*secondary.NoteRecord, error) {
	var result []*secondary.NoteRecord
	for i := len(m.notes) - 1; i >= 0; i-- {
		if m.notes[i].CandidateID == candidateID {
			cp := *m.notes[i]
			result = append(result, &cp)
		}
	}
	return result, nil
}

// mockAssessmentRepo implements secondary.AssessmentRepository for testing.
type mockAssessmentRepo struct {
	byJob     map[string]*secondary.AssessmentRecord
	createErr error
	updateErr error
}

func newMockAssessmentRepo() *mockAssessmentRepo {
	return &mockAssessmentRepo{byJob: make(map[string]*secondary.AssessmentRecord)}
}

func (m *mockAssessmentRepo) Create(ctx context.Context, a *secondary.AssessmentRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.byJob[a.JobID]; ok {
		return fmt.Errorf("assessment exists for job %s", a.JobID)
	}
	cp := *a
	m.byJob[a.JobID] = &cp
	return nil
}

func (m *mockAssessmentRepo) GetByJobID(ctx context.Context, jobID string) (*secondary.AssessmentRecord, error) {
	a, ok := m.byJob[jobID]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *mockAssessmentRepo) Update(ctx context.Context, a *secondary.AssessmentRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.byJob[a.JobID]; !ok {
		return fmt.Errorf("assessment %s: %w", a.ID, secondary.ErrNotFound)
	}
	cp := *a
	m.byJob[a.JobID] = &cp
	return nil
}

// mockResponseRepo implements secondary.ResponseRepository for testing.
type mockResponseRepo struct {
	responses []*secondary.ResponseRecord
	createErr error
}

func newMockResponseRepo() *mockResponseRepo {
	return &mockResponseRepo{}
}

func (m *mockResponseRepo) Create(ctx context.Context, r *secondary.ResponseRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	cp := *r
	m.responses = append(m.responses, &cp)
	return nil
}

func (m *mockResponseRepo) CountByAssessment(ctx context.Context, assessmentID string) (int, error) {
	count := 0
	for _, r := range m.responses {
		if r.AssessmentID == assessmentID {
			count++
		}
	}
	return count, nil
}
