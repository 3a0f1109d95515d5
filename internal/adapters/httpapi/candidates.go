package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/example/talentflow/internal/ports/primary"
)

func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	if !s.simulate(w, r, "Failed to fetch candidates") {
		return
	}

	q := r.URL.Query()
	resp, err := s.candidates.ListCandidates(r.Context(), primary.ListCandidatesRequest{
		Search:   q.Get("search"),
		Stage:    q.Get("stage"),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "pageSize"),
	})
	if err != nil {
		s.logger.Error("list candidates failed", zap.Error(err))
		writeServiceError(w, err, "Candidate not found", "Failed to fetch candidates")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	if !s.simulate(w, r, "Failed to fetch candidate") {
		return
	}

	candidate, err := s.candidates.GetCandidate(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, "Candidate not found", "Failed to fetch candidate")
		return
	}
	writeJSON(w, http.StatusOK, candidate)
}

func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	if !s.simulate(w, r, "Failed to create candidate") {
		return
	}

	var req primary.CreateCandidateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	candidate, err := s.candidates.CreateCandidate(r.Context(), req)
	if err != nil {
		s.logger.Error("create candidate failed", zap.Error(err))
		writeServiceError(w, err, "Candidate not found", "Failed to create candidate")
		return
	}
	writeJSON(w, http.StatusCreated, candidate)
}

func (s *Server) handleUpdateCandidate(w http.ResponseWriter, r *http.Request) {
	if !s.simulate(w, r, "Failed to update candidate") {
		return
	}

	var req primary.UpdateCandidateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = r.PathValue("id")

	candidate, err := s.candidates.UpdateCandidate(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "Candidate not found", "Failed to update candidate")
		return
	}
	writeJSON(w, http.StatusOK, candidate)
}

func (s *Server) handleGetTimeline(w http.ResponseWriter, r *http.Request) {
	if !s.simulate(w, r, "Failed to fetch timeline") {
		return
	}

	entries, err := s.candidates.GetTimeline(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, "Candidate not found", "Failed to fetch timeline")
		return
	}
	if entries == nil {
		entries = []*primary.TimelineEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	if !s.simulate(w, r, "Failed to fetch notes") {
		return
	}

	notes, err := s.candidates.ListNotes(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, "Candidate not found", "Failed to fetch notes")
		return
	}
	if notes == nil {
		notes = []*primary.Note{}
	}
	writeJSON(w, http.StatusOK, notes)
}

func (s *Server) handleAddNote(w http.ResponseWriter, r *http.Request) {
	if !s.simulate(w, r, "Failed to add note") {
		return
	}

	var req primary.AddNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.CandidateID = r.PathValue("id")

	note, err := s.candidates.AddNote(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "Candidate not found", "Failed to add note")
		return
	}
	writeJSON(w, http.StatusCreated, note)
}
