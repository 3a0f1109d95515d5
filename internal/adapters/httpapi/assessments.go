package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/example/talentflow/internal/ports/primary"
)

func (s *Server) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	if !s.simulate(w, r, "Failed to fetch assessment") {
		return
	}

	// A job with no assessment yields a 200 with a null body, not a 404:
	// the builder opens on an empty document.
	a, err := s.assessments.GetAssessment(r.Context(), r.PathValue("jobId"))
	if err != nil {
		s.logger.Error("get assessment failed", zap.Error(err))
		writeServiceError(w, err, "Assessment not found", "Failed to fetch assessment")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleUpsertAssessment(w http.ResponseWriter, r *http.Request) {
	if !s.simulate(w, r, "Failed to save assessment") {
		return
	}

	var req primary.UpsertAssessmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.JobID = r.PathValue("jobId")

	a, err := s.assessments.UpsertAssessment(r.Context(), req)
	if err != nil {
		s.logger.Error("save assessment failed", zap.Error(err))
		writeServiceError(w, err, "Assessment not found", "Failed to save assessment")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleSubmitResponse(w http.ResponseWriter, r *http.Request) {
	if !s.simulate(w, r, "Failed to submit assessment") {
		return
	}

	var req primary.SubmitResponseRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.JobID = r.PathValue("jobId")

	resp, err := s.assessments.SubmitResponse(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "Assessment not found", "Failed to submit assessment")
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}
