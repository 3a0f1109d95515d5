package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/example/talentflow/internal/ports/primary"
)

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	if !s.simulate(w, r, "Failed to fetch jobs") {
		return
	}

	q := r.URL.Query()
	resp, err := s.jobs.ListJobs(r.Context(), primary.ListJobsRequest{
		Search:   q.Get("search"),
		Status:   q.Get("status"),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "pageSize"),
	})
	if err != nil {
		s.logger.Error("list jobs failed", zap.Error(err))
		writeServiceError(w, err, "Job not found", "Failed to fetch jobs")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	if !s.simulate(w, r, "Failed to fetch job") {
		return
	}

	job, err := s.jobs.GetJob(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, "Job not found", "Failed to fetch job")
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	if !s.simulate(w, r, "Failed to create job") {
		return
	}

	var req primary.CreateJobRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	job, err := s.jobs.CreateJob(r.Context(), req)
	if err != nil {
		s.logger.Error("create job failed", zap.Error(err))
		writeServiceError(w, err, "Job not found", "Failed to create job")
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	if !s.simulate(w, r, "Failed to update job") {
		return
	}

	var req primary.UpdateJobRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = r.PathValue("id")

	job, err := s.jobs.UpdateJob(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "Job not found", "Failed to update job")
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (s *Server) handleReorderJob(w http.ResponseWriter, r *http.Request) {
	if !s.simulate(w, r, "Reorder failed") {
		return
	}

	// Reorder carries its own extra failure rate on top of the transport
	// one, checked before any job is loaded or written.
	if s.policy.FailReorder() {
		s.logger.Warn("injected reorder failure", zap.String("path", r.URL.Path))
		writeError(w, http.StatusInternalServerError, "Reorder failed")
		return
	}

	var req primary.ReorderJobRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := s.jobs.ReorderJob(r.Context(), req); err != nil {
		writeServiceError(w, err, "Job not found", "Reorder failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
