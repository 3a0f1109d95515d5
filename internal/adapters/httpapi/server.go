// Package httpapi serves the REST API. Every handler first passes through
// the network simulation policy, so the endpoints behave like an unreliable
// remote API: randomized latency, and a chance of failing before any store
// access.
package httpapi

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/example/talentflow/internal/netsim"
	"github.com/example/talentflow/internal/ports/primary"
)

// Server routes API requests to the primary services.
type Server struct {
	jobs        primary.JobService
	candidates  primary.CandidateService
	assessments primary.AssessmentService
	policy      netsim.Policy
	logger      *zap.Logger
	mux         *http.ServeMux
}

// New creates a Server over the given services. The policy controls the
// simulated latency and failure on every endpoint.
func New(
	jobs primary.JobService,
	candidates primary.CandidateService,
	assessments primary.AssessmentService,
	policy netsim.Policy,
	logger *zap.Logger,
) *Server {
	s := &Server{
		jobs:        jobs,
		candidates:  candidates,
		assessments: assessments,
		policy:      policy,
		logger:      logger,
		mux:         http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)

	s.mux.HandleFunc("GET /api/jobs", s.handleListJobs)
	s.mux.HandleFunc("POST /api/jobs", s.handleCreateJob)
	s.mux.HandleFunc("GET /api/jobs/{id}", s.handleGetJob)
	s.mux.HandleFunc("PATCH /api/jobs/{id}", s.handleUpdateJob)
	s.mux.HandleFunc("PATCH /api/jobs/{id}/reorder", s.handleReorderJob)

	s.mux.HandleFunc("GET /api/candidates", s.handleListCandidates)
	s.mux.HandleFunc("POST /api/candidates", s.handleCreateCandidate)
	s.mux.HandleFunc("GET /api/candidates/{id}", s.handleGetCandidate)
	s.mux.HandleFunc("PATCH /api/candidates/{id}", s.handleUpdateCandidate)
	s.mux.HandleFunc("GET /api/candidates/{id}/timeline", s.handleGetTimeline)
	s.mux.HandleFunc("GET /api/candidates/{id}/notes", s.handleListNotes)
	s.mux.HandleFunc("POST /api/candidates/{id}/notes", s.handleAddNote)

	s.mux.HandleFunc("GET /api/assessments/{jobId}", s.handleGetAssessment)
	s.mux.HandleFunc("PUT /api/assessments/{jobId}", s.handleUpsertAssessment)
	s.mux.HandleFunc("POST /api/assessments/{jobId}/submit", s.handleSubmitResponse)
}

// ServeHTTP implements http.Handler with per-request logging.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.mux.ServeHTTP(w, r)
	s.logger.Debug("request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Duration("took", time.Since(start)),
	)
}

// simulate applies the fault policy before the handler touches anything.
// It reports false after writing the error response, so a failed call
// leaves the store exactly as it was.
func (s *Server) simulate(w http.ResponseWriter, r *http.Request, failMsg string) bool {
	if err := netsim.Wait(r.Context(), s.policy); err != nil {
		s.logger.Warn("injected transport failure",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		writeError(w, http.StatusInternalServerError, failMsg)
		return false
	}
	return true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
