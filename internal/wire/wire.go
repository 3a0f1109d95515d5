// Package wire builds the application's object graph. Construction is
// explicit: callers open the database, build the services once, and pass
// them down, so tests can assemble the same graph over an in-memory store.
package wire

import (
	"database/sql"

	"github.com/example/talentflow/internal/adapters/sqlite"
	"github.com/example/talentflow/internal/app"
	"github.com/example/talentflow/internal/ports/primary"
)

// Services bundles the primary ports.
type Services struct {
	Jobs        primary.JobService
	Candidates  primary.CandidateService
	Assessments primary.AssessmentService
}

// Build wires the sqlite adapters and application services over the given
// database connection.
func Build(database *sql.DB) *Services {
	jobRepo := sqlite.NewJobRepository(database)
	candidateRepo := sqlite.NewCandidateRepository(database)
	timelineRepo := sqlite.NewTimelineRepository(database)
	noteRepo := sqlite.NewNoteRepository(database)
	assessmentRepo := sqlite.NewAssessmentRepository(database)
	responseRepo := sqlite.NewResponseRepository(database)

	return &Services{
		Jobs:        app.NewJobService(jobRepo),
		Candidates:  app.NewCandidateService(candidateRepo, timelineRepo, noteRepo),
		Assessments: app.NewAssessmentService(assessmentRepo, responseRepo),
	}
}
