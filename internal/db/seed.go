package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/example/talentflow/internal/core/job"
)

var seedJobTitles = []string{
	"Senior Frontend Developer",
	"Backend Engineer",
	"Full Stack Developer",
	"DevOps Engineer",
	"Product Manager",
	"UI/UX Designer",
	"Data Scientist",
	"Mobile Developer",
	"QA Engineer",
	"Technical Lead",
	"Software Architect",
	"Security Engineer",
	"Machine Learning Engineer",
	"Cloud Solutions Architect",
	"Site Reliability Engineer",
}

var seedTechTags = []string{
	"React", "TypeScript", "Node.js", "Python", "AWS", "Docker", "Kubernetes",
	"GraphQL", "PostgreSQL", "MongoDB", "Go", "Rust", "Java", "C++",
}

var seedFirstNames = []string{
	"Emma", "Liam", "Olivia", "Noah", "Ava", "Ethan", "Sophia", "Mason",
	"Isabella", "William", "Mia", "James", "Charlotte", "Benjamin", "Amelia",
	"Lucas", "Harper", "Henry", "Evelyn", "Alexander",
}

var seedLastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
}

var seedStages = []string{"applied", "screen", "tech", "offer", "hired", "rejected"}

const (
	seedJobCount       = 25
	seedCandidateCount = 1000
)

type seededJob struct {
	id     string
	title  string
	status string
	tags   []string
}

// SeedFixtures populates an empty database with synthetic jobs, candidates,
// and assessments. Idempotent: a database that already has jobs is left
// untouched. Returns whether anything was written.
func SeedFixtures(database *sql.DB) (bool, error) {
	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM jobs").Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check existing jobs: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	jobs, err := seedJobs(database)
	if err != nil {
		return false, err
	}
	if err := seedCandidates(database, jobs); err != nil {
		return false, err
	}
	if err := seedAssessments(database, jobs); err != nil {
		return false, err
	}
	return true, nil
}

func seedJobs(database *sql.DB) ([]seededJob, error) {
	jobs := make([]seededJob, 0, seedJobCount)
	for i := 0; i < seedJobCount; i++ {
		title := seedJobTitles[i%len(seedJobTitles)]
		if i >= len(seedJobTitles) {
			title = fmt.Sprintf("%s %d", randomItem(seedJobTitles), i)
		}
		status := "active"
		if rand.Float64() <= 0.3 {
			status = "archived"
		}
		tags := randomItems(seedTechTags, rand.IntN(4)+1)
		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			return nil, fmt.Errorf("failed to encode tags: %w", err)
		}

		j := seededJob{
			id:     fmt.Sprintf("job-%d", i+1),
			title:  title,
			status: status,
			tags:   tags,
		}
		createdAt := time.Now().Add(-randomDuration(90 * 24 * time.Hour)).UTC().Format(time.RFC3339)
		description := fmt.Sprintf("We're looking for an experienced %s to join our team.", strings.ToLower(title))

		_, err = database.Exec(
			"INSERT INTO jobs (id, title, slug, description, status, tags, sort_order, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			j.id, j.title, job.Slugify(title), description, j.status, string(tagsJSON), i, createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to seed job %s: %w", j.id, err)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

func seedCandidates(database *sql.DB, jobs []seededJob) error {
	for i := 0; i < seedCandidateCount; i++ {
		id := fmt.Sprintf("candidate-%d", i+1)
		name := randomItem(seedFirstNames) + " " + randomItem(seedLastNames)
		email := fmt.Sprintf("candidate%d@example.com", i+1)
		phone := fmt.Sprintf("+1 %d-%d-%d", rand.IntN(900)+100, rand.IntN(900)+100, rand.IntN(9000)+1000)
		appliedAt := time.Now().Add(-randomDuration(60 * 24 * time.Hour)).UTC().Format(time.RFC3339)

		_, err := database.Exec(
			"INSERT INTO candidates (id, name, email, phone, stage, job_id, applied_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			id, name, email, phone, randomItem(seedStages), randomItem(jobs).id, appliedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to seed candidate %s: %w", id, err)
		}
	}
	return nil
}

func seedAssessments(database *sql.DB, jobs []seededJob) error {
	n := 0
	for _, j := range jobs {
		if j.status != "active" {
			continue
		}

		questions := []map[string]any{}
		if len(j.tags) > 0 {
			options := j.tags
			if len(options) > 6 {
				options = options[:6]
			}
			questions = append(questions, map[string]any{
				"id":       fmt.Sprintf("q-%d-1", n),
				"type":     "multi-choice",
				"text":     fmt.Sprintf("Which of these technologies are you proficient in for the %s role?", j.title),
				"required": true,
				"options":  options,
			})
		}
		questions = append(questions, map[string]any{
			"id":       fmt.Sprintf("q-%d-2", n),
			"type":     "single-choice",
			"text":     fmt.Sprintf("How many years of experience do you have in %s?", strings.ToLower(j.title)),
			"required": true,
			"options":  []string{"0-1 years", "2-3 years", "4-5 years", "6-10 years", "10+ years"},
		})
		if n%2 == 0 {
			questions = append(questions, map[string]any{
				"id":        fmt.Sprintf("q-%d-3", n),
				"type":      "long-text",
				"text":      fmt.Sprintf("Describe a challenging project you worked on related to %s. What was your role and the outcome?", strings.ToLower(j.title)),
				"required":  true,
				"maxLength": 500,
			})
		} else {
			questions = append(questions, map[string]any{
				"id":        fmt.Sprintf("q-%d-3", n),
				"type":      "long-text",
				"text":      fmt.Sprintf("Why are you interested in this %s position? What motivates you about this role?", j.title),
				"required":  true,
				"maxLength": 400,
			})
		}

		sections := []map[string]any{{
			"id":        fmt.Sprintf("section-%d-1", n),
			"title":     j.title + " Assessment",
			"questions": questions,
		}}
		sectionsJSON, err := json.Marshal(sections)
		if err != nil {
			return fmt.Errorf("failed to encode sections: %w", err)
		}

		_, err = database.Exec(
			"INSERT INTO assessments (id, job_id, sections, created_at) VALUES (?, ?, ?, ?)",
			fmt.Sprintf("assessment-%d", n+1), j.id, string(sectionsJSON), time.Now().UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("failed to seed assessment for %s: %w", j.id, err)
		}
		n++
	}
	return nil
}

func randomItem[T any](items []T) T {
	return items[rand.IntN(len(items))]
}

func randomItems(items []string, count int) []string {
	shuffled := make([]string, len(items))
	copy(shuffled, items)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

func randomDuration(max time.Duration) time.Duration {
	return rand.N(max)
}
