// Package job contains the pure validation logic for job postings.
// Guards are pure functions that evaluate preconditions without side effects.
package job

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxDescriptionLength caps the free-text description.
const MaxDescriptionLength = 1000

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// ValidateJobContext provides context for job validation guards.
type ValidateJobContext struct {
	Title       string
	Slug        string
	Description string
	Status      string
	SlugTaken   bool // whether another job already uses the slug
}

// CanSaveJob evaluates whether a job can be created or updated.
// Rules:
// - Title must not be blank
// - Slug must be lowercase letters, digits, and hyphens
// - Slug must be unique across jobs
// - Description must not exceed MaxDescriptionLength characters
// - Status must be active or archived
func CanSaveJob(ctx ValidateJobContext) GuardResult {
	if strings.TrimSpace(ctx.Title) == "" {
		return GuardResult{Allowed: false, Reason: "title is required"}
	}

	if !slugPattern.MatchString(ctx.Slug) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("slug %q must contain only lowercase letters, digits, and hyphens", ctx.Slug),
		}
	}

	if ctx.SlugTaken {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("slug %q is already in use", ctx.Slug),
		}
	}

	if len([]rune(ctx.Description)) > MaxDescriptionLength {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("description exceeds %d characters", MaxDescriptionLength),
		}
	}

	if ctx.Status != "active" && ctx.Status != "archived" {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("invalid status %q: must be active or archived", ctx.Status),
		}
	}

	return GuardResult{Allowed: true}
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a title: lowercase, runs of other
// characters collapsed to single hyphens, no leading or trailing hyphen.
func Slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
