package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/talentflow/internal/config"
	"github.com/example/talentflow/internal/db"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the TalentFlow environment",
		Long: `Environment health check for TalentFlow.

Validates:
- Config file (readable, sane latency range and rates)
- Database file and schema (all collections present)
- Seed state

Examples:
  talentflow doctor          # Run full health check
  talentflow doctor --quiet  # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkConfig(),
				checkDatabase(),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				printResults(results)
			}
			if hasErrors {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&quiet, "quiet", false, "exit code only, no output")
	return cmd
}

func checkConfig() CheckResult {
	path, err := config.DefaultPath()
	if err != nil {
		return CheckResult{Name: "Config", Status: "✗", Details: err.Error()}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return CheckResult{Name: "Config", Status: "✗", Details: err.Error()}
	}
	if cfg.MaxLatencyMS < cfg.MinLatencyMS {
		return CheckResult{Name: "Config", Status: "⚠", Details: "max latency below min latency"}
	}
	if cfg.FailRate < 0 || cfg.FailRate > 1 || cfg.ReorderRate < 0 || cfg.ReorderRate > 1 {
		return CheckResult{Name: "Config", Status: "⚠", Details: "failure rates outside [0,1]"}
	}
	return CheckResult{Name: "Config", Status: "✓"}
}

func checkDatabase() CheckResult {
	path, err := db.DefaultPath()
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: err.Error()}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return CheckResult{Name: "Database", Status: "⚠", Details: "not initialized, run: talentflow init"}
	}

	database, err := db.Open(path)
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: err.Error()}
	}
	defer database.Close()

	tables := []string{"jobs", "candidates", "candidate_timeline", "candidate_notes", "assessments", "assessment_responses"}
	for _, table := range tables {
		var count int
		if err := database.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			return CheckResult{Name: "Database", Status: "✗", Details: fmt.Sprintf("table %s: %v", table, err)}
		}
	}

	var jobs int
	if err := database.QueryRow("SELECT COUNT(*) FROM jobs").Scan(&jobs); err == nil && jobs == 0 {
		return CheckResult{Name: "Database", Status: "⚠", Details: "empty, run: talentflow seed"}
	}
	return CheckResult{Name: "Database", Status: "✓"}
}

func printResults(results []CheckResult) {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	for _, r := range results {
		switch r.Status {
		case "✓":
			green.Printf("✓ %s\n", r.Name)
		case "⚠":
			yellow.Printf("⚠ %s: %s\n", r.Name, r.Details)
		default:
			red.Printf("✗ %s: %s\n", r.Name, r.Details)
		}
	}
}
