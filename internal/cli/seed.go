package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/talentflow/internal/config"
	"github.com/example/talentflow/internal/db"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with synthetic data",
		Long: `Populate the database with synthetic jobs, candidates, and assessments.

Idempotent: a database that already has jobs is left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			cfg.DBPath = dbPath

			path, database, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer database.Close()

			seeded, err := db.SeedFixtures(database)
			if err != nil {
				return fmt.Errorf("failed to seed database: %w", err)
			}

			if !seeded {
				color.Yellow("Database already seeded, nothing to do")
				return nil
			}

			green := color.New(color.FgGreen)
			green.Println("✓ Seeded 25 jobs")
			green.Println("✓ Seeded 1000 candidates")
			green.Println("✓ Seeded assessments for active jobs")
			fmt.Printf("\nDatabase: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "database path (default ~/.talentflow/talentflow.db)")
	return cmd
}
