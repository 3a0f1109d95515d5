package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/talentflow/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the TalentFlow database",
		Long:  `Initialize the TalentFlow database at ~/.talentflow/talentflow.db with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := db.DefaultPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing TalentFlow database at %s\n", dbPath)

			database, err := db.Open(dbPath)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer database.Close()

			fmt.Println("✓ Database initialized successfully")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  talentflow seed")
			fmt.Println("  talentflow serve")

			return nil
		},
	}
}
