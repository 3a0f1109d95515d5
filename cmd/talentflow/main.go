package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/talentflow/internal/cli"
	"github.com/example/talentflow/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "talentflow",
		Short:   "TalentFlow - hiring pipeline API with simulated network faults",
		Version: version.String(),
		Long: `TalentFlow serves a hiring pipeline API: job postings, candidate
tracking with stage timelines, and per-job assessments.

Every endpoint passes through a network simulation layer that injects
randomized latency and failures, so clients can be exercised against
realistic unreliable-network conditions.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
