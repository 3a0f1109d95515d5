package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/talentflow/internal/adapters/httpapi"
	"github.com/example/talentflow/internal/config"
	"github.com/example/talentflow/internal/db"
	"github.com/example/talentflow/internal/netsim"
	"github.com/example/talentflow/internal/wire"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	var (
		addr       string
		dbPath     string
		configPath string
		noFaults   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the TalentFlow API server",
		Long: `Run the TalentFlow API server.

By default every endpoint behaves like an unreliable remote API: randomized
latency (200-1200ms) and a 5% chance of failing before touching the store,
plus an extra 10% failure rate on reorders. Pass --no-faults to run it as
an ordinary API.

The database is seeded with synthetic jobs, candidates, and assessments on
first run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; variables already in the environment win.
			_ = godotenv.Load()

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if dbPath != "" {
				cfg.DBPath = dbPath
			}
			if noFaults {
				cfg.DisableFaults = true
			}

			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			defer logger.Sync()

			return runServer(cfg, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&dbPath, "db", "", "database path (default ~/.talentflow/talentflow.db)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path (default ~/.talentflow/config.json)")
	cmd.Flags().BoolVar(&noFaults, "no-faults", false, "disable simulated latency and failures")
	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return config.Load(path)
}

func openDatabase(cfg *config.Config) (string, *sql.DB, error) {
	path := cfg.DBPath
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return "", nil, err
		}
	}
	database, err := db.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to open database: %w", err)
	}
	return path, database, nil
}

func runServer(cfg *config.Config, logger *zap.Logger) error {
	path, database, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	seeded, err := db.SeedFixtures(database)
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	if seeded {
		logger.Info("seeded database", zap.String("path", path))
	}

	var policy netsim.Policy = netsim.NoFaults{}
	if !cfg.DisableFaults {
		policy = &netsim.RandomPolicy{
			MinLatency:  cfg.MinLatency(),
			MaxLatency:  cfg.MaxLatency(),
			FailRate:    cfg.FailRate,
			ReorderRate: cfg.ReorderRate,
		}
	}

	services := wire.Build(database)
	api := httpapi.New(services.Jobs, services.Candidates, services.Assessments, policy, logger)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", cfg.Addr),
			zap.String("db", path),
			zap.Bool("faults", !cfg.DisableFaults),
		)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
