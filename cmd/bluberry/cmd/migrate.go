package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bluberry/bluberry/internal/config"
	"github.com/bluberry/bluberry/internal/store"
	"github.com/bluberry/bluberry/pkg/logger"
)

const migrateTimeout = 60 * time.Second

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE:  runMigrate,
	}
}

func runMigrate(c *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(c.Context(), migrateTimeout)
	defer cancel()

	s, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), 1)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer s.Close()

	log.Info("running migrations", "host", cfg.Database.Host, "database", cfg.Database.Name)
	if err := s.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	log.Info("migrations complete")
	return nil
}
