package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bluberry/bluberry/internal/config"
	"github.com/bluberry/bluberry/internal/store"
	"github.com/bluberry/bluberry/internal/tracing"
	"github.com/bluberry/bluberry/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cobra.Command {
	var migrate bool

	c := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and token keep-alive",
		RunE: func(c *cobra.Command, _ []string) error {
			return runServe(c.Context(), migrate)
		},
	}
	c.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	return c
}

func runServe(parent context.Context, migrate bool) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		CAFile:      cfg.Tracing.CAFile,
		SampleRatio: cfg.Tracing.SampleRatio,
	}, Version)
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn("flushing traces", "error", err)
		}
	}()

	s, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), cfg.Database.PoolSize)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer s.Close()

	if migrate {
		if err := s.Migrate(ctx); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		log.Info("migrations complete")
	}

	a, err := newApp(cfg, s, log)
	if err != nil {
		return err
	}

	if a.scheduler != nil {
		a.scheduler.Start()
		defer func() { <-a.scheduler.Stop().Done() }()
	}

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      a.echo,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", srv.Addr)
		errCh <- a.echo.StartServer(srv)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := a.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	log.Info("server stopped")
	return nil
}
