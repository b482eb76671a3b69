// Package scheduler runs periodic background jobs. The only job today keeps
// the marketplace access token warm so list requests rarely pay for a
// refresh.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/bluberry/bluberry/internal/ebay"
)

const defaultJobTimeout = 30 * time.Second

// TokenWarmer refreshes the access token when it expires within a window.
type TokenWarmer interface {
	WarmToken(ctx context.Context, within time.Duration) (string, error)
}

// Scheduler manages the token keep-alive job.
type Scheduler struct {
	cron     *cron.Cron
	tokens   TokenWarmer
	interval time.Duration
	log      *slog.Logger

	keepAliveEntryID cron.EntryID
}

// New creates a Scheduler that runs every interval and refreshes the token
// whenever it would expire before the next run.
func New(tokens TokenWarmer, interval time.Duration, log *slog.Logger) (*Scheduler, error) {
	if interval <= 0 {
		return nil, errors.New("keep-alive interval must be positive")
	}

	s := &Scheduler{
		cron:     cron.New(),
		tokens:   tokens,
		interval: interval,
		log:      log,
	}

	id, err := s.cron.AddFunc("@every "+interval.String(), s.runKeepAlive)
	if err != nil {
		return nil, err
	}
	s.keepAliveEntryID = id

	return s, nil
}

// Start begins running scheduled jobs.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop stops the scheduler; the returned context is done once running jobs
// have finished.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runKeepAlive() {
	ctx, cancel := context.WithTimeout(context.Background(), defaultJobTimeout)
	defer cancel()

	if err := s.keepAlive(ctx); err != nil {
		s.log.Warn("token keep-alive failed", "error", err)
	}
}

// keepAlive is a no-op until the account has been authorized.
func (s *Scheduler) keepAlive(ctx context.Context) error {
	_, err := s.tokens.WarmToken(ctx, s.interval+defaultJobTimeout)
	if errors.Is(err, ebay.ErrNotAuthorized) || errors.Is(err, ebay.ErrNotConfigured) {
		s.log.Debug("token keep-alive skipped", "reason", err)
		return nil
	}
	return err
}
