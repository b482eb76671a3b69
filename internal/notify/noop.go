package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded events. It is used
// when no webhook is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards events with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// Notify logs and discards ev.
func (n *NoOpNotifier) Notify(_ context.Context, ev *ListingEvent) error {
	n.log.Debug("notification discarded (no backend configured)",
		"event", ev.Type,
		"operation", ev.Operation,
		"item_id", ev.ItemID,
	)
	return nil
}
