// Package notify delivers listing lifecycle events to operators.
package notify

import "context"

// EventType classifies a listing event.
type EventType string

// Event types.
const (
	EventListed   EventType = "listed"
	EventUnlisted EventType = "unlisted"
	EventFailed   EventType = "failed"
)

// ListingEvent describes the outcome of one list or unlist operation.
type ListingEvent struct {
	Type      EventType
	Operation string // list or unlist
	ItemID    string
	Title     string
	SKU       string
	OfferID   string
	ListingID string
	Price     string
	ImageURL  string

	// Kind and Error are set on failures only.
	Kind  string
	Error string
}

// Notifier sends listing events to an operator channel.
type Notifier interface {
	Notify(ctx context.Context, ev *ListingEvent) error
}
