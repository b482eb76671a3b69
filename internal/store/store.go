// Package store defines the datastore abstraction for BluBerry.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"

	domain "github.com/bluberry/bluberry/pkg/types"
)

// ErrNotFound is returned (wrapped) when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyListed is returned (wrapped) by MarkItemListed when the item
// already carries an active listing.
var ErrAlreadyListed = errors.New("item already listed")

// ItemQuery defines optional filters for item queries.
type ItemQuery struct {
	Status     *string
	EbayStatus *string
	Limit      int // default 50
	Offset     int
}

// Store defines all data access operations for BluBerry.
type Store interface {
	// Items
	CreateItem(ctx context.Context, it *domain.Item) error
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	ListItems(ctx context.Context, q *ItemQuery) ([]domain.Item, int, error)
	MarkItemListed(ctx context.Context, id string, rec domain.ListingRecord) error
	MarkItemUnlisted(ctx context.Context, id string) error

	// OAuth token singleton
	GetToken(ctx context.Context) (*domain.OAuthToken, error)
	UpsertToken(ctx context.Context, t *domain.OAuthToken) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
