// Package ebay provides the eBay OAuth token lifecycle and a thin Sell
// Inventory API client, abstracted behind interfaces for testability.
package ebay

import (
	"context"

	domain "github.com/bluberry/bluberry/pkg/types"
)

// TokenProvider returns a bearer token valid for at least one outbound call.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// TokenStore persists the singleton OAuth token record. GetToken returns an
// error wrapping store.ErrNotFound when no authorization has happened yet.
type TokenStore interface {
	GetToken(ctx context.Context) (*domain.OAuthToken, error)
	UpsertToken(ctx context.Context, t *domain.OAuthToken) error
}

// Marketplace wraps the Sell Inventory API calls used to list and unlist
// items. Each method is a single request against the marketplace.
type Marketplace interface {
	CreateInventoryItem(ctx context.Context, token, sku string, item *InventoryItem) error
	CreateOffer(ctx context.Context, token string, offer *Offer) (string, error)
	PublishOffer(ctx context.Context, token, offerID string) (string, error)
	WithdrawOffer(ctx context.Context, token, offerID string) error
}
