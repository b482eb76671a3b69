package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"time"
)

// ListingResult carries the marketplace identifiers of a listed item.
type ListingResult struct {
	ItemID     string `json:"item_id"`
	SKU        string `json:"ebay_sku"`
	OfferID    string `json:"ebay_offer_id"`
	ListingID  string `json:"ebay_listing_id,omitempty"`
	EbayStatus string `json:"ebay_status"`
}

// Outcome is the structured result of a list or unlist call. It is returned
// for failures too; Success tells them apart.
type Outcome struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Kind    string         `json:"kind,omitempty"`
	Details string         `json:"details,omitempty"`
	Result  *ListingResult `json:"result,omitempty"`
}

// ListOptions are per-call overrides for ListItem.
type ListOptions struct {
	Price      *float64 `json:"price,omitempty"`
	Quantity   int      `json:"quantity,omitempty"`
	CategoryID string   `json:"category_id,omitempty"`
}

// AuthStatus is the secret-free view of the stored token.
type AuthStatus struct {
	Configured bool       `json:"configured"`
	Authorized bool       `json:"authorized"`
	Expired    bool       `json:"expired"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// AuthURL is a consent URL and its state value.
type AuthURL struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// Quota is the Sell API call budget.
type Quota struct {
	DailyLimit int64      `json:"daily_limit"`
	DailyUsed  int64      `json:"daily_used"`
	Remaining  int64      `json:"remaining"`
	ResetAt    *time.Time `json:"reset_at,omitempty"`
}

// ListItem lists an item on eBay. opts may be nil.
func (c *Client) ListItem(ctx context.Context, id string, opts *ListOptions) (*Outcome, error) {
	var body any
	if opts != nil {
		body = opts
	}
	return c.outcome(ctx, "/api/v1/items/"+url.PathEscape(id)+"/ebay/list", body)
}

// UnlistItem withdraws an item's eBay offer.
func (c *Client) UnlistItem(ctx context.Context, id string) (*Outcome, error) {
	return c.outcome(ctx, "/api/v1/items/"+url.PathEscape(id)+"/ebay/unlist", nil)
}

// outcome decodes the structured body the listing endpoints send for both
// success and failure statuses.
func (c *Client) outcome(ctx context.Context, path string, body any) (*Outcome, error) {
	var out Outcome
	err := c.post(ctx, path, body, &out)

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		if jerr := json.Unmarshal(httpErr.Body, &out); jerr == nil && out.Message != "" {
			return &out, nil
		}
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// EbayAuthURL returns the consent URL that connects the seller account.
func (c *Client) EbayAuthURL(ctx context.Context, state string) (*AuthURL, error) {
	path := "/api/v1/ebay/auth/url"
	if state != "" {
		path += "?" + url.Values{"state": {state}}.Encode()
	}

	var resp AuthURL
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// EbayAuthStatus reports whether the seller account is connected.
func (c *Client) EbayAuthStatus(ctx context.Context) (*AuthStatus, error) {
	var resp AuthStatus
	if err := c.get(ctx, "/api/v1/ebay/auth/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Quota returns the Sell API call budget.
func (c *Client) Quota(ctx context.Context) (*Quota, error) {
	var resp Quota
	if err := c.get(ctx, "/api/v1/quota", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
