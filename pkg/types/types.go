// Package domain defines the core business types for BluBerry.
package domain

import (
	"time"
)

// ItemStatus is the intake lifecycle status of a submitted item.
type ItemStatus string

// Item status constants.
const (
	ItemPending  ItemStatus = "pending"
	ItemListed   ItemStatus = "listed"
	ItemUnlisted ItemStatus = "unlisted"
)

// EbayStatus mirrors the marketplace state of an item's offer.
type EbayStatus string

// eBay status constants. An item starts unlisted and alternates
// unlisted -> listed -> unlisted; listed -> listed is not allowed.
const (
	EbayUnlisted EbayStatus = "unlisted"
	EbayListed   EbayStatus = "listed"
)

// TokenSingletonID is the fixed primary key of the one OAuth token row.
const TokenSingletonID = "singleton"

// Item is a user-submitted listing candidate.
type Item struct {
	ID          string     `json:"id"                      db:"id"`
	Name        string     `json:"item_name"               db:"item_name"`
	Description string     `json:"item_description"        db:"item_description"`
	Condition   string     `json:"item_condition"          db:"item_condition"`
	ImageRef    string     `json:"image_url,omitempty"     db:"image_url"`
	Email       string     `json:"contact_email"           db:"contact_email"`
	Phone       string     `json:"contact_phone,omitempty" db:"contact_phone"`
	Price       *float64   `json:"price,omitempty"         db:"price"`
	Status      ItemStatus `json:"status"                  db:"status"`

	// Marketplace linkage
	EbaySKU      string     `json:"ebay_sku,omitempty"      db:"ebay_sku"`
	EbayOfferID  string     `json:"ebay_offer_id,omitempty" db:"ebay_offer_id"`
	EbayStatus   EbayStatus `json:"ebay_status"             db:"ebay_status"`
	ListedOnEbay bool       `json:"listed_on_ebay"          db:"listed_on_ebay"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsListed reports whether the item currently has a live marketplace offer.
func (i *Item) IsListed() bool {
	return i.ListedOnEbay || i.EbayStatus == EbayListed
}

// ListingRecord holds the marketplace identifiers persisted after a
// successful publish.
type ListingRecord struct {
	SKU       string `json:"ebay_sku"`
	OfferID   string `json:"ebay_offer_id"`
	ListingID string `json:"ebay_listing_id,omitempty"`
}

// OAuthToken is the singleton credential record for the marketplace
// integration.
type OAuthToken struct {
	ID           string    `json:"id"         db:"id"`
	AccessToken  string    `json:"-"          db:"access_token"`
	RefreshToken string    `json:"-"          db:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at" db:"expires_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Valid reports whether the access token is still usable at now, keeping
// skew in reserve for the outbound call.
func (t *OAuthToken) Valid(now time.Time, skew time.Duration) bool {
	return t.AccessToken != "" && now.Add(skew).Before(t.ExpiresAt)
}
