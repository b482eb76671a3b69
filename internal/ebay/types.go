package ebay

// InventoryItem is the body of PUT /inventory_item/{sku}.
type InventoryItem struct {
	Product      Product      `json:"product"`
	Condition    string       `json:"condition"`
	Availability Availability `json:"availability"`
}

// Product holds the catalog-facing fields of an inventory item.
type Product struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	ImageURLs   []string `json:"imageUrls,omitempty"`
}

// Availability holds inventory quantity.
type Availability struct {
	ShipToLocationAvailability ShipToLocationAvailability `json:"shipToLocationAvailability"`
}

// ShipToLocationAvailability is the quantity available for shipping.
type ShipToLocationAvailability struct {
	Quantity int `json:"quantity"`
}

// Offer is the body of POST /offer.
type Offer struct {
	SKU                 string          `json:"sku"`
	MarketplaceID       string          `json:"marketplaceId"`
	Format              string          `json:"format"`
	AvailableQuantity   int             `json:"availableQuantity"`
	CategoryID          string          `json:"categoryId,omitempty"`
	ListingDescription  string          `json:"listingDescription,omitempty"`
	MerchantLocationKey string          `json:"merchantLocationKey,omitempty"`
	ListingPolicies     ListingPolicies `json:"listingPolicies"`
	PricingSummary      PricingSummary  `json:"pricingSummary"`
}

// ListingPolicies references the seller's business policies.
type ListingPolicies struct {
	FulfillmentPolicyID string `json:"fulfillmentPolicyId,omitempty"`
	PaymentPolicyID     string `json:"paymentPolicyId,omitempty"`
	ReturnPolicyID      string `json:"returnPolicyId,omitempty"`
}

// PricingSummary holds the offer price.
type PricingSummary struct {
	Price Amount `json:"price"`
}

// Amount is a monetary value as eBay encodes it.
type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type createOfferResponse struct {
	OfferID string `json:"offerId"`
}

type publishOfferResponse struct {
	ListingID string `json:"listingId"`
}
