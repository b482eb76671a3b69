package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bluberry/bluberry/internal/lister"
)

// ItemLister lists and unlists items on the marketplace.
type ItemLister interface {
	List(ctx context.Context, itemID string, opts lister.ListOptions) (*lister.Result, error)
	Unlist(ctx context.Context, itemID string) (*lister.Result, error)
}

// ListingHandler exposes the list and unlist operations.
type ListingHandler struct {
	lister ItemLister
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(l ItemLister) *ListingHandler {
	return &ListingHandler{lister: l}
}

// ListItemInput addresses an item and carries optional overrides.
type ListItemInput struct {
	ID   string `path:"id" doc:"Item UUID"`
	Body *struct {
		Price      *float64 `json:"price,omitempty"       doc:"Override the item's asking price" exclusiveMinimum:"0"`
		Quantity   int      `json:"quantity,omitempty"    doc:"Available quantity (default 1)"   minimum:"0"`
		CategoryID string   `json:"category_id,omitempty" doc:"Override the default category"`
	} `required:"false"`
}

// OutcomeOutput carries the structured result of a list or unlist call.
type OutcomeOutput struct {
	Status int
	Body   lister.Outcome
}

// List publishes an item on the marketplace.
func (h *ListingHandler) List(ctx context.Context, input *ListItemInput) (*OutcomeOutput, error) {
	var opts lister.ListOptions
	if input.Body != nil {
		opts.Price = input.Body.Price
		opts.Quantity = input.Body.Quantity
		opts.CategoryID = input.Body.CategoryID
	}

	res, err := h.lister.List(ctx, input.ID, opts)
	return outcome(res, err, "item listed"), nil
}

// Unlist withdraws an item's offer.
func (h *ListingHandler) Unlist(ctx context.Context, input *ItemIDInput) (*OutcomeOutput, error) {
	res, err := h.lister.Unlist(ctx, input.ID)
	return outcome(res, err, "item unlisted"), nil
}

func outcome(res *lister.Result, err error, msg string) *OutcomeOutput {
	out := lister.NewOutcome(res, err, msg)
	return &OutcomeOutput{Status: outcomeStatus(out.Kind), Body: out}
}

// outcomeStatus maps a failure kind onto an HTTP status. The body always
// carries the full outcome.
func outcomeStatus(k lister.Kind) int {
	switch k {
	case "":
		return http.StatusOK
	case lister.KindConfig:
		return http.StatusServiceUnavailable
	case lister.KindAuthorization:
		return http.StatusUnauthorized
	case lister.KindProvider:
		return http.StatusBadGateway
	case lister.KindData:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// RegisterListingRoutes registers the list and unlist endpoints.
func RegisterListingRoutes(api huma.API, h *ListingHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-item-on-ebay",
		Method:      http.MethodPost,
		Path:        "/api/v1/items/{id}/ebay/list",
		Summary:     "List an item on eBay",
		Description: "Creates the inventory item and offer, publishes it, and marks the item listed. " +
			"The response body is a structured outcome on success and failure.",
		Tags: []string{"ebay"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "unlist-item-on-ebay",
		Method:      http.MethodPost,
		Path:        "/api/v1/items/{id}/ebay/unlist",
		Summary:     "Unlist an item from eBay",
		Description: "Withdraws the item's offer and marks it unlisted. The sku and offer id are kept.",
		Tags:        []string{"ebay"},
	}, h.Unlist)
}
