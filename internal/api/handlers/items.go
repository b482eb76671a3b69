package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bluberry/bluberry/internal/metrics"
	"github.com/bluberry/bluberry/internal/store"
	domain "github.com/bluberry/bluberry/pkg/types"
)

// ItemsHandler handles item intake and lookup.
type ItemsHandler struct {
	store store.Store
}

// NewItemsHandler creates a new ItemsHandler.
func NewItemsHandler(s store.Store) *ItemsHandler {
	return &ItemsHandler{store: s}
}

// SubmitItemInput is the request body for submitting an item.
type SubmitItemInput struct {
	Body struct {
		Name        string   `json:"item_name"                  doc:"What is being sold"                      minLength:"1" maxLength:"200"`
		Description string   `json:"item_description,omitempty" doc:"Free-form description"                   maxLength:"4000"`
		Condition   string   `json:"item_condition,omitempty"   doc:"Free-text condition, e.g. 'Like New'"    maxLength:"64"`
		ImageRef    string   `json:"image_url,omitempty"        doc:"Image URL, storage path, or JSON array of either"`
		Email       string   `json:"contact_email"              doc:"Seller contact email"                    format:"email"`
		Phone       string   `json:"contact_phone,omitempty"    doc:"Seller contact phone"`
		Price       *float64 `json:"price,omitempty"            doc:"Asking price"                            minimum:"0"`
	}
}

// ItemOutput wraps a single item.
type ItemOutput struct {
	Body domain.Item
}

// ListItemsInput holds item list filters.
type ListItemsInput struct {
	Status     string `query:"status"      doc:"Filter by intake status" enum:"pending,listed,unlisted,"`
	EbayStatus string `query:"ebay_status" doc:"Filter by eBay status"   enum:"listed,unlisted,"`
	Limit      int    `query:"limit"       doc:"Number of results"       default:"50" minimum:"1" maximum:"500"`
	Offset     int    `query:"offset"      doc:"Pagination offset"       minimum:"0"`
}

// ListItemsOutput is a page of items.
type ListItemsOutput struct {
	Body struct {
		Items  []domain.Item `json:"items"`
		Total  int           `json:"total"`
		Limit  int           `json:"limit"`
		Offset int           `json:"offset"`
	}
}

// ItemIDInput addresses one item.
type ItemIDInput struct {
	ID string `path:"id" doc:"Item UUID"`
}

// SubmitItem stores a new pending item.
func (h *ItemsHandler) SubmitItem(ctx context.Context, input *SubmitItemInput) (*ItemOutput, error) {
	it := &domain.Item{
		Name:        strings.TrimSpace(input.Body.Name),
		Description: input.Body.Description,
		Condition:   strings.TrimSpace(input.Body.Condition),
		ImageRef:    input.Body.ImageRef,
		Email:       input.Body.Email,
		Phone:       input.Body.Phone,
		Price:       input.Body.Price,
		Status:      domain.ItemPending,
		EbayStatus:  domain.EbayUnlisted,
	}
	if it.Name == "" {
		return nil, huma.Error422UnprocessableEntity("item_name must not be blank")
	}

	if err := h.store.CreateItem(ctx, it); err != nil {
		return nil, huma.Error500InternalServerError("saving item failed")
	}
	metrics.ItemsSubmittedTotal.Inc()

	return &ItemOutput{Body: *it}, nil
}

// ListItems returns a page of items.
func (h *ItemsHandler) ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error) {
	q := &store.ItemQuery{
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if input.Status != "" {
		q.Status = &input.Status
	}
	if input.EbayStatus != "" {
		q.EbayStatus = &input.EbayStatus
	}

	items, total, err := h.store.ListItems(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("item query failed")
	}
	if items == nil {
		items = []domain.Item{}
	}

	resp := &ListItemsOutput{}
	resp.Body.Items = items
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

// GetItem returns one item.
func (h *ItemsHandler) GetItem(ctx context.Context, input *ItemIDInput) (*ItemOutput, error) {
	it, err := h.store.GetItem(ctx, input.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("item not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("item lookup failed")
	}
	return &ItemOutput{Body: *it}, nil
}

// RegisterItemRoutes registers item endpoints with the Huma API.
func RegisterItemRoutes(api huma.API, h *ItemsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "submit-item",
		Method:        http.MethodPost,
		Path:          "/api/v1/items",
		Summary:       "Submit an item",
		Description:   "Stores a new item in pending status.",
		Tags:          []string{"items"},
		DefaultStatus: http.StatusCreated,
	}, h.SubmitItem)

	huma.Register(api, huma.Operation{
		OperationID: "list-items",
		Method:      http.MethodGet,
		Path:        "/api/v1/items",
		Summary:     "List items",
		Tags:        []string{"items"},
	}, h.ListItems)

	huma.Register(api, huma.Operation{
		OperationID: "get-item",
		Method:      http.MethodGet,
		Path:        "/api/v1/items/{id}",
		Summary:     "Get an item",
		Tags:        []string{"items"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetItem)
}
