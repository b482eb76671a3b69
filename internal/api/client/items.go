package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/bluberry/bluberry/pkg/types"
)

// SubmitItemRequest is the body of an item submission.
type SubmitItemRequest struct {
	Name        string   `json:"item_name"`
	Description string   `json:"item_description,omitempty"`
	Condition   string   `json:"item_condition,omitempty"`
	ImageRef    string   `json:"image_url,omitempty"`
	Email       string   `json:"contact_email"`
	Phone       string   `json:"contact_phone,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// ItemsResponse is a page of items.
type ItemsResponse struct {
	Items  []domain.Item `json:"items"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// ListItemsParams filters ListItems.
type ListItemsParams struct {
	Status     string
	EbayStatus string
	Limit      int
	Offset     int
}

// SubmitItem creates a pending item.
func (c *Client) SubmitItem(ctx context.Context, req *SubmitItemRequest) (*domain.Item, error) {
	var it domain.Item
	if err := c.post(ctx, "/api/v1/items", req, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// ListItems returns items matching params.
func (c *Client) ListItems(ctx context.Context, params *ListItemsParams) (*ItemsResponse, error) {
	q := url.Values{}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.EbayStatus != "" {
		q.Set("ebay_status", params.EbayStatus)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}

	path := "/api/v1/items"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ItemsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetItem returns one item.
func (c *Client) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	var it domain.Item
	if err := c.get(ctx, "/api/v1/items/"+url.PathEscape(id), &it); err != nil {
		return nil, err
	}
	return &it, nil
}
