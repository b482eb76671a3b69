package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bluberry/bluberry/internal/api/handlers"
	"github.com/bluberry/bluberry/internal/metrics"
	"github.com/bluberry/bluberry/internal/store"
	storeMocks "github.com/bluberry/bluberry/internal/store/mocks"
	domain "github.com/bluberry/bluberry/pkg/types"
)

func newItemsAPI(t *testing.T, ms *storeMocks.MockStore) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterItemRoutes(api, handlers.NewItemsHandler(ms))
	return api
}

func TestItemsHandler_Submit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "stores a pending item",
			body: map[string]any{
				"item_name":      "  Mid-century lamp ",
				"item_condition": "Like New",
				"image_url":      `["items/lamp-1.jpg"]`,
				"contact_email":  "seller@example.com",
				"price":          45.5,
			},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					CreateItem(mock.Anything, mock.MatchedBy(func(it *domain.Item) bool {
						return it.Name == "Mid-century lamp" &&
							it.Condition == "Like New" &&
							it.Status == domain.ItemPending &&
							it.EbayStatus == domain.EbayUnlisted &&
							it.Price != nil && *it.Price == 45.5
					})).
					Run(func(_ context.Context, it *domain.Item) { it.ID = "item-1" }).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":"item-1"`,
		},
		{
			name: "missing email is rejected before the store",
			body: map[string]any{
				"item_name": "Lamp",
			},
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "blank name is rejected",
			body: map[string]any{
				"item_name":     "   ",
				"contact_email": "seller@example.com",
			},
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "item_name must not be blank",
		},
		{
			name: "negative price is rejected",
			body: map[string]any{
				"item_name":     "Lamp",
				"contact_email": "seller@example.com",
				"price":         -1,
			},
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "store failure",
			body: map[string]any{
				"item_name":     "Lamp",
				"contact_email": "seller@example.com",
			},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().CreateItem(mock.Anything, mock.Anything).
					Return(errors.New("connection reset")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			resp := newItemsAPI(t, ms).Post("/api/v1/items", tt.body)
			assert.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestItemsHandler_SubmitCountsItems(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().CreateItem(mock.Anything, mock.Anything).Return(nil).Once()

	before := testutil.ToFloat64(metrics.ItemsSubmittedTotal)
	resp := newItemsAPI(t, ms).Post("/api/v1/items", map[string]any{
		"item_name":     "Lamp",
		"contact_email": "seller@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.GreaterOrEqual(t, testutil.ToFloat64(metrics.ItemsSubmittedTotal), before+1)
}

func TestItemsHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "default page",
			query: "",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListItems(mock.Anything, mock.MatchedBy(func(q *store.ItemQuery) bool {
						return q.Limit == 50 && q.Offset == 0 && q.Status == nil && q.EbayStatus == nil
					})).
					Return([]domain.Item{{ID: "item-1", Name: "Lamp"}}, 1, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":1`,
		},
		{
			name:  "status filters",
			query: "?status=listed&ebay_status=listed",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListItems(mock.Anything, mock.MatchedBy(func(q *store.ItemQuery) bool {
						return q.Status != nil && *q.Status == "listed" &&
							q.EbayStatus != nil && *q.EbayStatus == "listed"
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"items":[]`,
		},
		{
			name:  "pagination",
			query: "?limit=10&offset=20",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListItems(mock.Anything, mock.MatchedBy(func(q *store.ItemQuery) bool {
						return q.Limit == 10 && q.Offset == 20
					})).
					Return(nil, 35, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"offset":20`,
		},
		{
			name:       "unknown status",
			query:      "?status=sold",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:  "store failure",
			query: "",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListItems(mock.Anything, mock.Anything).
					Return(nil, 0, errors.New("timeout")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			resp := newItemsAPI(t, ms).Get("/api/v1/items" + tt.query)
			assert.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestItemsHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		item       *domain.Item
		err        error
		wantStatus int
	}{
		{
			name:       "found",
			item:       &domain.Item{ID: "item-1", Name: "Lamp", EbayStatus: domain.EbayUnlisted},
			wantStatus: http.StatusOK,
		},
		{
			name:       "not found",
			err:        fmt.Errorf("item item-1: %w", store.ErrNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "store failure",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			ms.EXPECT().GetItem(mock.Anything, "item-1").Return(tt.item, tt.err).Once()

			resp := newItemsAPI(t, ms).Get("/api/v1/items/item-1")
			assert.Equal(t, tt.wantStatus, resp.Code)
			if tt.item != nil {
				assert.Contains(t, resp.Body.String(), `"item_name":"Lamp"`)
			}
		})
	}
}
