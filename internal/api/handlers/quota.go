package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bluberry/bluberry/internal/ebay"
)

// QuotaHandler reports the Sell API call budget.
type QuotaHandler struct {
	rl *ebay.RateLimiter
}

// NewQuotaHandler creates a new QuotaHandler. rl may be nil.
func NewQuotaHandler(rl *ebay.RateLimiter) *QuotaHandler {
	return &QuotaHandler{rl: rl}
}

// Quota is the rolling daily budget of marketplace calls.
type Quota struct {
	DailyLimit int64      `json:"daily_limit"        example:"2000000"              doc:"Configured daily Sell API call limit"`
	DailyUsed  int64      `json:"daily_used"         example:"142"                  doc:"Calls made in the current 24-hour window"`
	Remaining  int64      `json:"remaining"          example:"1999858"              doc:"Calls left in the current window"`
	ResetAt    *time.Time `json:"reset_at,omitempty" example:"2026-06-16T14:30:00Z" doc:"When the current window expires"`
}

// QuotaOutput is the response body for the quota endpoint.
type QuotaOutput struct {
	Body Quota
}

// GetQuota returns the current Sell API budget.
func (h *QuotaHandler) GetQuota(_ context.Context, _ *struct{}) (*QuotaOutput, error) {
	resp := &QuotaOutput{}
	if h.rl == nil {
		return resp, nil
	}

	reset := h.rl.ResetAt()
	resp.Body = Quota{
		DailyLimit: h.rl.MaxDaily(),
		DailyUsed:  h.rl.DailyCount(),
		Remaining:  h.rl.Remaining(),
		ResetAt:    &reset,
	}
	return resp, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/api/v1/quota",
		Summary:     "Get eBay API quota status",
		Description: "Returns the daily Sell API call usage, remaining budget, and window reset time.",
		Tags:        []string{"ebay"},
	}, h.GetQuota)
}
