// Package handlers implements HTTP handlers for the BluBerry API.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bluberry/bluberry/internal/metrics"
	"github.com/bluberry/bluberry/internal/store"
)

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	store store.Store
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(s store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

// Healthz returns 200 if the process is running.
//
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /healthz [get]
func (*HealthHandler) Healthz(c echo.Context) error {
	metrics.HealthzUp.Set(1)
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 if the database is reachable, 503 otherwise. eBay
// credentials are not part of readiness; the server runs without them.
//
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 503 {object} StatusResponse
// @Router /readyz [get]
func (h *HealthHandler) Readyz(c echo.Context) error {
	if err := h.store.Ping(c.Request().Context()); err != nil {
		metrics.ReadyzUp.Set(0)
		return c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "unavailable"})
	}
	metrics.ReadyzUp.Set(1)
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}
