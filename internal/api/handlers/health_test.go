package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bluberry/bluberry/internal/api/handlers"
	"github.com/bluberry/bluberry/internal/metrics"
	storeMocks "github.com/bluberry/bluberry/internal/store/mocks"
)

func TestHealthz(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(storeMocks.NewMockStore(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Healthz(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// Subtests run sequentially because they assert on the shared readiness gauge.
func TestReadyz(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
		wantGauge  float64
	}{
		{
			name:       "store reachable",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready"}`,
			wantGauge:  1,
		},
		{
			name:       "store unreachable",
			pingErr:    errors.New("connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable"}`,
			wantGauge:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := storeMocks.NewMockStore(t)
			ms.EXPECT().Ping(mock.Anything).Return(tt.pingErr).Once()

			h := handlers.NewHealthHandler(ms)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody)
			rec := httptest.NewRecorder()

			require.NoError(t, h.Readyz(e.NewContext(req, rec)))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.InDelta(t, tt.wantGauge, testutil.ToFloat64(metrics.ReadyzUp), 0.001)
		})
	}
}
