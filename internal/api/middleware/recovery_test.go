package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		method    string
		path      string
		handler   echo.HandlerFunc
		wantCode  int
		wantLog   []string
		wantEmpty bool
	}{
		{
			name:      "no panic",
			method:    http.MethodGet,
			path:      "/api/v1/items",
			handler:   func(c echo.Context) error { return c.String(http.StatusOK, "ok") },
			wantCode:  http.StatusOK,
			wantEmpty: true,
		},
		{
			name:     "string panic",
			method:   http.MethodPost,
			path:     "/api/v1/items/item-1/ebay/list",
			handler:  func(echo.Context) error { panic("nil offer") },
			wantCode: http.StatusInternalServerError,
			wantLog:  []string{"panic recovered", "nil offer", "method=POST", "path=/api/v1/items/item-1/ebay/list"},
		},
		{
			name:     "non-string panic",
			method:   http.MethodGet,
			path:     "/api/v1/quota",
			handler:  func(echo.Context) error { panic(42) },
			wantCode: http.StatusInternalServerError,
			wantLog:  []string{"error=42", "request_id=req-7"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := slog.New(slog.NewTextHandler(&buf, nil))

			e := echo.New()
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Set(requestIDKey, "req-7")

			require.NoError(t, Recovery(log)(tt.handler)(c))
			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantEmpty {
				assert.Empty(t, buf.String())
				return
			}
			assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
			for _, part := range tt.wantLog {
				assert.Contains(t, buf.String(), part)
			}
		})
	}
}

func TestRecovery_AbortHandlerRepanics(t *testing.T) {
	t.Parallel()

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", http.NoBody), httptest.NewRecorder())

	h := Recovery(slog.New(slog.DiscardHandler))(func(echo.Context) error {
		panic(http.ErrAbortHandler)
	})
	assert.PanicsWithValue(t, http.ErrAbortHandler, func() { _ = h(c) })
}
