package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

type requestIDCtxKey struct{}

// RequestIDFrom returns the request id RequestLog attached to ctx.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDCtxKey{}).(string)
	return id
}

// RequestLog returns Echo middleware that logs each request with structured
// fields and an X-Request-ID, generated when the caller sends none. Probe
// paths log their first success and every failure; repeated successes are
// dropped.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var healthSeen sync.Map

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			reqID := req.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(requestIDHeader, reqID)
			c.SetRequest(req.WithContext(context.WithValue(req.Context(), requestIDCtxKey{}, reqID)))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := req.URL.Path
			status := c.Response().Status

			if isProbe(path) && status < 400 {
				if _, seen := healthSeen.LoadOrStore(path, struct{}{}); seen {
					return nil
				}
			}

			level := slog.LevelInfo
			switch {
			case status >= 500 && !isProbe(path):
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}

			log.Log(req.Context(), level, "request",
				"method", req.Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			)
			return nil
		}
	}
}

func isProbe(path string) bool {
	_, ok := healthPaths[path]
	return ok
}
