// Package middleware provides Echo middleware for the BluBerry API server.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bluberry/bluberry/internal/metrics"
)

// unmatchedPath labels requests that hit no route, keeping raw URLs out of
// label values.
const unmatchedPath = "unmatched"

// healthPaths are scraped and polled constantly and are not recorded.
var healthPaths = map[string]struct{}{
	"/metrics": {},
	"/healthz": {},
	"/readyz":  {},
}

// Metrics returns Echo middleware that records request duration and status
// by route template, so /api/v1/items/{id} is one series for every item.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, skip := healthPaths[c.Request().URL.Path]; skip {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = unmatchedPath
			}
			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return nil
		}
	}
}
