package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RequestRate shows HTTP requests per second.
func RequestRate() *timeseries.PanelBuilder {
	return lineChart("Request Rate", "HTTP requests per second", "reqps", TSWidth).
		WithTarget(PromQuery(`bluberry:http_requests:rate5m`, "req/s", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// LatencyPercentiles shows p50, p95 and p99 HTTP latency.
func LatencyPercentiles() *timeseries.PanelBuilder {
	b := lineChart("Latency Percentiles", "HTTP request duration percentiles", "s", TSWidth).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())

	for i, q := range []string{"0.50", "0.95", "0.99"} {
		expr := fmt.Sprintf(
			`histogram_quantile(%s, sum(rate(bluberry_http_request_duration_seconds_bucket{job=%q}[5m])) by (le))`,
			q, Job,
		)
		b = b.WithTarget(PromQuery(expr, "p"+q[2:], string(rune('A'+i))))
	}
	return b
}

// ErrorRate shows 5xx responses as a percentage of all requests.
func ErrorRate() *timeseries.PanelBuilder {
	return lineChart("Error Rate %", "HTTP 5xx error rate as percentage of total requests", "percent", TSWidth).
		WithTarget(PromQuery(`bluberry:http_errors:rate5m / bluberry:http_requests:rate5m * 100`, "error %", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds())
}
