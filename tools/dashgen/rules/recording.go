package rules

// RecordingRules returns the pre-computed rates used by the dashboard and
// alerts.
func RecordingRules() PrometheusRule {
	return newRule("bluberry-recording-rules", RuleGroup{
		Name: "bluberry-recording",
		Rules: []Rule{
			{
				Record: "bluberry:http_requests:rate5m",
				Expr:   `sum(rate(bluberry_http_requests_total[5m]))`,
			},
			{
				Record: "bluberry:http_errors:rate5m",
				Expr:   `sum(rate(bluberry_http_requests_total{status=~"5.."}[5m]))`,
			},
			{
				Record: "bluberry:ebay_api_calls:rate5m",
				Expr:   `sum by (operation, outcome) (rate(bluberry_ebay_api_calls_total[5m]))`,
			},
			{
				Record: "bluberry:listing_operations:rate5m",
				Expr:   `sum by (operation, result) (rate(bluberry_listing_operations_total[5m]))`,
			},
			{
				Record: "bluberry:notification_duration:p95_5m",
				Expr:   `histogram_quantile(0.95, sum(rate(bluberry_notification_duration_seconds_bucket[5m])) by (le))`,
			},
		},
	})
}
