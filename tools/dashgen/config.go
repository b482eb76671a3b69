package main

import "errors"

// KnownMetrics is the set of metric names exported by bluberry plus the
// recording rule names referenced in dashboards and alerts. Histogram
// series are listed by base name.
var KnownMetrics = map[string]bool{
	// HTTP.
	"bluberry_http_request_duration_seconds": true,
	"bluberry_http_requests_total":           true,
	"bluberry_healthz_up":                    true,
	"bluberry_readyz_up":                     true,

	// eBay.
	"bluberry_ebay_api_calls_total":            true,
	"bluberry_ebay_api_call_duration_seconds":  true,
	"bluberry_ebay_daily_usage":                true,
	"bluberry_ebay_daily_limit_hits_total":     true,
	"bluberry_ebay_token_refreshes_total":      true,
	"bluberry_circuit_breaker_state":           true,

	// Listing.
	"bluberry_listing_operations_total":  true,
	"bluberry_condition_fallbacks_total": true,
	"bluberry_condition_conflicts_total": true,
	"bluberry_items_submitted_total":     true,

	// Notifications.
	"bluberry_notification_duration_seconds": true,
	"bluberry_notification_failures_total":   true,

	// Recording rules.
	"bluberry:http_requests:rate5m":          true,
	"bluberry:http_errors:rate5m":            true,
	"bluberry:ebay_api_calls:rate5m":         true,
	"bluberry:listing_operations:rate5m":     true,
	"bluberry:notification_duration:p95_5m": true,

	// Standard Prometheus metrics.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig generates all artifacts into ../../deploy (relative to
// tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
