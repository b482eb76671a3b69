package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ListingOperations shows list and unlist calls by result kind.
func ListingOperations() *timeseries.PanelBuilder {
	return lineChart("Listing Operations", "List and unlist operations per second by result", "ops", TSWidth).
		WithTarget(PromQuery(`bluberry:listing_operations:rate5m`, "{{operation}} {{result}}", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// ItemsSubmitted counts inventory items pushed to eBay in the last 24h.
func ItemsSubmitted() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Items Submitted (24h)").
		Description("Inventory items created or replaced on eBay").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`sum(increase(bluberry_items_submitted_total[24h]))`, "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// ConditionMapping shows fallbacks to USED_GOOD and table disagreements.
func ConditionMapping() *timeseries.PanelBuilder {
	return lineChart("Condition Mapping", "Unknown conditions that fell back and table conflicts per hour", "short", TSWidth).
		WithTarget(PromQuery(`sum(increase(bluberry_condition_fallbacks_total[1h]))`, "fallbacks", "A")).
		WithTarget(PromQuery(`sum(increase(bluberry_condition_conflicts_total[1h]))`, "conflicts", "B")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// NotificationLatency shows p95 webhook delivery time.
func NotificationLatency() *timeseries.PanelBuilder {
	return lineChart("Notification Latency p95", "95th percentile webhook delivery time", "s", TSWidth).
		WithTarget(PromQuery(`bluberry:notification_duration:p95_5m`, "p95", "A")).
		Thresholds(ThresholdsGreenYellowRed(2, 5)).
		ColorScheme(ColorSchemeThresholds())
}

// NotificationFailures counts failed webhook deliveries.
func NotificationFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Notification Failures (1h)").
		Description("Webhook deliveries that failed in the last hour").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`sum(increase(bluberry_notification_failures_total[1h]))`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}
