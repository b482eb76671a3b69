package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// APICallsRate shows Sell API calls per second by operation and outcome.
func APICallsRate() *timeseries.PanelBuilder {
	return lineChart("Sell API Calls", "eBay Sell API calls per second by operation and outcome", "reqps", ThirdWidth).
		WithTarget(PromQuery(`bluberry:ebay_api_calls:rate5m`, "{{operation}} {{outcome}}", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// APICallLatency shows p95 Sell API latency per operation.
func APICallLatency() *timeseries.PanelBuilder {
	return lineChart("Sell API Latency p95", "95th percentile eBay call duration per operation", "s", ThirdWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(bluberry_ebay_api_call_duration_seconds_bucket[5m])) by (le, operation))`,
			"{{operation}}", "A",
		)).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// DailyUsage shows calls admitted today against the daily limit.
func DailyUsage() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Daily Usage vs Limit").
		Description(fmt.Sprintf("eBay calls admitted since midnight UTC (limit: %d)", EbayDailyLimit)).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(fmt.Sprintf(`bluberry_ebay_daily_usage{job=%q}`, Job), "usage", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(float64(EbayDailyLimit)*0.8, float64(EbayDailyLimit))).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// LimitHits counts calls rejected by the daily limit in the last 24h.
func LimitHits() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Limit Hits (24h)").
		Description("Calls rejected because the daily limit was reached").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(fmt.Sprintf(`increase(bluberry_ebay_daily_limit_hits_total{job=%q}[24h])`, Job), "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// TokenRefreshes shows access token refreshes by result.
func TokenRefreshes() *timeseries.PanelBuilder {
	return lineChart("Token Refreshes", "Access token refreshes per hour by result", "short", TSWidth).
		WithTarget(PromQuery(
			`sum by (result) (increase(bluberry_ebay_token_refreshes_total[1h]))`,
			"{{result}}", "A",
		)).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// BreakerState shows the Sell API circuit breaker (0 closed, 1 open,
// 2 half-open).
func BreakerState() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Circuit Breaker").
		Description("eBay circuit breaker state (0 = closed, 1 = open, 2 = half-open)").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`max by (service) (bluberry_circuit_breaker_state)`, "{{service}}", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 2)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}
