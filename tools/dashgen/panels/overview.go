package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

func checkStat(title, description, metric string) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(metric, "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

// HealthzStat shows the liveness check (1 = ok).
func HealthzStat() *stat.PanelBuilder {
	return checkStat("Healthz", "Health check status (1 = ok, 0 = failing)", `bluberry_healthz_up`)
}

// ReadyzStat shows the readiness check (1 = database reachable).
func ReadyzStat() *stat.PanelBuilder {
	return checkStat("Readyz", "Readiness check status (1 = ready, 0 = not ready)", `bluberry_readyz_up`)
}

// QuotaGauge shows eBay calls made today as a percentage of the daily limit.
func QuotaGauge() *gauge.PanelBuilder {
	return gauge.NewPanelBuilder().
		Title("eBay Quota %").
		Description("Sell API calls today as a percentage of the daily limit").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(fmt.Sprintf("bluberry_ebay_daily_usage / %d * 100", EbayDailyLimit), "", "A")).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(ThresholdsGreenYellowRed(80, 95)).
		ColorScheme(ColorSchemeThresholds())
}

// UptimeStat shows time since process start.
func UptimeStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Uptime").
		Description("Time since process start").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(fmt.Sprintf(`time() - process_start_time_seconds{job=%q}`, Job), "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeNone)
}
