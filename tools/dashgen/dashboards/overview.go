// Package dashboards assembles Grafana dashboards from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/bluberry/bluberry/tools/dashgen/panels"
)

// BuildOverview constructs the BluBerry overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("BluBerry Overview").
		Uid("bluberry-overview").
		Tags([]string{"bluberry", "ebay"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("eBay API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.APICallLatency()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.LimitHits()).
		WithPanel(panels.BreakerState()).
		WithPanel(panels.TokenRefreshes()))

	b.WithRow(dashboard.NewRowBuilder("Listings").
		WithPanel(panels.ListingOperations()).
		WithPanel(panels.ItemsSubmitted()).
		WithPanel(panels.ConditionMapping()))

	b.WithRow(dashboard.NewRowBuilder("Notifications").
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
