package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bluberry/bluberry/tools/dashgen/dashboards"
	"github.com/bluberry/bluberry/tools/dashgen/rules"
	"github.com/bluberry/bluberry/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	assert.Error(t, Config{DashboardEnabled: true}.Validate())
	assert.Error(t, Config{OutputDir: "/tmp"}.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	dash, err := dashboards.BuildOverview().Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "bluberry-overview", *dash.Uid)
	require.NotNil(t, dash.Title)
	assert.Equal(t, "BluBerry Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	require.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	assert.Len(t, dash.Panels, 5)
	total := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			total += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 18, total)

	res := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, res.Ok(), "validation errors: %v", res.Errors)
	assert.Empty(t, res.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "bluberry-recording-rules", cr.Metadata.Name)
	require.Len(t, cr.Spec.Groups, 1)

	for _, r := range cr.Spec.Groups[0].Rules {
		assert.True(t, KnownMetrics[r.Record], "recording rule %s missing from KnownMetrics", r.Record)
	}

	res := validate.Exprs(cr.Exprs(), KnownMetrics)
	assert.True(t, res.Ok(), "validation errors: %v", res.Errors)
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	require.Len(t, group.Rules, 10)

	for _, r := range group.Rules {
		assert.Contains(t, []string{"warning", "critical"}, r.Labels["severity"], r.Alert)
		assert.NotEmpty(t, r.Annotations["summary"], r.Alert)
		assert.NotEmpty(t, r.Annotations["description"], r.Alert)
	}

	res := validate.Exprs(cr.Exprs(), KnownMetrics)
	assert.True(t, res.Ok(), "validation errors: %v", res.Errors)
}

func TestRun_ValidateOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var out bytes.Buffer
	require.NoError(t, run(&out, Config{OutputDir: dir, DashboardEnabled: true, RulesEnabled: true}, true))
	assert.Contains(t, out.String(), "validation passed")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var out bytes.Buffer
	require.NoError(t, run(&out, Config{OutputDir: dir, DashboardEnabled: true, RulesEnabled: true}, false))

	_, err := os.Stat(filepath.Join(dir, "grafana", "bluberry-overview.json"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "prometheus", "bluberry-alerts.yaml"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte(generatedHeader)))

	var cr rules.PrometheusRule
	require.NoError(t, yaml.Unmarshal(data, &cr))
	assert.Equal(t, "bluberry-alerts", cr.Metadata.Name)
}
