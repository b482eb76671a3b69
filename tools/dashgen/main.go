// Command dashgen generates the BluBerry Grafana dashboard and Prometheus
// rule files from Go builders and validates every query against the
// exported metric names.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bluberry/bluberry/tools/dashgen/dashboards"
	"github.com/bluberry/bluberry/tools/dashgen/rules"
	"github.com/bluberry/bluberry/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by dashgen. DO NOT EDIT.\n"

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Stdout, cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type artifact struct {
	path string
	data []byte
}

func run(out io.Writer, cfg Config, validateOnly bool) error {
	var (
		files []artifact
		res   validate.Result
	)

	if cfg.DashboardEnabled {
		dash, err := dashboards.BuildOverview().Build()
		if err != nil {
			return fmt.Errorf("building dashboard: %w", err)
		}
		data, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling dashboard: %w", err)
		}
		files = append(files, artifact{
			path: filepath.Join(cfg.OutputDir, "grafana", "bluberry-overview.json"),
			data: append(data, '\n'),
		})
		res = merge(res, validate.Dashboard(dash, KnownMetrics))
	}

	if cfg.RulesEnabled {
		for name, cr := range map[string]rules.PrometheusRule{
			"bluberry-recording-rules.yaml": rules.RecordingRules(),
			"bluberry-alerts.yaml":          rules.AlertRules(),
		} {
			data, err := yaml.Marshal(cr)
			if err != nil {
				return fmt.Errorf("marshaling %s: %w", name, err)
			}
			files = append(files, artifact{
				path: filepath.Join(cfg.OutputDir, "prometheus", name),
				data: append([]byte(generatedHeader), data...),
			})
			res = merge(res, validate.Exprs(cr.Exprs(), KnownMetrics))
		}
	}

	for _, w := range res.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	if !res.Ok() {
		return errors.New("validation failed:\n  " + strings.Join(res.Errors, "\n  "))
	}
	if validateOnly {
		fmt.Fprintln(out, "validation passed")
		return nil
	}

	for _, f := range files {
		if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(f.path), err)
		}
		if err := os.WriteFile(f.path, f.data, 0o644); err != nil { //nolint:gosec // generated config is world-readable
			return fmt.Errorf("writing %s: %w", f.path, err)
		}
		fmt.Fprintf(out, "wrote %s\n", f.path)
	}
	return nil
}

func merge(a, b validate.Result) validate.Result {
	return validate.Result{
		Errors:   append(a.Errors, b.Errors...),
		Warnings: append(a.Warnings, b.Warnings...),
	}
}
