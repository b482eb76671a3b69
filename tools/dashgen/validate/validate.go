// Package validate checks generated PromQL against the metrics bluberry
// actually exports.
package validate

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects problems found in a set of expressions. Errors are
// unparseable queries or unknown metrics; warnings are panels without a
// query.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool { return len(r.Errors) == 0 }

var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Metrics returns the sorted metric names selected by expr.
func Metrics(expr string) ([]string, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		if vs, ok := n.(*parser.VectorSelector); ok && vs.Name != "" {
			seen[vs.Name] = true
		}
		return nil
	})

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// Exprs validates each expression against known.
func Exprs(exprs []string, known map[string]bool) Result {
	var res Result
	for _, expr := range exprs {
		names, err := Metrics(expr)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("parsing %q: %v", expr, err))
			continue
		}
		for _, name := range names {
			if !isKnown(name, known) {
				res.Errors = append(res.Errors, fmt.Sprintf("unknown metric %q in %q", name, expr))
			}
		}
	}
	return res
}

// Dashboard validates every query target in a built dashboard. The
// dashboard is walked in its JSON form so any panel type is covered.
func Dashboard(dash any, known map[string]bool) Result {
	raw, err := json.Marshal(dash)
	if err != nil {
		return Result{Errors: []string{fmt.Sprintf("marshaling dashboard: %v", err)}}
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return Result{Errors: []string{fmt.Sprintf("decoding dashboard: %v", err)}}
	}

	var exprs, warnings []string
	walk(tree, &exprs, &warnings)

	res := Exprs(exprs, known)
	res.Warnings = append(res.Warnings, warnings...)
	return res
}

func walk(node any, exprs, warnings *[]string) {
	switch v := node.(type) {
	case map[string]any:
		if _, isPanel := v["gridPos"]; isPanel && v["type"] != "row" {
			if targets, ok := v["targets"].([]any); !ok || len(targets) == 0 {
				title, _ := v["title"].(string)
				*warnings = append(*warnings, fmt.Sprintf("panel %q has no targets", title))
			}
		}
		if expr, ok := v["expr"].(string); ok {
			*exprs = append(*exprs, expr)
		}
		for _, child := range v {
			walk(child, exprs, warnings)
		}
	case []any:
		for _, child := range v {
			walk(child, exprs, warnings)
		}
	}
}
