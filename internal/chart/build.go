package chart

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/coopcost/internal/model"
	"github.com/theirongolddev/coopcost/internal/pipeline"
)

// Kind names a chart document.
type Kind string

const (
	KindSimple  Kind = "simple"
	KindComplex Kind = "complex"
	KindSummary Kind = "summary"
)

// Kinds lists every buildable document in output order.
var Kinds = []Kind{KindSimple, KindComplex, KindSummary}

// ParseKind matches s case-insensitively against the known kinds.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown chart %q (want simple, complex or summary)", s)
}

// DefaultFileName is the file a document is written to inside the output
// directory.
func (k Kind) DefaultFileName() string { return string(k) + ".json" }

// Stats describes what went into a built document.
type Stats struct {
	Kind      Kind
	Values    model.Values
	Scenarios int
	Records   int
}

// Build resolves overrides against src's variables and builds the document
// of the given kind.
func Build(kind Kind, src pipeline.Source, opts Options, overrides model.Values) (Spec, Stats, error) {
	vars := src.Variables()
	vals, err := vars.Resolve(overrides)
	if err != nil {
		return Spec{}, Stats{}, err
	}
	frame := Frame{Options: opts, Variables: vars, Values: vals}
	stats := Stats{Kind: kind, Values: vals}

	switch kind {
	case KindSimple:
		recs, err := pipeline.AggregateWith(src.Scenarios, vars, vals)
		if err != nil {
			return Spec{}, stats, err
		}
		stats.Scenarios = len(recs.ScenarioOrder)
		stats.Records = recs.Len()
		return Simple(frame, recs), stats, nil

	case KindSummary:
		costs, err := pipeline.Summarize(src.Monthly, vars, vals)
		if err != nil {
			return Spec{}, stats, err
		}
		stats.Records = len(costs)
		return Summary(frame, costs), stats, nil

	case KindComplex:
		costs, err := pipeline.Summarize(src.Monthly, vars, vals)
		if err != nil {
			return Spec{}, stats, err
		}
		series, err := pipeline.SweepAll(src.Monthly, vars, vals)
		if err != nil {
			return Spec{}, stats, err
		}
		stats.Records = len(costs)
		for _, s := range series {
			stats.Records += len(s.Points)
		}
		return Complex(frame, costs, series), stats, nil
	}
	return Spec{}, stats, fmt.Errorf("unknown chart %q", kind)
}
