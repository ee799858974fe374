package simplify

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/graphsched/graph"
)

// CollectingReporter accumulates every MandatoryCycle notification into a
// single aggregated error, in the style of hashicorp/go-multierror.
type CollectingReporter struct {
	errs *multierror.Error
}

// NewCollectingReporter returns a Reporter ready to accumulate.
func NewCollectingReporter() *CollectingReporter {
	return &CollectingReporter{}
}

// MandatoryCycle records a fatal-cycle diagnostic wrapping
// ErrMandatoryCycle, so callers can match it with errors.Is regardless
// of how many cycles this reporter has already accumulated. origin is
// unused beyond documenting which graph the trace belongs to: the
// trace's vertices are themselves the useful payload.
func (r *CollectingReporter) MandatoryCycle(origin *graph.Graph, trace []*graph.Vertex) error {
	err := fmt.Errorf("%w: trace of %d vertices", ErrMandatoryCycle, len(trace))
	r.errs = multierror.Append(r.errs, err)

	return err
}

// Err returns the aggregated diagnostics, or nil if none were recorded.
func (r *CollectingReporter) Err() error {
	return r.errs.ErrorOrNil()
}
