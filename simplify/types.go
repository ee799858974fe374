package simplify

import (
	"errors"

	"github.com/katalvlaran/graphsched/graph"
)

// ErrMandatoryCycle is the sentinel a Reporter's MandatoryCycle return
// value should wrap with fmt.Errorf("%w: ...") so callers can match it
// with errors.Is regardless of which Reporter implementation is in use.
var ErrMandatoryCycle = errors.New("simplify: mandatory cycle")

// Reporter receives diagnostics for conditions the simplifier cannot
// resolve on its own. Run continues in best-effort mode regardless of
// what the Reporter does with the notification; MandatoryCycle's return
// value is not propagated by Run, only given back to the immediate
// caller of the interface method.
type Reporter interface {
	// MandatoryCycle is called when simplifyOut finds a self-loop among
	// a vertex's incoming edges while its sole outgoing edge is already
	// mandatory (non-cutable) — the two together form a cycle with no
	// cutable edge to remove. origin is the origin graph the cycle was
	// found in; trace is the witnessing vertex trace (the origin-source
	// "loopsMessageCb"-style diagnostic spec.md §7 calls for).
	MandatoryCycle(origin *graph.Graph, trace []*graph.Vertex) error
}

// NoopReporter discards every notification.
type NoopReporter struct{}

// MandatoryCycle implements Reporter by doing nothing.
func (NoopReporter) MandatoryCycle(*graph.Graph, []*graph.Vertex) error { return nil }
