package breakgraph

import (
	"errors"

	"github.com/katalvlaran/graphsched/graph"
)

// ErrNilGraph indicates a nil *graph.Graph was passed to Build.
var ErrNilGraph = errors.New("breakgraph: graph is nil")

// ErrNilColoring indicates a nil coloring map was passed to Build.
var ErrNilColoring = errors.New("breakgraph: coloring is nil")

// BreakGraph is the reduced graph the simplify, rank, and place packages
// operate on. It owns a distinct graph.Graph from the origin graph it was
// built from; OrigEdges entries are weak references into the origin
// graph and must not outlive it.
type BreakGraph struct {
	Graph *graph.Graph

	// ToBreak maps an origin vertex (with non-zero color) to its
	// break-graph counterpart.
	ToBreak *graph.VertexMap[*graph.Vertex]

	// OrigEdges maps a break-graph edge to the origin-graph edges it
	// currently stands in for. Every break edge has at least one entry
	// here for the lifetime of the break graph; simplify splices and
	// merges entries as it collapses edges, and place drains them when
	// an edge is cut.
	OrigEdges *graph.EdgeMap[[]*graph.Edge]
}

// AddOrigEdges appends origin to the list represented by brk.
func (bg *BreakGraph) AddOrigEdges(brk *graph.Edge, origin ...*graph.Edge) {
	bg.OrigEdges.Set(brk, append(bg.OrigEdges.Get(brk), origin...))
}

// SpliceOrigEdges moves from's origin-edge list onto into's and clears
// from's entry. Used by simplify when two break edges collapse into one.
func (bg *BreakGraph) SpliceOrigEdges(into, from *graph.Edge) {
	bg.OrigEdges.Set(into, append(bg.OrigEdges.Get(into), bg.OrigEdges.Get(from)...))
	bg.OrigEdges.Delete(from)
}

// CutOrigEdges marks every origin edge represented by brk as cut on the
// origin graph.
func (bg *BreakGraph) CutOrigEdges(origin *graph.Graph, brk *graph.Edge) {
	for _, oe := range bg.OrigEdges.Get(brk) {
		origin.MarkCut(oe)
	}
}
