package graph

import (
	"container/list"
	"errors"
)

// Sentinel errors for graph operations.
var (
	// ErrNilVertex indicates a nil *Vertex was passed where one was required.
	ErrNilVertex = errors.New("graph: vertex is nil")

	// ErrNilEdge indicates a nil *Edge was passed where one was required.
	ErrNilEdge = errors.New("graph: edge is nil")

	// ErrForeignVertex indicates a Vertex does not belong to the Graph it
	// was handed to. Removing or mutating a foreign vertex is undefined
	// behavior in the origin source; graphsched turns it into a checked
	// panic instead of silent corruption.
	ErrForeignVertex = errors.New("graph: vertex does not belong to this graph")

	// ErrForeignEdge is the Edge analogue of ErrForeignVertex.
	ErrForeignEdge = errors.New("graph: edge does not belong to this graph")
)

// EdgeFunc is a predicate on edges. An edge is "followed" by an algorithm
// only when its Weight is non-zero AND the predicate reports true; a nil
// EdgeFunc is treated as AlwaysTrue. See Follow.
type EdgeFunc func(e *Edge) bool

// AlwaysTrue is the default EdgeFunc: every non-zero-weight edge is
// followed. Mirrors graphalg.hpp's followAlwaysTrue.
func AlwaysTrue(*Edge) bool { return true }

// Vertex is an opaque node owned by exactly one Graph. It carries no
// intrinsic payload; callers key external state off the Vertex's pointer
// identity via VertexMap.
type Vertex struct {
	graph *Graph
	out   *list.List // of *Edge, insertion order
	in    *list.List // of *Edge, insertion order
}

// Edge is a directed connection between two vertices owned by the same
// Graph. From and To are immutable after creation; Weight, Cutable, and
// Cut are mutable.
type Edge struct {
	graph *Graph
	from  *Vertex
	to    *Vertex

	// Weight is the edge's signed integer weight. Weight == 0 means the
	// edge is logically dead: every algorithm's followed-edge predicate
	// is Weight != 0 && predicate(edge), so a zero-weight edge is always
	// skipped regardless of the caller's predicate.
	Weight int64

	// Cutable marks this edge as eligible to be removed to break a cycle.
	// Defaults to true. Only the break graph built by package breakgraph
	// mutates it during simplification/placement; an origin graph may
	// leave it at the caller's chosen value indefinitely.
	Cutable bool

	// Cut records that this edge was selected, by the acyclic-break
	// pipeline, to be removed to make the graph rankable. Cut edges are
	// not removed from the graph (see Graph.MarkCut); a caller's own
	// follow predicate decides whether to skip them.
	Cut bool

	outElem *list.Element // this edge's node in from.out
	inElem  *list.Element // this edge's node in to.in
}

// From returns the edge's source vertex.
func (e *Edge) From() *Vertex { return e.from }

// To returns the edge's destination vertex.
func (e *Edge) To() *Vertex { return e.to }

// Graph owns the lifetime of all vertices and edges created through it.
// Removing a vertex removes all its incident edges first; removing an
// edge unlinks it from both endpoints. Graph tolerates parallel edges and
// self-loops. Iteration order over Vertices/Vertex.Out/Vertex.In reflects
// insertion order.
//
// Graph is single-threaded; see the module's Non-goals (persistent or
// concurrent graphs are explicitly out of scope).
type Graph struct {
	vertices *list.List // of *Vertex
	velems   map[*Vertex]*list.Element
}

// New returns an empty Graph ready for use.
func New() *Graph {
	return &Graph{
		vertices: list.New(),
		velems:   make(map[*Vertex]*list.Element),
	}
}
