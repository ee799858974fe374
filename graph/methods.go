package graph

import "container/list"

// NewVertex allocates a vertex owned by g and appends it to the vertex
// set. Complexity: O(1).
func (g *Graph) NewVertex() *Vertex {
	v := &Vertex{graph: g, out: list.New(), in: list.New()}
	v.graph.velems[v] = v.graph.vertices.PushBack(v)

	return v
}

// NewEdge allocates a directed edge from -> to with the given weight and
// links it into both endpoints' edge lists. Cutable defaults to true.
// Both from and to must belong to g; passing a foreign vertex panics
// (undefined behavior per the origin source, turned into a checked panic
// here rather than silently corrupting adjacency).
// Complexity: O(1).
func (g *Graph) NewEdge(from, to *Vertex, weight int64) *Edge {
	mustOwn(g, from)
	mustOwn(g, to)

	e := &Edge{graph: g, from: from, to: to, Weight: weight, Cutable: true}
	e.outElem = from.out.PushBack(e)
	e.inElem = to.in.PushBack(e)

	return e
}

// Remove deletes v and all edges incident to v (both directions),
// deallocating the edges first, then the vertex itself. Removing a
// vertex that does not belong to g panics.
// Complexity: O(deg(v)).
func (g *Graph) Remove(v *Vertex) {
	mustOwn(g, v)

	// Snapshot incident edges before mutating either list, since Remove
	// on an edge splices it out of v's own lists as we go.
	var incident []*Edge
	for el := v.out.Front(); el != nil; el = el.Next() {
		incident = append(incident, el.Value.(*Edge))
	}
	for el := v.in.Front(); el != nil; el = el.Next() {
		// A self-loop is already in the snapshot from v.out.
		if e := el.Value.(*Edge); e.from != v {
			incident = append(incident, e)
		}
	}
	for _, e := range incident {
		g.RemoveEdge(e)
	}

	elem := g.velems[v]
	g.vertices.Remove(elem)
	delete(g.velems, v)
	v.graph = nil
}

// RemoveEdge unlinks e from both endpoints' edge lists and deallocates
// it. Removing an edge that does not belong to g panics.
// Complexity: O(1).
func (g *Graph) RemoveEdge(e *Edge) {
	mustOwnEdge(g, e)

	e.from.out.Remove(e.outElem)
	e.to.in.Remove(e.inElem)
	e.graph = nil
}

// Vertices yields all vertices in insertion order. Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, 0, g.vertices.Len())
	for el := g.vertices.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*Vertex))
	}

	return out
}

// VertexCount returns the number of live vertices. Complexity: O(1).
func (g *Graph) VertexCount() int { return g.vertices.Len() }

// Out yields v's outgoing edges in insertion order. Complexity: O(deg(v)).
func (v *Vertex) Out() []*Edge { return edgeSlice(v.out) }

// In yields v's incoming edges in insertion order. Complexity: O(deg(v)).
func (v *Vertex) In() []*Edge { return edgeSlice(v.in) }

// OutDegree returns the number of outgoing edges. Complexity: O(1).
func (v *Vertex) OutDegree() int { return v.out.Len() }

// InDegree returns the number of incoming edges. Complexity: O(1).
func (v *Vertex) InDegree() int { return v.in.Len() }

// Degree returns (in-degree, out-degree) for v in a single call, grounded
// on the teacher's core.Graph.Degree convenience accessor.
// Complexity: O(1).
func (v *Vertex) Degree() (in, out int) { return v.in.Len(), v.out.Len() }

// Cutable reports e's Cutable flag. Present as a Graph method (rather
// than reading e.Cutable directly) so origin graphs and break graphs
// share one call surface per spec's "clean reimplementation" note.
func (g *Graph) Cutable(e *Edge) bool { return e.Cutable }

// SetCutable sets e's Cutable flag.
func (g *Graph) SetCutable(e *Edge, cutable bool) { e.Cutable = cutable }

// MarkCut records that e has been selected for removal by the
// acyclic-break pipeline. It does not remove e from the graph.
func (g *Graph) MarkCut(e *Edge) { e.Cut = true }

// IsCut reports whether e has been marked cut.
func (g *Graph) IsCut(e *Edge) bool { return e.Cut }

// Follow reports whether e should be followed under predicate pred: its
// weight must be non-zero and pred(e) (or AlwaysTrue if pred is nil)
// must hold.
func Follow(e *Edge, pred EdgeFunc) bool {
	if pred == nil {
		pred = AlwaysTrue
	}

	return e.Weight != 0 && pred(e)
}

func edgeSlice(l *list.List) []*Edge {
	out := make([]*Edge, 0, l.Len())
	for el := l.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*Edge))
	}

	return out
}

func mustOwn(g *Graph, v *Vertex) {
	if v == nil {
		panic(ErrNilVertex)
	}
	if v.graph != g {
		panic(ErrForeignVertex)
	}
}

func mustOwnEdge(g *Graph, e *Edge) {
	if e == nil {
		panic(ErrNilEdge)
	}
	if e.graph != g {
		panic(ErrForeignEdge)
	}
}
