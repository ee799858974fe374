package graph

// VertexMap is a default-on-read scratch map keyed by vertex identity.
// Reading an absent key returns T's zero value without inserting it;
// Set always inserts. The SCC and rank algorithms rely on this to tell
// "not yet visited" (zero) apart from "visited with value v" (v), per
// the module's default-on-read requirement.
type VertexMap[T any] struct {
	m map[*Vertex]T
}

// NewVertexMap returns an empty VertexMap.
func NewVertexMap[T any]() *VertexMap[T] {
	return &VertexMap[T]{m: make(map[*Vertex]T)}
}

// Get returns the value stored for v, or the zero value if absent.
func (vm *VertexMap[T]) Get(v *Vertex) T {
	return vm.m[v]
}

// Set stores value for v.
func (vm *VertexMap[T]) Set(v *Vertex, value T) {
	vm.m[v] = value
}

// Has reports whether v has an explicit entry (as opposed to reading the
// zero value by default).
func (vm *VertexMap[T]) Has(v *Vertex) bool {
	_, ok := vm.m[v]
	return ok
}

// Delete removes v's entry, if any.
func (vm *VertexMap[T]) Delete(v *Vertex) {
	delete(vm.m, v)
}

// EdgeMap is the Edge analogue of VertexMap.
type EdgeMap[T any] struct {
	m map[*Edge]T
}

// NewEdgeMap returns an empty EdgeMap.
func NewEdgeMap[T any]() *EdgeMap[T] {
	return &EdgeMap[T]{m: make(map[*Edge]T)}
}

// Get returns the value stored for e, or the zero value if absent.
func (em *EdgeMap[T]) Get(e *Edge) T {
	return em.m[e]
}

// Set stores value for e.
func (em *EdgeMap[T]) Set(e *Edge, value T) {
	em.m[e] = value
}

// Has reports whether e has an explicit entry.
func (em *EdgeMap[T]) Has(e *Edge) bool {
	_, ok := em.m[e]
	return ok
}

// Delete removes e's entry, if any.
func (em *EdgeMap[T]) Delete(e *Edge) {
	delete(em.m, e)
}
