// Package breakgraph builds the reduced graph that the acyclic-break
// pipeline simplifies and ranks: one vertex per non-trivial SCC member
// of the origin graph, one edge per followed origin edge between two
// such vertices.
//
// Grounded on the origin source's graphalg.cpp buildBreakGraph. The
// origin source threads OrigEdgeList bookkeeping through a map rebuilt
// locally inside addOrigEdge on every call, which silently drops
// entries accumulated by earlier calls in the same build; BreakGraph
// instead carries one EdgeMap for the lifetime of the break graph, so
// every break edge's origin list survives splicing in the simplify and
// place packages.
package breakgraph
