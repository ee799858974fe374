// Package acyclic composes scc, breakgraph, simplify, rank, and place
// into the full cycle-breaking pipeline described by the origin
// source's acylic driver in graphalg.cpp: color the graph's strongly
// connected components, build a reduced break graph over the
// non-trivial ones, simplify it twice (first structurally, then with
// cut rules enabled), rank it by its mandatory edges, greedily place
// its cutable edges, and re-rank as a loop-free verification pass.
//
// Break does not mutate the origin graph's topology; it only marks
// origin edges as cut via Graph.MarkCut, leaving removal (if desired)
// to the caller.
package acyclic
