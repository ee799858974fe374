// Package graph is the in-memory directed-graph container that every
// algorithm package in graphsched (scc, rank, breakgraph, simplify, place,
// acyclic) builds on.
//
// What:
//
//   - Graph owns the lifetime of every Vertex and Edge created through it.
//   - Vertex keeps its incident edges in two ordinary doubly-linked lists
//     (container/list), one for incoming and one for outgoing, giving O(1)
//     link/unlink without an intrusive-list container.
//   - Edge carries a signed integer Weight (zero weight means "dead": every
//     algorithm skips it) and two independent booleans, Cutable and Cut.
//   - VertexMap[T] / EdgeMap[T] are default-on-read scratch maps keyed by
//     pointer identity, used by scc/rank/place to distinguish "unvisited"
//     (an absent key, read as zero) from "visited with a non-zero value".
//
// Why:
//
//   - Tarjan SCC coloring, longest-path ranking, and the acyclic-break
//     pipeline all need a graph that tolerates parallel edges and
//     self-loops, exposes stable insertion-order iteration, and lets a
//     per-edge Cutable flag be toggled without disturbing the rest of the
//     structure.
//
// Non-goals: this package is single-threaded (no locks), carries no
// generic attribute system beyond Weight/Cutable/Cut, and has no
// persistence or serialization format. See the module's Non-goals.
package graph
