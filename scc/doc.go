// Package scc assigns each vertex of a graph.Graph a strongly-connected-
// component id using Tarjan's algorithm.
//
// Strongly is a faithful port of the origin source's scc::vertexIterate
// (see original_source/graphalg.cpp), grounded in spirit on
// gonum.org/v1/gonum/graph/topo.TarjanSCC — both walk the call stack
// tracking a DFS index and a low-link value per vertex and pop a shared
// trace stack to emit each component's root.
//
// Component id 0 is reserved: it means "not in a non-trivial SCC". Any
// vertex whose followed outgoing edges never reach a same-colored vertex
// (a self-loop counts) is collapsed to 0 after the main pass, matching the origin
// source's singleton-collapse post-pass. Component ids beyond that are
// opaque — only equality across vertices is meaningful.
//
// Complexity: O(V + E).
package scc
