// Package rank computes longest-path rank levels over a graph.Graph and
// reports the loop traces discovered along the way.
//
// Rank is grounded on the origin source's rank::vertexIterate (see
// original_source/graphalg.cpp): a recursive longest-path pass guarded by
// a rank-monotonicity check (rank[v] >= currentRank means v is already
// settled at an equal-or-better level, so re-expansion is skipped). A
// vertex caught mid-recursion (visited == 1) marks a back edge; its
// witnessing cycle is captured by ReportLoops rather than recomputed
// inline, matching the origin source's split between rank and
// reportLoops.
package rank
