// Package place assigns a total, loop-free rank to a breakgraph.BreakGraph
// by greedily pinning cutable edges as mandatory, in descending-weight
// order, and cutting any pin that would close a cycle.
//
// Grounded on the origin source's place/placeTryEdge/placeIterate in
// graphalg.cpp. Each trial re-ranks downstream of the pinned edge's
// destination starting at `rank[e.from] + 1`, read from the committed
// rank map that Place was given and keeps up to date; a trial that
// reaches e.from again along mandatory edges has closed a cycle.
package place
