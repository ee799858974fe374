// Package simplify reduces a breakgraph.BreakGraph with a work-list
// driven pass of four structural rules plus two cut rules.
//
// Grounded on the origin source's simplify loop in graphalg.cpp. Two
// corrections are applied relative to the origin source, both flagged
// as unintended in the origin material:
//
//   - simplifyOne's degree test is `inDegree == 1 && outDegree == 1`.
//     The origin source tests `> 1 && > 1`, which can never be true for
//     a vertex that the caller believes is a simple bypass candidate and
//     would leave every degree-(1,1) vertex unreduced.
//   - simplifyOut's self-loop-among-inputs branch is surfaced through
//     the Reporter interface (a caller-supplied diagnostic hook) rather
//     than silently swallowed, matching the spirit of the origin
//     source's disabled diagnostic blocks.
package simplify
