// Package computad provides double computads: the generating data of
// a double category, prior to any composition structure.
//
// A double computad has four sorts of generators — vertices, tight
// edges between vertices, proedges between vertices, and square cells.
// A cell fills a square whose top is a path of proedges, whose bottom
// is a single proedge, and whose left and right sides are tight edges:
//
//	x0 --p1--> x1 ... --pn--> xn
//	|                          |
//	s                          t
//	v                          v
//	y0 ----------q-----------> y1
//
// HashDblComputad is the columnar concrete implementation: one finite
// set per sort plus boundary columns, built by an append-only sequence
// of Add calls and then used read-only. As with graph.HashGraph the
// builders record declared boundaries even when the referenced
// generators are absent; Validate reports every problem afterwards as
// a typed failure, one per violated instance. A cell's square is only
// checked for commutation once all four of its boundaries individually
// resolve, so one missing generator yields exactly one failure.
//
// Error model:
//
//	ErrEdgeNotFound    - boundary query against an unknown tight edge (panic).
//	ErrProedgeNotFound - boundary query against an unknown proedge (panic).
//	ErrCellNotFound    - boundary query against an unknown cell (panic).
package computad
