// Package graph provides directed multigraphs and the Path algebra —
// the one-dimensional substrate of every categorical structure in
// lvlcat.
//
// A Graph G = (V, E, src, tgt) is a vertex collection, an edge
// collection, and source/target lookups over edges. FinGraph adds
// enumeration and in/out incidence; HashGraph is the columnar concrete
// implementation (finite sets of generators plus indexed boundary
// columns, so incidence queries fall out of the preimage index).
//
// A Path is the universal datum for morphisms of a free category: a
// tagged choice between an identity path at a vertex and a non-empty
// ordered sequence of edges. The representation is a sum type with
// unexported fields — there is no way to build a path whose endpoints
// disagree with its edge sequence, because endpoints are never stored,
// always computed against a graph.
//
// Containment is checked, never assumed: ContainedIn verifies edge
// existence and pairwise endpoint agreement, while SrcIn/TgtIn treat a
// non-contained path as a programmer error and panic. Validation of a
// HashGraph or a PathEq reports every problem as a typed failure, one
// per violated instance, and never stops at the first.
//
// Error model:
//
//	ErrEmptyPath        - a sequence path needs at least one edge.
//	ErrPathNotContained - boundary query against a path outside its graph (panic).
//	ErrEdgeNotFound     - boundary query against an unknown edge (panic).
//	ErrUnknownPathTag   - JSON payload with a tag other than "Id"/"Seq".
package graph
