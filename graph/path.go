package graph

import (
	"fmt"
	"slices"
)

// Path is a path in a graph with vertices V and edges E: either an
// identity (empty) path at a vertex, or a non-empty ordered sequence
// of edges. It is a sum type — the two cases are distinguished by
// construction, the fields are unexported, and there is no way to
// represent an endpoint that disagrees with the edge sequence because
// endpoints are always computed against a graph, never stored.
//
// E is unconstrained so that edges can themselves be morphisms —
// composition in a category consumes a Path whose edges are
// already-composed morphisms, including other paths.
//
// The zero value is the identity path at the zero vertex.
type Path[V comparable, E any] struct {
	vertex V   // payload of the identity case; meaningful only when len(edges) == 0
	edges  []E // payload of the sequence case; non-empty in that case
}

// Id builds the identity path at v.
// Complexity: O(1)
func Id[V comparable, E any](v V) Path[V, E] {
	return Path[V, E]{vertex: v}
}

// Single builds the path consisting of the single edge e.
// Complexity: O(1)
func Single[V comparable, E any](e E) Path[V, E] {
	return Path[V, E]{edges: []E{e}}
}

// Pair builds the two-edge path e1 then e2.
// Complexity: O(1)
func Pair[V comparable, E any](e1, e2 E) Path[V, E] {
	return Path[V, E]{edges: []E{e1, e2}}
}

// FromEdges builds a sequence path from the given edges. It fails with
// ErrEmptyPath only when the slice is empty — an empty sequence is
// never a valid substitute for an identity path, which needs a vertex.
// The slice is copied.
// Complexity: O(n)
func FromEdges[V comparable, E any](edges []E) (Path[V, E], error) {
	if len(edges) == 0 {
		return Path[V, E]{}, ErrEmptyPath
	}
	return Path[V, E]{edges: slices.Clone(edges)}, nil
}

// IsId reports whether p is an identity path.
// Complexity: O(1)
func (p Path[V, E]) IsId() bool { return len(p.edges) == 0 }

// Len returns the number of edges: zero exactly in the identity case.
// Complexity: O(1)
func (p Path[V, E]) Len() int { return len(p.edges) }

// Vertex returns the vertex of an identity path, or (zero, false) for
// a sequence path.
// Complexity: O(1)
func (p Path[V, E]) Vertex() (V, bool) {
	if !p.IsId() {
		var zero V
		return zero, false
	}
	return p.vertex, true
}

// OnlyEdge returns the unique edge of a length-1 path, or
// (zero, false) otherwise.
// Complexity: O(1)
func (p Path[V, E]) OnlyEdge() (E, bool) {
	if len(p.edges) != 1 {
		var zero E
		return zero, false
	}
	return p.edges[0], true
}

// Edges returns a copy of the edge sequence; nil for an identity path.
// Complexity: O(n)
func (p Path[V, E]) Edges() []E {
	if p.IsId() {
		return nil
	}
	return slices.Clone(p.edges)
}

// EqualFunc reports structural equality using eq to compare edges:
// identity paths at the same vertex, or pointwise-equal sequences.
// Complexity: O(n)
func (p Path[V, E]) EqualFunc(q Path[V, E], eq func(E, E) bool) bool {
	if p.IsId() != q.IsId() {
		return false
	}
	if p.IsId() {
		return p.vertex == q.vertex
	}
	return slices.EqualFunc(p.edges, q.edges, eq)
}

// EqualPaths reports structural equality of paths over comparable
// edges.
// Complexity: O(n)
func EqualPaths[V, E comparable](p, q Path[V, E]) bool {
	return p.EqualFunc(q, func(a, b E) bool { return a == b })
}

// ContainedIn reports whether p is a path in g: an identity path needs
// its vertex, a sequence path needs every edge to exist and each
// consecutive pair to agree on endpoints (tgt of one = src of next).
// Complexity: O(n)
func (p Path[V, E]) ContainedIn(g Graph[V, E]) bool {
	if p.IsId() {
		return g.HasVertex(p.vertex)
	}
	for _, e := range p.edges {
		if !g.HasEdge(e) {
			return false
		}
	}
	for i := 0; i+1 < len(p.edges); i++ {
		if g.Tgt(p.edges[i]) != g.Src(p.edges[i+1]) {
			return false
		}
	}
	return true
}

// SrcIn returns the source vertex of p in g.
// Precondition: p is contained in g; violating it is a caller error
// and panics with ErrPathNotContained.
// Complexity: O(n) (containment is re-checked to fail loudly)
func (p Path[V, E]) SrcIn(g Graph[V, E]) V {
	p.mustBeContained(g, "SrcIn")
	if p.IsId() {
		return p.vertex
	}
	return g.Src(p.edges[0])
}

// TgtIn returns the target vertex of p in g.
// Precondition: p is contained in g; violating it panics.
// Complexity: O(n)
func (p Path[V, E]) TgtIn(g Graph[V, E]) V {
	p.mustBeContained(g, "TgtIn")
	if p.IsId() {
		return p.vertex
	}
	return g.Tgt(p.edges[len(p.edges)-1])
}

func (p Path[V, E]) mustBeContained(g Graph[V, E], op string) {
	if !p.ContainedIn(g) {
		panic(fmt.Errorf("%w: %s", ErrPathNotContained, op))
	}
}

// MapPath relabels a path through total vertex and edge functions.
// Complexity: O(n)
func MapPath[V, V2 comparable, E, E2 any](p Path[V, E], fv func(V) V2, fe func(E) E2) Path[V2, E2] {
	if p.IsId() {
		return Id[V2, E2](fv(p.vertex))
	}
	edges := make([]E2, len(p.edges))
	for i, e := range p.edges {
		edges[i] = fe(e)
	}
	return Path[V2, E2]{edges: edges}
}

// PartialMapPath relabels a path through partial functions,
// short-circuiting on the first undefined case.
// Complexity: O(n)
func PartialMapPath[V, V2 comparable, E, E2 any](
	p Path[V, E],
	fv func(V) (V2, bool),
	fe func(E) (E2, bool),
) (Path[V2, E2], bool) {
	if p.IsId() {
		v, ok := fv(p.vertex)
		if !ok {
			return Path[V2, E2]{}, false
		}
		return Id[V2, E2](v), true
	}
	edges := make([]E2, len(p.edges))
	for i, e := range p.edges {
		e2, ok := fe(e)
		if !ok {
			return Path[V2, E2]{}, false
		}
		edges[i] = e2
	}
	return Path[V2, E2]{edges: edges}, true
}

// TryMapPath relabels a path through fallible functions,
// short-circuiting on the first error.
// Complexity: O(n)
func TryMapPath[V, V2 comparable, E, E2 any](
	p Path[V, E],
	fv func(V) (V2, error),
	fe func(E) (E2, error),
) (Path[V2, E2], error) {
	if p.IsId() {
		v, err := fv(p.vertex)
		if err != nil {
			return Path[V2, E2]{}, err
		}
		return Id[V2, E2](v), nil
	}
	edges := make([]E2, len(p.edges))
	for i, e := range p.edges {
		e2, err := fe(e)
		if err != nil {
			return Path[V2, E2]{}, err
		}
		edges[i] = e2
	}
	return Path[V2, E2]{edges: edges}, nil
}

// Flatten concatenates a path whose edges are themselves paths into a
// single path. This is the composition carrier of a free category: a
// path of already-composed morphisms flattens to their composite.
// A path of identity paths flattens to the identity at their common
// vertex.
// Complexity: O(total edges)
func Flatten[V comparable, E any](p Path[V, Path[V, E]]) Path[V, E] {
	if v, ok := p.Vertex(); ok {
		return Id[V, E](v)
	}
	var edges []E
	for _, q := range p.edges {
		edges = append(edges, q.edges...)
	}
	if len(edges) == 0 {
		// Every inner path is an identity; they share a vertex.
		v, _ := p.edges[0].Vertex()
		return Id[V, E](v)
	}
	return Path[V, E]{edges: edges}
}
