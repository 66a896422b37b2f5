package graph

import (
	"fmt"

	"github.com/katalvlaran/lvlcat/set"
)

// HashGraph is the columnar concrete FinGraph: a finite set of
// vertices, a finite set of edges, and two indexed boundary columns.
// Incidence queries (OutEdges, InEdges) are preimage lookups on the
// boundary columns.
//
// A HashGraph is built by an append-only sequence of AddVertex /
// AddEdge calls and then used read-only. AddEdge records the declared
// endpoints even when the endpoint vertices are absent: boundary
// well-formedness is checked by Validate, never enforced by the
// representation, so a caller can stage generators in any order and
// get an exhaustive diagnostic afterwards.
type HashGraph[V, E comparable] struct {
	vertices *set.HashFinSet[V]
	edges    *set.HashFinSet[E]
	srcMap   *set.IndexedColumn[E, V]
	tgtMap   *set.IndexedColumn[E, V]
}

// NewHashGraph builds an empty graph.
// Complexity: O(1)
func NewHashGraph[V, E comparable]() *HashGraph[V, E] {
	return &HashGraph[V, E]{
		vertices: set.NewHashFinSet[V](),
		edges:    set.NewHashFinSet[E](),
		srcMap:   set.NewIndexedColumn[E, V](),
		tgtMap:   set.NewIndexedColumn[E, V](),
	}
}

// AddVertex inserts v, reporting whether it was new.
// Complexity: O(1) amortized
func (g *HashGraph[V, E]) AddVertex(v V) bool { return g.vertices.Add(v) }

// AddEdge inserts e with the given endpoints, reporting whether the
// edge was new. Endpoints are recorded unconditionally; run Validate
// to check them against the vertex set.
// Complexity: O(1) amortized
func (g *HashGraph[V, E]) AddEdge(e E, src, tgt V) bool {
	fresh := g.edges.Add(e)
	g.srcMap.Set(e, src)
	g.tgtMap.Set(e, tgt)
	return fresh
}

// HasVertex reports whether v is a vertex.
// Complexity: O(1)
func (g *HashGraph[V, E]) HasVertex(v V) bool { return g.vertices.Contains(v) }

// HasEdge reports whether e is an edge.
// Complexity: O(1)
func (g *HashGraph[V, E]) HasEdge(e E) bool { return g.edges.Contains(e) }

// Src returns the source vertex of e.
// Panics with ErrEdgeNotFound if e is not an edge of the graph.
// Complexity: O(1)
func (g *HashGraph[V, E]) Src(e E) V {
	v, ok := g.srcMap.Apply(e)
	if !ok || !g.edges.Contains(e) {
		panic(fmt.Errorf("%w: Src(%v)", ErrEdgeNotFound, e))
	}
	return v
}

// Tgt returns the target vertex of e.
// Panics with ErrEdgeNotFound if e is not an edge of the graph.
// Complexity: O(1)
func (g *HashGraph[V, E]) Tgt(e E) V {
	v, ok := g.tgtMap.Apply(e)
	if !ok || !g.edges.Contains(e) {
		panic(fmt.Errorf("%w: Tgt(%v)", ErrEdgeNotFound, e))
	}
	return v
}

// Vertices returns all vertices in insertion order.
// Complexity: O(V)
func (g *HashGraph[V, E]) Vertices() []V { return g.vertices.Elems() }

// Edges returns all edges in insertion order.
// Complexity: O(E)
func (g *HashGraph[V, E]) Edges() []E { return g.edges.Elems() }

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *HashGraph[V, E]) VertexCount() int { return g.vertices.Len() }

// EdgeCount returns the number of edges.
// Complexity: O(1)
func (g *HashGraph[V, E]) EdgeCount() int { return g.edges.Len() }

// OutEdges returns the edges with source v.
// Complexity: O(deg⁺(v))
func (g *HashGraph[V, E]) OutEdges(v V) []E { return g.srcMap.Preimage(v) }

// InEdges returns the edges with target v.
// Complexity: O(deg⁻(v))
func (g *HashGraph[V, E]) InEdges(v V) []E { return g.tgtMap.Preimage(v) }

// GraphFailureKind discriminates graph well-formedness failures.
type GraphFailureKind int

const (
	// MissingSrc marks an edge whose source vertex is absent.
	MissingSrc GraphFailureKind = iota
	// MissingTgt marks an edge whose target vertex is absent.
	MissingTgt
)

// String names the failure kind for diagnostics.
func (k GraphFailureKind) String() string {
	switch k {
	case MissingSrc:
		return "MissingSrc"
	case MissingTgt:
		return "MissingTgt"
	default:
		return fmt.Sprintf("GraphFailureKind(%d)", int(k))
	}
}

// InvalidGraph reports one well-formedness failure, naming the edge.
type InvalidGraph[E comparable] struct {
	Kind GraphFailureKind
	Edge E
}

// String renders the failure for diagnostics.
func (f InvalidGraph[E]) String() string {
	return fmt.Sprintf("%s(%v)", f.Kind, f.Edge)
}

// Validate reports every edge whose declared endpoints are missing
// from the vertex set, one failure per missing endpoint.
// Validation is pure and idempotent: it never mutates the graph, so
// repeated calls yield the same result.
// Complexity: O(E)
func (g *HashGraph[V, E]) Validate() []InvalidGraph[E] {
	var out []InvalidGraph[E]
	for _, e := range g.edges.Elems() {
		out = append(out, g.validateEdge(e)...)
	}
	return out
}

// IsValid reports whether the graph has no well-formedness failures,
// stopping at the first one found.
// Complexity: O(E) worst case
func (g *HashGraph[V, E]) IsValid() bool {
	for _, e := range g.edges.Elems() {
		if len(g.validateEdge(e)) > 0 {
			return false
		}
	}
	return true
}

func (g *HashGraph[V, E]) validateEdge(e E) []InvalidGraph[E] {
	var out []InvalidGraph[E]
	if v, ok := g.srcMap.Apply(e); !ok || !g.vertices.Contains(v) {
		out = append(out, InvalidGraph[E]{Kind: MissingSrc, Edge: e})
	}
	if v, ok := g.tgtMap.Apply(e); !ok || !g.vertices.Contains(v) {
		out = append(out, InvalidGraph[E]{Kind: MissingTgt, Edge: e})
	}
	return out
}
