package graph

// Graph is a directed multigraph: vertex identifiers V with membership
// and edge values E with source/target lookups. A Graph is not
// required to be finite, and E is unconstrained so that derived graphs
// (for instance a category's underlying graph, whose edges are
// morphisms) fit the same capability.
//
// Invariant: Src and Tgt are defined for every edge that belongs to
// the graph. Querying the boundary of a foreign edge is a programmer
// error and panics with ErrEdgeNotFound.
type Graph[V comparable, E any] interface {
	// HasVertex reports whether v is a vertex of the graph.
	HasVertex(v V) bool

	// HasEdge reports whether e is an edge of the graph.
	HasEdge(e E) bool

	// Src returns the source vertex of e. Panics if e is not an edge.
	Src(e E) V

	// Tgt returns the target vertex of e. Panics if e is not an edge.
	Tgt(e E) V
}

// FinGraph is a Graph whose vertices and edges can be enumerated, with
// in/out incidence queries. Enumeration replays insertion order.
type FinGraph[V comparable, E any] interface {
	Graph[V, E]

	// Vertices returns all vertices in insertion order.
	Vertices() []V

	// Edges returns all edges in insertion order.
	Edges() []E

	// VertexCount returns the number of vertices.
	VertexCount() int

	// EdgeCount returns the number of edges.
	EdgeCount() int

	// OutEdges returns the edges with source v, in insertion order.
	OutEdges(v V) []E

	// InEdges returns the edges with target v, in insertion order.
	InEdges(v V) []E
}
