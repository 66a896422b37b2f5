package computad

import "github.com/katalvlaran/lvlcat/graph"

// DblComputad is read-only access to the four generator sorts of a
// double computad and their boundaries. Vertices are the objects;
// tight edges and proedges both run between vertices; cells fill
// squares whose domain is a path of proedges.
//
// Boundary accessors follow the kernel's panic contract: querying a
// generator the computad does not contain is a programmer error.
type DblComputad[V comparable, E, P, C any] interface {
	HasVertex(v V) bool
	HasEdge(e E) bool
	HasProedge(p P) bool
	HasCell(c C) bool

	// Dom and Cod are the endpoints of a tight edge.
	Dom(e E) V
	Cod(e E) V

	// Src and Tgt are the endpoints of a proedge.
	Src(p P) V
	Tgt(p P) V

	// CellDom is the top of a cell's square: a path of proedges.
	CellDom(c C) graph.Path[V, P]
	// CellCod is the bottom of the square: a single proedge.
	CellCod(c C) P
	// CellSrc is the left side of the square: a tight edge.
	CellSrc(c C) E
	// CellTgt is the right side of the square: a tight edge.
	CellTgt(c C) E
}
