package computad

import (
	"fmt"

	"github.com/katalvlaran/lvlcat/graph"
	"github.com/katalvlaran/lvlcat/set"
)

// HashDblComputad is the columnar concrete DblComputad: four finite
// generator sets plus boundary columns. The vertex-valued and
// generator-valued boundaries use indexed columns, so incidence
// queries (OutEdges, CellsInto, …) are preimage lookups; the
// path-valued cell domain is a plain forward table.
//
// Built by an append-only sequence of Add calls, then used read-only.
// Add records declared boundaries even when the referenced generators
// are absent; Validate reports every problem afterwards.
type HashDblComputad[V, E, P, C comparable] struct {
	vertices *set.HashFinSet[V]
	edges    *set.HashFinSet[E]
	proedges *set.HashFinSet[P]
	cells    *set.HashFinSet[C]

	domMap *set.IndexedColumn[E, V]
	codMap *set.IndexedColumn[E, V]
	srcMap *set.IndexedColumn[P, V]
	tgtMap *set.IndexedColumn[P, V]

	cellDomMap *set.HashMapping[C, graph.Path[V, P]]
	cellCodMap *set.IndexedColumn[C, P]
	cellSrcMap *set.IndexedColumn[C, E]
	cellTgtMap *set.IndexedColumn[C, E]
}

// NewHashDblComputad builds an empty double computad.
// Complexity: O(1)
func NewHashDblComputad[V, E, P, C comparable]() *HashDblComputad[V, E, P, C] {
	return &HashDblComputad[V, E, P, C]{
		vertices:   set.NewHashFinSet[V](),
		edges:      set.NewHashFinSet[E](),
		proedges:   set.NewHashFinSet[P](),
		cells:      set.NewHashFinSet[C](),
		domMap:     set.NewIndexedColumn[E, V](),
		codMap:     set.NewIndexedColumn[E, V](),
		srcMap:     set.NewIndexedColumn[P, V](),
		tgtMap:     set.NewIndexedColumn[P, V](),
		cellDomMap: set.NewHashMapping[C, graph.Path[V, P]](),
		cellCodMap: set.NewIndexedColumn[C, P](),
		cellSrcMap: set.NewIndexedColumn[C, E](),
		cellTgtMap: set.NewIndexedColumn[C, E](),
	}
}

// AddVertex records a vertex; false when already present.
// Complexity: O(1)
func (d *HashDblComputad[V, E, P, C]) AddVertex(v V) bool { return d.vertices.Add(v) }

// AddEdge records a tight edge with its declared endpoints; false when
// the edge is already present, in which case the boundaries are left
// untouched.
// Complexity: O(1)
func (d *HashDblComputad[V, E, P, C]) AddEdge(e E, dom, cod V) bool {
	if !d.edges.Add(e) {
		return false
	}
	d.domMap.Set(e, dom)
	d.codMap.Set(e, cod)
	return true
}

// AddProedge records a proedge with its declared endpoints; false when
// already present.
// Complexity: O(1)
func (d *HashDblComputad[V, E, P, C]) AddProedge(p P, src, tgt V) bool {
	if !d.proedges.Add(p) {
		return false
	}
	d.srcMap.Set(p, src)
	d.tgtMap.Set(p, tgt)
	return true
}

// AddCell records a square cell with its declared boundaries: a path
// of proedges on top, a proedge on the bottom, tight edges on the
// sides. False when already present.
// Complexity: O(1)
func (d *HashDblComputad[V, E, P, C]) AddCell(c C, dom graph.Path[V, P], cod P, src, tgt E) bool {
	if !d.cells.Add(c) {
		return false
	}
	d.cellDomMap.Set(c, dom)
	d.cellCodMap.Set(c, cod)
	d.cellSrcMap.Set(c, src)
	d.cellTgtMap.Set(c, tgt)
	return true
}

// HasVertex reports vertex membership.
func (d *HashDblComputad[V, E, P, C]) HasVertex(v V) bool { return d.vertices.Contains(v) }

// HasEdge reports tight-edge membership.
func (d *HashDblComputad[V, E, P, C]) HasEdge(e E) bool { return d.edges.Contains(e) }

// HasProedge reports proedge membership.
func (d *HashDblComputad[V, E, P, C]) HasProedge(p P) bool { return d.proedges.Contains(p) }

// HasCell reports cell membership.
func (d *HashDblComputad[V, E, P, C]) HasCell(c C) bool { return d.cells.Contains(c) }

// Vertices enumerates the vertices in insertion order.
func (d *HashDblComputad[V, E, P, C]) Vertices() []V { return d.vertices.Elems() }

// Edges enumerates the tight edges in insertion order.
func (d *HashDblComputad[V, E, P, C]) Edges() []E { return d.edges.Elems() }

// Proedges enumerates the proedges in insertion order.
func (d *HashDblComputad[V, E, P, C]) Proedges() []P { return d.proedges.Elems() }

// Cells enumerates the cells in insertion order.
func (d *HashDblComputad[V, E, P, C]) Cells() []C { return d.cells.Elems() }

// Dom returns the domain vertex of a tight edge; panics on an unknown
// edge.
// Complexity: O(1)
func (d *HashDblComputad[V, E, P, C]) Dom(e E) V {
	v, ok := d.domMap.Apply(e)
	if !ok {
		panic(fmt.Errorf("%w: Dom(%v)", ErrEdgeNotFound, e))
	}
	return v
}

// Cod returns the codomain vertex of a tight edge; panics on an
// unknown edge.
// Complexity: O(1)
func (d *HashDblComputad[V, E, P, C]) Cod(e E) V {
	v, ok := d.codMap.Apply(e)
	if !ok {
		panic(fmt.Errorf("%w: Cod(%v)", ErrEdgeNotFound, e))
	}
	return v
}

// Src returns the source vertex of a proedge; panics on an unknown
// proedge.
// Complexity: O(1)
func (d *HashDblComputad[V, E, P, C]) Src(p P) V {
	v, ok := d.srcMap.Apply(p)
	if !ok {
		panic(fmt.Errorf("%w: Src(%v)", ErrProedgeNotFound, p))
	}
	return v
}

// Tgt returns the target vertex of a proedge; panics on an unknown
// proedge.
// Complexity: O(1)
func (d *HashDblComputad[V, E, P, C]) Tgt(p P) V {
	v, ok := d.tgtMap.Apply(p)
	if !ok {
		panic(fmt.Errorf("%w: Tgt(%v)", ErrProedgeNotFound, p))
	}
	return v
}

// CellDom returns the top boundary of a cell; panics on an unknown
// cell.
// Complexity: O(1)
func (d *HashDblComputad[V, E, P, C]) CellDom(c C) graph.Path[V, P] {
	p, ok := d.cellDomMap.Apply(c)
	if !ok {
		panic(fmt.Errorf("%w: CellDom(%v)", ErrCellNotFound, c))
	}
	return p
}

// CellCod returns the bottom boundary of a cell; panics on an unknown
// cell.
// Complexity: O(1)
func (d *HashDblComputad[V, E, P, C]) CellCod(c C) P {
	p, ok := d.cellCodMap.Apply(c)
	if !ok {
		panic(fmt.Errorf("%w: CellCod(%v)", ErrCellNotFound, c))
	}
	return p
}

// CellSrc returns the left boundary of a cell; panics on an unknown
// cell.
// Complexity: O(1)
func (d *HashDblComputad[V, E, P, C]) CellSrc(c C) E {
	e, ok := d.cellSrcMap.Apply(c)
	if !ok {
		panic(fmt.Errorf("%w: CellSrc(%v)", ErrCellNotFound, c))
	}
	return e
}

// CellTgt returns the right boundary of a cell; panics on an unknown
// cell.
// Complexity: O(1)
func (d *HashDblComputad[V, E, P, C]) CellTgt(c C) E {
	e, ok := d.cellTgtMap.Apply(c)
	if !ok {
		panic(fmt.Errorf("%w: CellTgt(%v)", ErrCellNotFound, c))
	}
	return e
}

// OutEdges returns the tight edges with domain v.
// Complexity: O(deg⁺(v))
func (d *HashDblComputad[V, E, P, C]) OutEdges(v V) []E { return d.domMap.Preimage(v) }

// InEdges returns the tight edges with codomain v.
// Complexity: O(deg⁻(v))
func (d *HashDblComputad[V, E, P, C]) InEdges(v V) []E { return d.codMap.Preimage(v) }

// OutProedges returns the proedges with source v.
// Complexity: O(hits)
func (d *HashDblComputad[V, E, P, C]) OutProedges(v V) []P { return d.srcMap.Preimage(v) }

// InProedges returns the proedges with target v.
// Complexity: O(hits)
func (d *HashDblComputad[V, E, P, C]) InProedges(v V) []P { return d.tgtMap.Preimage(v) }

// CellsInto returns the cells whose codomain is the proedge p.
// Complexity: O(hits)
func (d *HashDblComputad[V, E, P, C]) CellsInto(p P) []C { return d.cellCodMap.Preimage(p) }

// ProGraph is the proedge skeleton: vertices with the proedges as
// edges, the graph that cell domain paths live in.
func (d *HashDblComputad[V, E, P, C]) ProGraph() graph.Graph[V, P] {
	return proGraph[V, E, P, C]{d}
}

// EdgeGraph is the tight skeleton: vertices with the tight edges.
func (d *HashDblComputad[V, E, P, C]) EdgeGraph() graph.Graph[V, E] {
	return edgeGraph[V, E, P, C]{d}
}

// proGraph adapts the proedge columns to the graph.Graph interface so
// cell domain paths can reuse path containment and boundary queries.
type proGraph[V, E, P, C comparable] struct {
	d *HashDblComputad[V, E, P, C]
}

func (g proGraph[V, E, P, C]) HasVertex(v V) bool { return g.d.HasVertex(v) }
func (g proGraph[V, E, P, C]) HasEdge(p P) bool   { return g.d.HasProedge(p) }
func (g proGraph[V, E, P, C]) Src(p P) V          { return g.d.Src(p) }
func (g proGraph[V, E, P, C]) Tgt(p P) V          { return g.d.Tgt(p) }

type edgeGraph[V, E, P, C comparable] struct {
	d *HashDblComputad[V, E, P, C]
}

func (g edgeGraph[V, E, P, C]) HasVertex(v V) bool { return g.d.HasVertex(v) }
func (g edgeGraph[V, E, P, C]) HasEdge(e E) bool   { return g.d.HasEdge(e) }
func (g edgeGraph[V, E, P, C]) Src(e E) V          { return g.d.Dom(e) }
func (g edgeGraph[V, E, P, C]) Tgt(e E) V          { return g.d.Cod(e) }
