package vdc

import "github.com/katalvlaran/lvlcat/graph"

// VDblCategory is a virtual double category: objects, tight arrows,
// proarrows and cells, with pasting-tree composition of cells as the
// sole composition primitive. Proarrow composites and units exist only
// where the structure provides them, so Composite and Unit are
// partial.
//
// ProEq decides proarrow equality; implementations whose proarrow type
// is not comparable (paths, say) supply their own notion, the way a
// Category supplies MorEq.
type VDblCategory[Ob comparable, Arr, Pro, Cell any] interface {
	HasOb(x Ob) bool
	HasArr(f Arr) bool
	HasPro(p Pro) bool
	HasCell(c Cell) bool

	// Dom and Cod are the endpoints of a tight arrow.
	Dom(f Arr) Ob
	Cod(f Arr) Ob

	// Src and Tgt are the endpoints of a proarrow.
	Src(p Pro) Ob
	Tgt(p Pro) Ob

	// CellDom is a path of proarrows; CellCod a single proarrow;
	// CellSrc and CellTgt the tight sides of the cell's square.
	CellDom(c Cell) graph.Path[Ob, Pro]
	CellCod(c Cell) Pro
	CellSrc(c Cell) Arr
	CellTgt(c Cell) Arr

	// ProEq decides equality of proarrows.
	ProEq(p, q Pro) bool

	// ComposeCells evaluates a pasting tree to a single cell, from the
	// tree's leaf domain to its root codomain.
	ComposeCells(t DblTree[Ob, Arr, Pro, Cell]) Cell

	// IdCell is the identity cell on a proarrow.
	IdCell(p Pro) Cell

	// Composite returns the composite proarrow of a path, when the
	// structure has one.
	Composite(path graph.Path[Ob, Pro]) (Pro, bool)

	// Unit returns the unit proarrow on an object, when the structure
	// has one. Equivalent to Composite of the identity path.
	Unit(x Ob) (Pro, bool)
}
