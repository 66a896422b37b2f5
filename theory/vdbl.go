package theory

import (
	"fmt"

	"github.com/katalvlaran/lvlcat/graph"
	"github.com/katalvlaran/lvlcat/vdc"
)

// EqCell is a cell of a discrete double theory: an equality witness
// between a path of morphism types and a single morphism type. The
// theory has the cell exactly when the path composes to something
// congruent to the codomain.
type EqCell[V, E comparable] struct {
	Dom graph.Path[V, graph.Path[V, E]]
	Cod graph.Path[V, E]
}

// A discrete double theory is a virtual double category whose tight
// arrows are object identities and whose cells are equality witnesses.

// HasOb reports object membership; objects are the object types.
func (t *DiscreteDblTheory[V, E]) HasOb(x V) bool { return t.HasObType(x) }

// HasArr reports tight-arrow membership; the only tight arrows are
// object identities, carried as the objects themselves.
func (t *DiscreteDblTheory[V, E]) HasArr(f V) bool { return t.HasObType(f) }

// HasPro reports proarrow membership; proarrows are morphism types.
func (t *DiscreteDblTheory[V, E]) HasPro(p graph.Path[V, E]) bool { return t.HasMorType(p) }

// HasCell reports whether the witness holds: the domain path composes
// and its composite is congruent to the codomain.
func (t *DiscreteDblTheory[V, E]) HasCell(c EqCell[V, E]) bool {
	if !t.HasMorType(c.Cod) {
		return false
	}
	m, ok := t.ComposeTypes(c.Dom)
	return ok && t.MorTypesEqual(m, c.Cod)
}

// Dom of an identity tight arrow is its object.
func (t *DiscreteDblTheory[V, E]) Dom(f V) V { return f }

// Cod of an identity tight arrow is its object.
func (t *DiscreteDblTheory[V, E]) Cod(f V) V { return f }

// Src returns the proarrow's source object type.
func (t *DiscreteDblTheory[V, E]) Src(p graph.Path[V, E]) V { return t.SrcType(p) }

// Tgt returns the proarrow's target object type.
func (t *DiscreteDblTheory[V, E]) Tgt(p graph.Path[V, E]) V { return t.TgtType(p) }

// CellDom returns the witness's path of morphism types.
func (t *DiscreteDblTheory[V, E]) CellDom(c EqCell[V, E]) graph.Path[V, graph.Path[V, E]] {
	return c.Dom
}

// CellCod returns the witness's single morphism type.
func (t *DiscreteDblTheory[V, E]) CellCod(c EqCell[V, E]) graph.Path[V, E] { return c.Cod }

// CellSrc is the identity tight arrow at the codomain's source type.
func (t *DiscreteDblTheory[V, E]) CellSrc(c EqCell[V, E]) V { return t.SrcType(c.Cod) }

// CellTgt is the identity tight arrow at the codomain's target type.
func (t *DiscreteDblTheory[V, E]) CellTgt(c EqCell[V, E]) V { return t.TgtType(c.Cod) }

// ProEq decides proarrow equality modulo the congruence.
func (t *DiscreteDblTheory[V, E]) ProEq(p, q graph.Path[V, E]) bool {
	return t.MorTypesEqual(p, q)
}

// ComposeCells evaluates a pasting tree: the composite cell witnesses
// that the tree's leaf frontier composes to its own flattening. Panics
// with ErrFrontierNotComposable on a hand-assembled tree whose
// frontier does not compose; trees built through the vdc constructors
// never do.
func (t *DiscreteDblTheory[V, E]) ComposeCells(
	tree vdc.DblTree[V, V, graph.Path[V, E], EqCell[V, E]],
) EqCell[V, E] {
	dom := tree.LeafDom(t)
	m, ok := t.ComposeTypes(dom)
	if !ok {
		panic(fmt.Errorf("%w: ComposeCells", ErrFrontierNotComposable))
	}
	return EqCell[V, E]{Dom: dom, Cod: m}
}

// IdCell is the identity witness on a morphism type.
func (t *DiscreteDblTheory[V, E]) IdCell(p graph.Path[V, E]) EqCell[V, E] {
	return EqCell[V, E]{Dom: graph.Single[V](p), Cod: p}
}

// Composite returns the composite morphism type of a path of morphism
// types; a discrete theory has every composite its presentation can
// form, so this is ComposeTypes.
func (t *DiscreteDblTheory[V, E]) Composite(
	path graph.Path[V, graph.Path[V, E]],
) (graph.Path[V, E], bool) {
	return t.ComposeTypes(path)
}

// Unit returns the hom type on a declared object type.
func (t *DiscreteDblTheory[V, E]) Unit(x V) (graph.Path[V, E], bool) {
	if !t.HasObType(x) {
		return graph.Path[V, E]{}, false
	}
	return graph.Id[V, E](x), true
}
