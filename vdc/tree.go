package vdc

import (
	"fmt"

	"github.com/katalvlaran/lvlcat/graph"
)

// DblTree is a pasting tree: the shape of one ComposeCells call. A
// node is either an identity leaf on a proarrow or a cell with one
// child slot per proarrow of its domain path; a cell built by Single
// has no children and its own domain as frontier.
//
// Trees are immutable values. Single, IdLeaf and Graft check their
// arguments against the hosting structure, so a built tree is always
// well-formed over it.
type DblTree[Ob comparable, Arr, Pro, Cell any] struct {
	leaf bool
	pro  Pro
	cell Cell
	kids []DblTree[Ob, Arr, Pro, Cell]
}

// Single is the one-node tree on a cell; composing it yields the cell
// itself. Panics with ErrUnknownCell when the structure lacks c.
// Complexity: O(1)
func Single[Ob comparable, Arr, Pro, Cell any](
	v VDblCategory[Ob, Arr, Pro, Cell], c Cell,
) DblTree[Ob, Arr, Pro, Cell] {
	if !v.HasCell(c) {
		panic(fmt.Errorf("%w: Single(%v)", ErrUnknownCell, c))
	}
	return DblTree[Ob, Arr, Pro, Cell]{cell: c}
}

// IdLeaf is the identity tree on a proarrow: it passes p through a
// pasting untouched. Panics with ErrUnknownProarrow when the structure
// lacks p.
// Complexity: O(1)
func IdLeaf[Ob comparable, Arr, Pro, Cell any](
	v VDblCategory[Ob, Arr, Pro, Cell], p Pro,
) DblTree[Ob, Arr, Pro, Cell] {
	if !v.HasPro(p) {
		panic(fmt.Errorf("%w: IdLeaf(%v)", ErrUnknownProarrow, p))
	}
	return DblTree[Ob, Arr, Pro, Cell]{leaf: true, pro: p}
}

// Graft roots the subtrees under a cell, one per proarrow of the
// cell's domain path in order. Panics with ErrUnknownCell on an
// unknown root cell, ErrGraftArity when the subtree count differs from
// the domain arity, and ErrGraftBoundary when a subtree's codomain is
// not the proarrow of its slot.
// Complexity: O(subtrees)
func Graft[Ob comparable, Arr, Pro, Cell any](
	v VDblCategory[Ob, Arr, Pro, Cell], c Cell,
	subtrees ...DblTree[Ob, Arr, Pro, Cell],
) DblTree[Ob, Arr, Pro, Cell] {
	if !v.HasCell(c) {
		panic(fmt.Errorf("%w: Graft(%v)", ErrUnknownCell, c))
	}
	slots := v.CellDom(c).Edges()
	if len(subtrees) != len(slots) {
		panic(fmt.Errorf("%w: cell %v has arity %d, got %d subtrees",
			ErrGraftArity, c, len(slots), len(subtrees)))
	}
	for i, sub := range subtrees {
		if !v.ProEq(sub.Cod(v), slots[i]) {
			panic(fmt.Errorf("%w: slot %d wants %v, subtree has codomain %v",
				ErrGraftBoundary, i, slots[i], sub.Cod(v)))
		}
	}
	kids := make([]DblTree[Ob, Arr, Pro, Cell], len(subtrees))
	copy(kids, subtrees)
	return DblTree[Ob, Arr, Pro, Cell]{cell: c, kids: kids}
}

// IsId reports whether the tree is a single identity leaf.
func (t DblTree[Ob, Arr, Pro, Cell]) IsId() bool { return t.leaf }

// Size counts the cell nodes; identity leaves do not count.
// Complexity: O(nodes)
func (t DblTree[Ob, Arr, Pro, Cell]) Size() int {
	if t.leaf {
		return 0
	}
	n := 1
	for _, k := range t.kids {
		n += k.Size()
	}
	return n
}

// Leaves collects the frontier cells left to right; identity leaves
// are excluded. A cell node without children is its own frontier.
// Complexity: O(nodes)
func (t DblTree[Ob, Arr, Pro, Cell]) Leaves() []Cell {
	var out []Cell
	t.appendLeaves(&out)
	return out
}

func (t DblTree[Ob, Arr, Pro, Cell]) appendLeaves(out *[]Cell) {
	if t.leaf {
		return
	}
	if len(t.kids) == 0 {
		*out = append(*out, t.cell)
		return
	}
	for _, k := range t.kids {
		k.appendLeaves(out)
	}
}

// LeafDom is the concatenated domain path across the frontier: an
// identity leaf contributes its proarrow, a childless cell its own
// domain path, a grafted node its children's frontiers in order.
// Complexity: O(frontier)
func (t DblTree[Ob, Arr, Pro, Cell]) LeafDom(
	v VDblCategory[Ob, Arr, Pro, Cell],
) graph.Path[Ob, Pro] {
	edges := t.leafEdges(v)
	if len(edges) == 0 {
		return graph.Id[Ob, Pro](t.leafSrc(v))
	}
	p, err := graph.FromEdges[Ob](edges)
	if err != nil {
		panic(err) // unreachable: edges is non-empty
	}
	return p
}

func (t DblTree[Ob, Arr, Pro, Cell]) leafEdges(
	v VDblCategory[Ob, Arr, Pro, Cell],
) []Pro {
	if t.leaf {
		return []Pro{t.pro}
	}
	if len(t.kids) == 0 {
		return v.CellDom(t.cell).Edges()
	}
	var out []Pro
	for _, k := range t.kids {
		out = append(out, k.leafEdges(v)...)
	}
	return out
}

// leafSrc is the source object of the leaf domain; needed separately
// when every frontier segment is an identity path.
func (t DblTree[Ob, Arr, Pro, Cell]) leafSrc(
	v VDblCategory[Ob, Arr, Pro, Cell],
) Ob {
	if t.leaf {
		return v.Src(t.pro)
	}
	if len(t.kids) == 0 {
		return pathSrc(v, v.CellDom(t.cell))
	}
	return t.kids[0].leafSrc(v)
}

// pathSrc is the source object of a proarrow path.
func pathSrc[Ob comparable, Arr, Pro, Cell any](
	v VDblCategory[Ob, Arr, Pro, Cell], p graph.Path[Ob, Pro],
) Ob {
	if x, ok := p.Vertex(); ok {
		return x
	}
	return v.Src(p.Edges()[0])
}

// Cod is the codomain proarrow at the root.
// Complexity: O(1)
func (t DblTree[Ob, Arr, Pro, Cell]) Cod(v VDblCategory[Ob, Arr, Pro, Cell]) Pro {
	if t.leaf {
		return t.pro
	}
	return v.CellCod(t.cell)
}

// SrcBoundary is the tight path down the left spine, frontier first;
// an all-identity spine yields the identity path at the leaf domain's
// source object.
// Complexity: O(depth)
func (t DblTree[Ob, Arr, Pro, Cell]) SrcBoundary(
	v VDblCategory[Ob, Arr, Pro, Cell],
) graph.Path[Ob, Arr] {
	arrows := t.srcArrows(v)
	if len(arrows) == 0 {
		return graph.Id[Ob, Arr](t.leafSrc(v))
	}
	p, err := graph.FromEdges[Ob](arrows)
	if err != nil {
		panic(err) // unreachable: arrows is non-empty
	}
	return p
}

func (t DblTree[Ob, Arr, Pro, Cell]) srcArrows(
	v VDblCategory[Ob, Arr, Pro, Cell],
) []Arr {
	if t.leaf {
		return nil
	}
	var out []Arr
	if len(t.kids) > 0 {
		out = t.kids[0].srcArrows(v)
	}
	return append(out, v.CellSrc(t.cell))
}

// TgtBoundary is the tight path down the right spine, frontier first.
// Complexity: O(depth)
func (t DblTree[Ob, Arr, Pro, Cell]) TgtBoundary(
	v VDblCategory[Ob, Arr, Pro, Cell],
) graph.Path[Ob, Arr] {
	arrows := t.tgtArrows(v)
	if len(arrows) == 0 {
		return graph.Id[Ob, Arr](t.leafTgt(v))
	}
	p, err := graph.FromEdges[Ob](arrows)
	if err != nil {
		panic(err) // unreachable: arrows is non-empty
	}
	return p
}

func (t DblTree[Ob, Arr, Pro, Cell]) tgtArrows(
	v VDblCategory[Ob, Arr, Pro, Cell],
) []Arr {
	if t.leaf {
		return nil
	}
	var out []Arr
	if len(t.kids) > 0 {
		out = t.kids[len(t.kids)-1].tgtArrows(v)
	}
	return append(out, v.CellTgt(t.cell))
}

// leafTgt mirrors leafSrc on the right spine.
func (t DblTree[Ob, Arr, Pro, Cell]) leafTgt(
	v VDblCategory[Ob, Arr, Pro, Cell],
) Ob {
	if t.leaf {
		return v.Tgt(t.pro)
	}
	if len(t.kids) == 0 {
		return pathTgt(v, v.CellDom(t.cell))
	}
	return t.kids[len(t.kids)-1].leafTgt(v)
}

// pathTgt is the target object of a proarrow path.
func pathTgt[Ob comparable, Arr, Pro, Cell any](
	v VDblCategory[Ob, Arr, Pro, Cell], p graph.Path[Ob, Pro],
) Ob {
	if x, ok := p.Vertex(); ok {
		return x
	}
	edges := p.Edges()
	return v.Tgt(edges[len(edges)-1])
}
