package vdc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcat/graph"
	"github.com/katalvlaran/lvlcat/vdc"
)

// pathCell witnesses that a path of paths flattens to its codomain.
type pathCell struct {
	dom graph.Path[string, graph.Path[string, string]]
	cod graph.Path[string, string]
}

// pathVDC is the virtual double category of paths in a graph: objects
// are vertices, tight arrows are object identities, proarrows are
// paths, and a cell exists exactly when its domain flattens to its
// codomain. Composites always exist, so it is in fact a double
// category; it exercises every tree operation.
type pathVDC struct {
	g *graph.HashGraph[string, string]
}

func (v pathVDC) HasOb(x string) bool  { return v.g.HasVertex(x) }
func (v pathVDC) HasArr(f string) bool { return v.g.HasVertex(f) }

func (v pathVDC) HasPro(p graph.Path[string, string]) bool { return p.ContainedIn(v.g) }

func (v pathVDC) HasCell(c pathCell) bool {
	if !c.cod.ContainedIn(v.g) {
		return false
	}
	for _, p := range c.dom.Edges() {
		if !p.ContainedIn(v.g) {
			return false
		}
	}
	return graph.EqualPaths(graph.Flatten(c.dom), c.cod)
}

func (v pathVDC) Dom(f string) string { return f }
func (v pathVDC) Cod(f string) string { return f }

func (v pathVDC) Src(p graph.Path[string, string]) string { return p.SrcIn(v.g) }
func (v pathVDC) Tgt(p graph.Path[string, string]) string { return p.TgtIn(v.g) }

func (v pathVDC) CellDom(c pathCell) graph.Path[string, graph.Path[string, string]] {
	return c.dom
}
func (v pathVDC) CellCod(c pathCell) graph.Path[string, string] { return c.cod }
func (v pathVDC) CellSrc(c pathCell) string                     { return c.cod.SrcIn(v.g) }
func (v pathVDC) CellTgt(c pathCell) string                     { return c.cod.TgtIn(v.g) }

func (v pathVDC) ProEq(p, q graph.Path[string, string]) bool { return graph.EqualPaths(p, q) }

func (v pathVDC) ComposeCells(
	t vdc.DblTree[string, string, graph.Path[string, string], pathCell],
) pathCell {
	dom := t.LeafDom(v)
	return pathCell{dom: dom, cod: graph.Flatten(dom)}
}

func (v pathVDC) IdCell(p graph.Path[string, string]) pathCell {
	return pathCell{dom: graph.Single[string](p), cod: p}
}

func (v pathVDC) Composite(
	path graph.Path[string, graph.Path[string, string]],
) (graph.Path[string, string], bool) {
	return graph.Flatten(path), true
}

func (v pathVDC) Unit(x string) (graph.Path[string, string], bool) {
	return graph.Id[string, string](x), true
}

// chainVDC builds w -a-> x -b-> y -c-> z.
func chainVDC(t *testing.T) pathVDC {
	t.Helper()

	g := graph.NewHashGraph[string, string]()
	for _, v := range []string{"w", "x", "y", "z"} {
		g.AddVertex(v)
	}
	g.AddEdge("a", "w", "x")
	g.AddEdge("b", "x", "y")
	g.AddEdge("c", "y", "z")
	require.True(t, g.IsValid())
	return pathVDC{g: g}
}

// requireProPath asserts that a proarrow path has exactly the given
// edges, compared by ProEq.
func requireProPath(t *testing.T, v pathVDC,
	got graph.Path[string, graph.Path[string, string]],
	want ...graph.Path[string, string],
) {
	t.Helper()
	edges := got.Edges()
	require.Len(t, edges, len(want))
	for i := range want {
		require.True(t, v.ProEq(want[i], edges[i]), "edge %d", i)
	}
}

func TestDblTree_Single(t *testing.T) {
	v := chainVDC(t)
	ab := graph.Pair[string]("a", "b")
	cell := v.IdCell(ab)

	tr := vdc.Single(v, cell)
	require.False(t, tr.IsId())
	require.Equal(t, 1, tr.Size())
	require.Equal(t, []pathCell{cell}, tr.Leaves())
	require.True(t, v.ProEq(ab, tr.Cod(v)))
	requireProPath(t, v, tr.LeafDom(v), ab)

	// single-node tree composes to its own cell
	got := v.ComposeCells(tr)
	require.True(t, v.ProEq(cell.cod, got.cod))
}

func TestDblTree_IdLeaf(t *testing.T) {
	v := chainVDC(t)
	ab := graph.Pair[string]("a", "b")

	tr := vdc.IdLeaf(v, ab)
	require.True(t, tr.IsId())
	require.Equal(t, 0, tr.Size())
	require.Empty(t, tr.Leaves())
	require.True(t, v.ProEq(ab, tr.Cod(v)))
	requireProPath(t, v, tr.LeafDom(v), ab)

	// identity-only tree composes back to the proarrow it started from
	got := v.ComposeCells(tr)
	require.True(t, v.ProEq(ab, got.cod))
}

func TestDblTree_MembershipChecked(t *testing.T) {
	v := chainVDC(t)
	ghost := graph.Single[string]("ghost")

	require.Panics(t, func() { vdc.IdLeaf(v, ghost) })
	require.Panics(t, func() {
		vdc.Single(v, pathCell{dom: graph.Single[string](ghost), cod: ghost})
	})
	require.Panics(t, func() {
		vdc.Graft(v, pathCell{dom: graph.Single[string](ghost), cod: ghost})
	})
}

func TestDblTree_Graft(t *testing.T) {
	v := chainVDC(t)
	a := graph.Single[string]("a")
	b := graph.Single[string]("b")
	c := graph.Single[string]("c")
	ab := graph.Pair[string]("a", "b")
	abc, err := graph.FromEdges[string]([]string{"a", "b", "c"})
	require.NoError(t, err)

	// outer: [ab, c] => abc; inner: [a, b] => ab
	outer := pathCell{dom: graph.Pair[string](ab, c), cod: abc}
	inner := pathCell{dom: graph.Pair[string](a, b), cod: ab}
	require.True(t, v.HasCell(outer))
	require.True(t, v.HasCell(inner))

	t.Run("frontier concatenates across slots", func(t *testing.T) {
		tr := vdc.Graft(v, outer, vdc.Single(v, inner), vdc.IdLeaf(v, c))
		require.Equal(t, 2, tr.Size())
		require.Equal(t, []pathCell{inner}, tr.Leaves())
		requireProPath(t, v, tr.LeafDom(v), a, b, c)
		require.True(t, v.ProEq(abc, tr.Cod(v)))

		got := v.ComposeCells(tr)
		require.True(t, v.ProEq(abc, got.cod))
	})

	t.Run("regrafting an equivalent subtree composes equal", func(t *testing.T) {
		viaCell := vdc.Graft(v, outer, vdc.Single(v, inner), vdc.IdLeaf(v, c))
		viaLeaves := vdc.Graft(v, outer,
			vdc.Graft(v, inner, vdc.IdLeaf(v, a), vdc.IdLeaf(v, b)),
			vdc.IdLeaf(v, c))

		require.True(t, v.ProEq(
			v.ComposeCells(viaCell).cod,
			v.ComposeCells(viaLeaves).cod))
	})

	t.Run("arity mismatch panics", func(t *testing.T) {
		require.Panics(t, func() { vdc.Graft(v, outer, vdc.Single(v, inner)) })
	})

	t.Run("slot boundary mismatch panics", func(t *testing.T) {
		require.Panics(t, func() {
			vdc.Graft(v, outer, vdc.IdLeaf(v, b), vdc.IdLeaf(v, c))
		})
	})
}

func TestDblTree_Boundaries(t *testing.T) {
	v := chainVDC(t)
	a := graph.Single[string]("a")
	b := graph.Single[string]("b")
	ab := graph.Pair[string]("a", "b")
	inner := pathCell{dom: graph.Pair[string](a, b), cod: ab}

	t.Run("identity leaf has identity boundaries", func(t *testing.T) {
		tr := vdc.IdLeaf(v, ab)
		src := tr.SrcBoundary(v)
		require.True(t, src.IsId())
		x, _ := src.Vertex()
		require.Equal(t, "w", x)
		tgt := tr.TgtBoundary(v)
		y, _ := tgt.Vertex()
		require.Equal(t, "y", y)
	})

	t.Run("spines collect one tight arrow per cell", func(t *testing.T) {
		tr := vdc.Graft(v, inner, vdc.IdLeaf(v, a), vdc.IdLeaf(v, b))
		// pathVDC's tight arrows are object identities
		require.Equal(t, []string{"w"}, tr.SrcBoundary(v).Edges())
		require.Equal(t, []string{"y"}, tr.TgtBoundary(v).Edges())
	})
}
