package theory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcat/graph"
	"github.com/katalvlaran/lvlcat/theory"
	"github.com/katalvlaran/lvlcat/vdc"
)

// The vdc view of a theory: tight arrows are object identities,
// proarrows are morphism types, cells are equality witnesses.

func TestDiscreteDblTheory_VDblStructure(t *testing.T) {
	var th vdc.VDblCategory[string, string, graph.Path[string, string],
		theory.EqCell[string, string]] = theory.ThSignedCategory()

	neg := graph.Single[string]("Negative")
	hom := graph.Id[string, string]("Object")

	require.True(t, th.HasOb("Object"))
	require.True(t, th.HasArr("Object"))
	require.Equal(t, "Object", th.Dom("Object"))
	require.True(t, th.HasPro(neg))
	require.Equal(t, "Object", th.Src(neg))
	require.Equal(t, "Object", th.Tgt(neg))
	require.True(t, th.ProEq(hom, graph.Pair[string]("Negative", "Negative")))

	unit, ok := th.Unit("Object")
	require.True(t, ok)
	require.True(t, unit.IsId())
	_, ok = th.Unit("ghost")
	require.False(t, ok)

	comp, ok := th.Composite(graph.Pair[string](neg, neg))
	require.True(t, ok)
	require.True(t, th.ProEq(hom, comp))
}

func TestDiscreteDblTheory_Cells(t *testing.T) {
	th := theory.ThSignedCategory()
	neg := graph.Single[string]("Negative")
	hom := graph.Id[string, string]("Object")

	t.Run("witness holds exactly when congruent", func(t *testing.T) {
		require.True(t, th.HasCell(theory.EqCell[string, string]{
			Dom: graph.Pair[string](neg, neg),
			Cod: hom,
		}))
		require.False(t, th.HasCell(theory.EqCell[string, string]{
			Dom: graph.Pair[string](neg, neg),
			Cod: neg,
		}))
	})

	t.Run("identity cell", func(t *testing.T) {
		c := th.IdCell(neg)
		require.True(t, th.HasCell(c))
		require.True(t, th.ProEq(neg, th.CellCod(c)))
		require.Equal(t, "Object", th.CellSrc(c))
		require.Equal(t, "Object", th.CellTgt(c))
		require.Equal(t, 1, th.CellDom(c).Len())
	})
}

func TestDiscreteDblTheory_ComposeCells(t *testing.T) {
	th := theory.ThSignedCategory()
	neg := graph.Single[string]("Negative")
	hom := graph.Id[string, string]("Object")

	square := theory.EqCell[string, string]{Dom: graph.Pair[string](neg, neg), Cod: hom}

	t.Run("single node composes to its own witness", func(t *testing.T) {
		got := th.ComposeCells(vdc.Single(th, square))
		require.True(t, th.ProEq(hom, got.Cod))
		require.Equal(t, 2, got.Dom.Len())
	})

	t.Run("identity leaf passes the proarrow through", func(t *testing.T) {
		got := th.ComposeCells(vdc.IdLeaf(th, neg))
		require.True(t, th.ProEq(neg, got.Cod))
	})

	t.Run("grafted frontier concatenates", func(t *testing.T) {
		// square over [IdLeaf(neg), IdLeaf(neg)]: frontier [neg, neg]
		tree := vdc.Graft(th, square, vdc.IdLeaf(th, neg), vdc.IdLeaf(th, neg))
		require.Equal(t, 1, tree.Size())

		got := th.ComposeCells(tree)
		require.Equal(t, 2, got.Dom.Len())
		require.True(t, th.ProEq(hom, got.Cod))
		require.True(t, th.HasCell(got))
	})

	t.Run("graft checks slots up to congruence", func(t *testing.T) {
		// the slot wants neg; an identity cell on any congruent
		// proarrow fits
		negCubed, ok := th.ComposeTypes(graph.Pair[string](
			graph.Pair[string]("Negative", "Negative"), neg))
		require.True(t, ok)
		require.True(t, th.ProEq(neg, negCubed))

		tree := vdc.Graft(th, square, vdc.Single(th, th.IdCell(negCubed)), vdc.IdLeaf(th, neg))
		got := th.ComposeCells(tree)
		require.Equal(t, 2, got.Dom.Len())
		require.True(t, th.ProEq(hom, got.Cod))
	})

	t.Run("graft rejects a non-congruent slot", func(t *testing.T) {
		require.Panics(t, func() {
			vdc.Graft(th, square, vdc.Single(th, th.IdCell(hom)), vdc.IdLeaf(th, neg))
		})
	})
}
