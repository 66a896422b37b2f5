package vdc_test

import (
	"fmt"

	"github.com/katalvlaran/lvlcat/graph"
	"github.com/katalvlaran/lvlcat/vdc"
)

// ExampleGraft pastes a two-cell tree and composes it: the inner cell
// collapses [a, b] to their composite, the identity leaf passes c
// through, and the outer cell collapses the rest.
func ExampleGraft() {
	g := graph.NewHashGraph[string, string]()
	for _, v := range []string{"w", "x", "y", "z"} {
		g.AddVertex(v)
	}
	g.AddEdge("a", "w", "x")
	g.AddEdge("b", "x", "y")
	g.AddEdge("c", "y", "z")
	v := pathVDC{g: g}

	a := graph.Single[string]("a")
	b := graph.Single[string]("b")
	c := graph.Single[string]("c")
	ab := graph.Pair[string]("a", "b")
	abc, _ := graph.FromEdges[string]([]string{"a", "b", "c"})

	inner := pathCell{dom: graph.Pair[string](a, b), cod: ab}
	outer := pathCell{dom: graph.Pair[string](ab, c), cod: abc}

	tree := vdc.Graft(v, outer, vdc.Single(v, inner), vdc.IdLeaf(v, c))
	composed := v.ComposeCells(tree)

	fmt.Println(tree.Size())
	fmt.Println(tree.LeafDom(v).Len())
	fmt.Println(v.ProEq(abc, composed.cod))
	// Output:
	// 2
	// 3
	// true
}
