package computad_test

import (
	"fmt"

	"github.com/katalvlaran/lvlcat/computad"
	"github.com/katalvlaran/lvlcat/graph"
)

// ExampleHashDblComputad stages a square cell, corrupts a copy of its
// boundary data, and reads the diagnostics.
func ExampleHashDblComputad() {
	d := computad.NewHashDblComputad[string, string, string, string]()
	for _, v := range []string{"a", "b", "c", "d", "e"} {
		d.AddVertex(v)
	}
	d.AddEdge("f", "a", "d")
	d.AddEdge("g", "c", "e")
	d.AddProedge("m", "a", "b")
	d.AddProedge("n", "b", "c")
	d.AddProedge("q", "d", "e")
	d.AddCell("alpha", graph.Pair[string]("m", "n"), "q", "f", "g")

	fmt.Println(d.IsValid())

	// the same square with its sides swapped no longer commutes
	d.AddCell("beta", graph.Pair[string]("m", "n"), "q", "g", "f")
	for _, f := range d.Validate() {
		fmt.Println(f)
	}
	// Output:
	// true
	// NotCommuting(beta)
}
