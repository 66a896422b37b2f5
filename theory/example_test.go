package theory_test

import (
	"fmt"

	"github.com/katalvlaran/lvlcat/graph"
	"github.com/katalvlaran/lvlcat/theory"
)

// ExampleStdTheories resolves the signed-category theory by name and
// checks its defining law.
func ExampleStdTheories() {
	r := theory.StdTheories()
	th, _ := r.LookupName("SignedCategory")

	neg := graph.Single[string]("Negative")
	square, _ := th.ComposeTypes(graph.Pair[string](neg, neg))

	fmt.Println(th.Name())
	fmt.Println(th.MorTypesEqual(th.HomType("Object"), square))
	fmt.Println(th.MorTypesEqual(neg, square))
	// Output:
	// SignedCategory
	// true
	// false
}

// ExampleDiscreteDblTheory builds the schema theory's signature by
// hand.
func ExampleDiscreteDblTheory() {
	th := theory.ThSchema()

	attr := graph.Single[string]("Attr")
	fmt.Println(th.SrcType(attr), "--Attr-->", th.TgtType(attr))
	fmt.Println(th.HasMorType(graph.Single[string]("ghost")))
	// Output:
	// Entity --Attr--> AttrType
	// false
}
