package theory

import (
	"github.com/katalvlaran/lvlcat/category"
	"github.com/katalvlaran/lvlcat/graph"
)

// The standard presentations. Each call constructs a fresh theory with
// a fresh ref; callers that want shared handles register the result
// once and pass the ref around, which is what StdTheories does.

// ThCategory is the theory of categories: one object type, nothing
// else. A model is a category.
func ThCategory() *DiscreteDblTheory[string, string] {
	c := category.NewFpCategory[string, string]()
	c.AddObGenerator("Object")
	return NewDiscreteDblTheory("Category", c)
}

// ThSchema is the theory of schemas: entity types, attribute types,
// and attribute morphisms from entities to attribute types.
func ThSchema() *DiscreteDblTheory[string, string] {
	c := category.NewFpCategory[string, string]()
	c.AddObGenerator("Entity")
	c.AddObGenerator("AttrType")
	c.AddMorGenerator("Attr", "Entity", "AttrType")
	return NewDiscreteDblTheory("Schema", c)
}

// ThSignedCategory is the theory of signed categories: one object
// type and a sign morphism type squaring to the hom type. A model is
// a category whose morphisms carry signs that multiply along
// composition.
func ThSignedCategory() *DiscreteDblTheory[string, string] {
	c := category.NewFpCategory[string, string]()
	c.AddObGenerator("Object")
	c.AddMorGenerator("Negative", "Object", "Object")
	c.AddEquation(graph.NewPathEq(
		graph.Pair[string]("Negative", "Negative"),
		graph.Id[string, string]("Object"),
	))
	cong, err := category.NewRewriteCongruence(c.Generators(), c.Equations())
	if err != nil {
		panic(err) // unreachable: the equation is length-reducing
	}
	c.SetCongruence(cong)
	return NewDiscreteDblTheory("SignedCategory", c)
}

// ThCategoryLinks is the theory of categories with links: one object
// type and a free link morphism type alongside the hom type.
func ThCategoryLinks() *DiscreteDblTheory[string, string] {
	c := category.NewFpCategory[string, string]()
	c.AddObGenerator("Object")
	c.AddMorGenerator("Link", "Object", "Object")
	return NewDiscreteDblTheory("CategoryLinks", c)
}

// StdTheories registers one instance of every standard theory in a
// fresh registry.
func StdTheories() *Registry[string, string] {
	r := NewRegistry[string, string]()
	for _, t := range []*DiscreteDblTheory[string, string]{
		ThCategory(),
		ThSchema(),
		ThSignedCategory(),
		ThCategoryLinks(),
	} {
		r.Register(t)
	}
	return r
}
