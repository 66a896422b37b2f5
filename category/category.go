package category

import "github.com/katalvlaran/lvlcat/graph"

// Category is the core capability: objects O, morphisms M, boundary
// lookups, and whole-path composition. Composition consumes an entire
// path at once so that an implementation can choose its own evaluation
// order — a table fold, an optimal parenthesization — instead of
// committing to a left or right binary fold.
//
// MorEq is the morphism-equality predicate. Free constructions use
// structural equality; presented categories decide equality modulo
// their declared equations, so MorEq is part of the capability rather
// than an assumption that == suffices.
//
// Precondition on Dom, Cod and Compose: arguments belong to the
// category (morphisms of Compose's path are pairwise composable).
// Violations are programmer errors and panic.
type Category[O comparable, M any] interface {
	// HasOb reports whether x is an object.
	HasOb(x O) bool

	// HasMor reports whether f is a morphism.
	HasMor(f M) bool

	// Dom returns the domain object of f.
	Dom(f M) O

	// Cod returns the codomain object of f.
	Cod(f M) O

	// Compose composes a whole path of morphisms: the identity case
	// yields the identity morphism at the path's vertex, the sequence
	// case the composite of its edges in order.
	Compose(path graph.Path[O, M]) M

	// MorEq reports whether two morphisms are equal in the category.
	MorEq(f, g M) bool
}

// FgCategory is a finitely generated Category: the object and morphism
// generators can be enumerated even when the morphism collection
// itself is infinite. Generators are exposed as morphisms; their
// endpoints come from Dom and Cod.
type FgCategory[O comparable, M any] interface {
	Category[O, M]

	// ObGenerators returns the object generators in insertion order.
	ObGenerators() []O

	// MorGenerators returns the morphism generators in insertion order.
	MorGenerators() []M
}

// ComposePair is the derived binary composition: f then g.
func ComposePair[O comparable, M any](c Category[O, M], f, g M) M {
	return c.Compose(graph.Pair[O](f, g))
}

// Identity is the derived identity morphism at x.
func Identity[O comparable, M any](c Category[O, M], x O) M {
	return c.Compose(graph.Id[O, M](x))
}
