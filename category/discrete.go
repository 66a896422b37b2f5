package category

import (
	"fmt"

	"github.com/katalvlaran/lvlcat/graph"
	"github.com/katalvlaran/lvlcat/set"
)

// DiscreteCategory is the category with a given finite set of objects
// and no morphisms beyond identities. A morphism is represented by its
// own object.
type DiscreteCategory[T comparable] struct {
	obs set.FinSet[T]
}

// NewDiscreteCategory builds the discrete category on obs.
// Complexity: O(1)
func NewDiscreteCategory[T comparable](obs set.FinSet[T]) *DiscreteCategory[T] {
	return &DiscreteCategory[T]{obs: obs}
}

// HasOb reports whether x is an object.
func (c *DiscreteCategory[T]) HasOb(x T) bool { return c.obs.Contains(x) }

// HasMor reports whether f is a morphism, i.e. an identity at some
// object.
func (c *DiscreteCategory[T]) HasMor(f T) bool { return c.obs.Contains(f) }

// Dom returns the domain of f: the object itself.
func (c *DiscreteCategory[T]) Dom(f T) T { return f }

// Cod returns the codomain of f: the object itself.
func (c *DiscreteCategory[T]) Cod(f T) T { return f }

// Compose composes a path of identities. All morphisms on the path
// must coincide; anything else means the path was never composable and
// panics with ErrNotComposable.
// Complexity: O(len)
func (c *DiscreteCategory[T]) Compose(path graph.Path[T, T]) T {
	if v, ok := path.Vertex(); ok {
		return v
	}
	edges := path.Edges()
	for i := 0; i+1 < len(edges); i++ {
		if edges[i] != edges[i+1] {
			panic(fmt.Errorf("%w: identities at %v and %v", ErrNotComposable, edges[i], edges[i+1]))
		}
	}
	return edges[0]
}

// MorEq is structural equality.
func (c *DiscreteCategory[T]) MorEq(f, g T) bool { return f == g }

// ObGenerators returns the objects in insertion order.
func (c *DiscreteCategory[T]) ObGenerators() []T { return c.obs.Elems() }

// MorGenerators returns nothing: a discrete category has no morphism
// generators.
func (c *DiscreteCategory[T]) MorGenerators() []T { return nil }
