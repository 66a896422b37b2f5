package theory

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlcat/category"
	"github.com/katalvlaran/lvlcat/graph"
)

// DiscreteDblTheory reads a finitely presented category as a type
// signature: object generators are object types, paths of morphism
// generators are morphism types, and the presentation's congruence
// decides when two morphism types are the same.
//
// A theory is frozen at construction: the presentation is not mutated
// afterwards, and the ref is the theory's identity for the rest of its
// life. Two theories with equal presentations but different refs are
// different theories.
type DiscreteDblTheory[V, E comparable] struct {
	ref  uuid.UUID
	name string
	cat  *category.FpCategory[V, E]
}

// NewDiscreteDblTheory freezes a presentation into a theory under a
// fresh ref.
func NewDiscreteDblTheory[V, E comparable](
	name string, cat *category.FpCategory[V, E],
) *DiscreteDblTheory[V, E] {
	return &DiscreteDblTheory[V, E]{ref: uuid.New(), name: name, cat: cat}
}

// Ref returns the theory's immutable handle.
func (t *DiscreteDblTheory[V, E]) Ref() uuid.UUID { return t.ref }

// Name returns the theory's human-readable name.
func (t *DiscreteDblTheory[V, E]) Name() string { return t.name }

// Presentation returns the underlying presented category.
func (t *DiscreteDblTheory[V, E]) Presentation() *category.FpCategory[V, E] { return t.cat }

// Validate reports the presentation's well-formedness failures.
func (t *DiscreteDblTheory[V, E]) Validate() []category.InvalidFpCategory[E] {
	return t.cat.Validate()
}

// IsValid reports whether the presentation is well-formed.
func (t *DiscreteDblTheory[V, E]) IsValid() bool { return t.cat.IsValid() }

// HasObType reports whether x is a declared object type.
func (t *DiscreteDblTheory[V, E]) HasObType(x V) bool { return t.cat.HasOb(x) }

// ObTypes enumerates the object types in declaration order.
func (t *DiscreteDblTheory[V, E]) ObTypes() []V { return t.cat.ObGenerators() }

// HasMorType reports whether m is a morphism type of the theory: a
// path over the presentation's generators.
func (t *DiscreteDblTheory[V, E]) HasMorType(m graph.Path[V, E]) bool { return t.cat.HasMor(m) }

// SrcType returns the source object type of a morphism type; panics
// when m is not a morphism type.
func (t *DiscreteDblTheory[V, E]) SrcType(m graph.Path[V, E]) V { return t.cat.Dom(m) }

// TgtType returns the target object type of a morphism type; panics
// when m is not a morphism type.
func (t *DiscreteDblTheory[V, E]) TgtType(m graph.Path[V, E]) V { return t.cat.Cod(m) }

// HomType returns the hom morphism type on an object type: the
// identity path. Panics with ErrObTypeNotFound on an undeclared type.
func (t *DiscreteDblTheory[V, E]) HomType(x V) graph.Path[V, E] {
	if !t.cat.HasOb(x) {
		panic(fmt.Errorf("%w: HomType(%v)", ErrObTypeNotFound, x))
	}
	return graph.Id[V, E](x)
}

// MorTypeGenerators enumerates the generating morphism types in
// declaration order.
func (t *DiscreteDblTheory[V, E]) MorTypeGenerators() []graph.Path[V, E] {
	return t.cat.MorGenerators()
}

// MorTypesEqual decides equality of morphism types modulo the
// presentation's congruence.
func (t *DiscreteDblTheory[V, E]) MorTypesEqual(f, g graph.Path[V, E]) bool {
	return t.cat.MorEq(f, g)
}

// ComposeTypes composes a path of morphism types, when it composes:
// every segment must be a morphism type and consecutive segments must
// meet end to end. The composite of the identity path at a declared
// object type is its hom type.
// Complexity: O(total segment length)
func (t *DiscreteDblTheory[V, E]) ComposeTypes(
	path graph.Path[V, graph.Path[V, E]],
) (graph.Path[V, E], bool) {
	g := t.cat.Generators()
	if x, ok := path.Vertex(); ok {
		if !g.HasVertex(x) {
			return graph.Path[V, E]{}, false
		}
		return graph.Id[V, E](x), true
	}
	segs := path.Edges()
	for _, m := range segs {
		if !m.ContainedIn(g) {
			return graph.Path[V, E]{}, false
		}
	}
	for i := 0; i+1 < len(segs); i++ {
		if segs[i].TgtIn(g) != segs[i+1].SrcIn(g) {
			return graph.Path[V, E]{}, false
		}
	}
	return graph.Flatten(path), true
}

// ComposeObOps composes object operations. The object operations of a
// discrete double theory are its morphism types, one level up, so this
// delegates to ComposeTypes.
func (t *DiscreteDblTheory[V, E]) ComposeObOps(
	path graph.Path[V, graph.Path[V, E]],
) (graph.Path[V, E], bool) {
	return t.ComposeTypes(path)
}
