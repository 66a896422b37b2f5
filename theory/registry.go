package theory

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/lvlcat/set"
)

// Registry resolves theory refs: the surrounding application passes
// uuid refs around and looks the theory up at the point of use. Names
// are indexed too, for human-facing lookups; refs stay the identity.
//
// Like every structure in the kernel, a registry is append-only.
type Registry[V, E comparable] struct {
	byRef  *set.HashMapping[uuid.UUID, *DiscreteDblTheory[V, E]]
	byName *set.HashMapping[string, uuid.UUID]
}

// NewRegistry builds an empty registry.
func NewRegistry[V, E comparable]() *Registry[V, E] {
	return &Registry[V, E]{
		byRef:  set.NewHashMapping[uuid.UUID, *DiscreteDblTheory[V, E]](),
		byName: set.NewHashMapping[string, uuid.UUID](),
	}
}

// Register records a theory under its ref and name; false when either
// is already taken, in which case nothing is recorded.
func (r *Registry[V, E]) Register(t *DiscreteDblTheory[V, E]) bool {
	if r.byRef.IsDefined(t.Ref()) || r.byName.IsDefined(t.Name()) {
		return false
	}
	r.byRef.Set(t.Ref(), t)
	r.byName.Set(t.Name(), t.Ref())
	return true
}

// Lookup resolves a ref.
func (r *Registry[V, E]) Lookup(ref uuid.UUID) (*DiscreteDblTheory[V, E], bool) {
	return r.byRef.Apply(ref)
}

// LookupName resolves a name to its theory.
func (r *Registry[V, E]) LookupName(name string) (*DiscreteDblTheory[V, E], bool) {
	ref, ok := r.byName.Apply(name)
	if !ok {
		return nil, false
	}
	return r.byRef.Apply(ref)
}

// Refs enumerates the registered refs in registration order.
func (r *Registry[V, E]) Refs() []uuid.UUID { return r.byRef.Keys() }

// Len returns the number of registered theories.
func (r *Registry[V, E]) Len() int { return r.byRef.Len() }
