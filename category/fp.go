package category

import (
	"fmt"

	"github.com/katalvlaran/lvlcat/graph"
)

// FpCategory is a finitely presented category: a generating graph plus
// a finite list of path equations. Morphisms are paths of generators;
// composition is concatenation; equality is decided modulo the
// equations by the attached Congruence.
//
// Built by an append-only sequence of AddObGenerator / AddMorGenerator
// / AddEquation calls, then frozen and used read-only.
type FpCategory[V, E comparable] struct {
	gens *graph.HashGraph[V, E]
	eqs  []graph.PathEq[V, E]
	cong Congruence[V, E]
}

// NewFpCategory builds an empty presentation with the structural
// congruence (exact for equation-free presentations; attach a real
// decider with SetCongruence once equations appear).
// Complexity: O(1)
func NewFpCategory[V, E comparable]() *FpCategory[V, E] {
	return &FpCategory[V, E]{
		gens: graph.NewHashGraph[V, E](),
		cong: StructuralCongruence[V, E]{},
	}
}

// AddObGenerator inserts an object generator, reporting whether it was
// new.
func (c *FpCategory[V, E]) AddObGenerator(v V) bool { return c.gens.AddVertex(v) }

// AddMorGenerator inserts a morphism generator with the given
// endpoints, reporting whether it was new.
func (c *FpCategory[V, E]) AddMorGenerator(e E, dom, cod V) bool {
	return c.gens.AddEdge(e, dom, cod)
}

// AddEquation appends a path equation. Well-formedness (containment,
// shared endpoints) is checked by Validate, not here.
func (c *FpCategory[V, E]) AddEquation(eq graph.PathEq[V, E]) {
	c.eqs = append(c.eqs, eq)
}

// SetCongruence attaches the equality decider for this presentation.
func (c *FpCategory[V, E]) SetCongruence(cong Congruence[V, E]) { c.cong = cong }

// Generators returns the generating graph, read-only by convention.
func (c *FpCategory[V, E]) Generators() graph.FinGraph[V, E] { return c.gens }

// Equations returns a copy of the equation list.
func (c *FpCategory[V, E]) Equations() []graph.PathEq[V, E] {
	out := make([]graph.PathEq[V, E], len(c.eqs))
	copy(out, c.eqs)
	return out
}

// HasOb reports whether x is an object generator.
func (c *FpCategory[V, E]) HasOb(x V) bool { return c.gens.HasVertex(x) }

// HasMor reports whether f is a path contained in the generating
// graph.
// Complexity: O(len(f))
func (c *FpCategory[V, E]) HasMor(f graph.Path[V, E]) bool { return f.ContainedIn(c.gens) }

// Dom returns the source of the path. Panics if f is not contained.
func (c *FpCategory[V, E]) Dom(f graph.Path[V, E]) V { return f.SrcIn(c.gens) }

// Cod returns the target of the path. Panics if f is not contained.
func (c *FpCategory[V, E]) Cod(f graph.Path[V, E]) V { return f.TgtIn(c.gens) }

// Compose concatenates a path of paths. Representatives stay
// unreduced; equality is the congruence's business.
// Complexity: O(total edges)
func (c *FpCategory[V, E]) Compose(path graph.Path[V, graph.Path[V, E]]) graph.Path[V, E] {
	return graph.Flatten(path)
}

// MorEq decides morphism equality modulo the declared equations.
func (c *FpCategory[V, E]) MorEq(f, g graph.Path[V, E]) bool {
	return c.cong.PathsEqual(f, g)
}

// ObGenerators returns the object generators in insertion order.
func (c *FpCategory[V, E]) ObGenerators() []V { return c.gens.Vertices() }

// MorGenerators returns the single-generator paths in insertion order.
func (c *FpCategory[V, E]) MorGenerators() []graph.Path[V, E] {
	edges := c.gens.Edges()
	out := make([]graph.Path[V, E], len(edges))
	for i, e := range edges {
		out[i] = graph.Single[V](e)
	}
	return out
}

// FpFailureKind discriminates presentation failures.
type FpFailureKind int

const (
	// FpGenerator marks a generator-graph failure (missing endpoint).
	FpGenerator FpFailureKind = iota
	// FpEquation marks an ill-formed path equation.
	FpEquation
)

// String names the failure kind for diagnostics.
func (k FpFailureKind) String() string {
	switch k {
	case FpGenerator:
		return "FpGenerator"
	case FpEquation:
		return "FpEquation"
	default:
		return fmt.Sprintf("FpFailureKind(%d)", int(k))
	}
}

// InvalidFpCategory reports one failure of a finite presentation.
type InvalidFpCategory[E comparable] struct {
	Kind FpFailureKind

	// Edge names the offending generator for FpGenerator failures.
	Edge E

	// Equation indexes the offending equation for FpEquation failures;
	// EqFailure carries the specific defect.
	Equation  int
	EqFailure graph.PathEqFailureKind
}

// Validate reports every failure of the presentation: generator-graph
// failures plus every defect of every equation, indexed so a caller
// can point at the exact declaration. Never stops at the first
// problem; pure and idempotent.
// Complexity: O(E + total equation length)
func (c *FpCategory[V, E]) Validate() []InvalidFpCategory[E] {
	var out []InvalidFpCategory[E]
	for _, f := range c.gens.Validate() {
		out = append(out, InvalidFpCategory[E]{Kind: FpGenerator, Edge: f.Edge})
	}
	for i, eq := range c.eqs {
		for _, f := range eq.Validate(c.gens) {
			out = append(out, InvalidFpCategory[E]{
				Kind:      FpEquation,
				Equation:  i,
				EqFailure: f.Kind,
			})
		}
	}
	return out
}

// IsValid reports whether the presentation has no failures, stopping
// at the first.
func (c *FpCategory[V, E]) IsValid() bool {
	if !c.gens.IsValid() {
		return false
	}
	for _, eq := range c.eqs {
		if !eq.IsValid(c.gens) {
			return false
		}
	}
	return true
}
