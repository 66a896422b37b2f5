package category

import (
	"fmt"

	"github.com/katalvlaran/lvlcat/graph"
)

// FinMor is a morphism of a finitely tabulated category in normal
// form: an identity at an object or a single generator. It is a sum
// type with unexported fields; FinMor values are comparable, so
// morphism equality in a FinCategory is ==.
type FinMor[V, E comparable] struct {
	ob    V
	gen   E
	isGen bool
}

// IdMor builds the identity morphism at v.
func IdMor[V, E comparable](v V) FinMor[V, E] {
	return FinMor[V, E]{ob: v}
}

// GenMor builds the morphism of the single generator e.
func GenMor[V, E comparable](e E) FinMor[V, E] {
	return FinMor[V, E]{gen: e, isGen: true}
}

// IsId reports whether m is an identity.
func (m FinMor[V, E]) IsId() bool { return !m.isGen }

// Object returns the object of an identity morphism, or (zero, false)
// for a generator.
func (m FinMor[V, E]) Object() (V, bool) {
	if m.isGen {
		var zero V
		return zero, false
	}
	return m.ob, true
}

// Generator returns the generator of a non-identity morphism, or
// (zero, false) for an identity.
func (m FinMor[V, E]) Generator() (E, bool) {
	if !m.isGen {
		var zero E
		return zero, false
	}
	return m.gen, true
}

// String renders the morphism for diagnostics.
func (m FinMor[V, E]) String() string {
	if m.isGen {
		return fmt.Sprintf("Gen(%v)", m.gen)
	}
	return fmt.Sprintf("Id(%v)", m.ob)
}

// genPair is a composable pair of adjacent generators: the key of the
// composition table.
type genPair[E comparable] struct {
	fst, snd E
}

// FinCategory is a finitely presented category small enough to
// tabulate composition directly: a generating graph plus, for each
// composable pair of adjacent generators, a recorded composite in
// normal form. Morphisms are FinMor values; composing a path folds
// through the table.
//
// The table is deliberately allowed to stay partial while building;
// Compose treats a missing entry as an unrecoverable programmer error,
// while ComposeChecked reports it as an expected absence — the carrier
// of deliberately partial doctrines.
type FinCategory[V, E comparable] struct {
	gens      *graph.HashGraph[V, E]
	table     map[genPair[E]]FinMor[V, E]
	pairOrder []genPair[E] // insertion-order journal for deterministic validation
}

// NewFinCategory builds an empty tabulated presentation.
// Complexity: O(1)
func NewFinCategory[V, E comparable]() *FinCategory[V, E] {
	return &FinCategory[V, E]{
		gens:  graph.NewHashGraph[V, E](),
		table: make(map[genPair[E]]FinMor[V, E]),
	}
}

// AddObGenerator inserts an object generator, reporting whether it was
// new.
func (c *FinCategory[V, E]) AddObGenerator(v V) bool { return c.gens.AddVertex(v) }

// AddMorGenerator inserts a morphism generator with the given
// endpoints, reporting whether it was new.
func (c *FinCategory[V, E]) AddMorGenerator(e E, dom, cod V) bool {
	return c.gens.AddEdge(e, dom, cod)
}

// SetComposite records the composite of the adjacent generator pair
// (e1, e2). The composite must be in normal form: an identity or a
// single generator.
func (c *FinCategory[V, E]) SetComposite(e1, e2 E, to FinMor[V, E]) {
	key := genPair[E]{fst: e1, snd: e2}
	if _, ok := c.table[key]; !ok {
		c.pairOrder = append(c.pairOrder, key)
	}
	c.table[key] = to
}

// Generators returns the generating graph, read-only by convention.
func (c *FinCategory[V, E]) Generators() graph.FinGraph[V, E] { return c.gens }

// HasOb reports whether x is an object generator.
func (c *FinCategory[V, E]) HasOb(x V) bool { return c.gens.HasVertex(x) }

// HasMor reports whether f is a morphism: an identity at a known
// object or a known generator.
func (c *FinCategory[V, E]) HasMor(f FinMor[V, E]) bool {
	if g, ok := f.Generator(); ok {
		return c.gens.HasEdge(g)
	}
	v, _ := f.Object()
	return c.gens.HasVertex(v)
}

// Dom returns the domain of f. Panics with ErrMorNotFound if f is
// outside the category.
func (c *FinCategory[V, E]) Dom(f FinMor[V, E]) V {
	c.mustHaveMor(f, "Dom")
	if g, ok := f.Generator(); ok {
		return c.gens.Src(g)
	}
	v, _ := f.Object()
	return v
}

// Cod returns the codomain of f. Panics with ErrMorNotFound if f is
// outside the category.
func (c *FinCategory[V, E]) Cod(f FinMor[V, E]) V {
	c.mustHaveMor(f, "Cod")
	if g, ok := f.Generator(); ok {
		return c.gens.Tgt(g)
	}
	v, _ := f.Object()
	return v
}

func (c *FinCategory[V, E]) mustHaveMor(f FinMor[V, E], op string) {
	if !c.HasMor(f) {
		panic(fmt.Errorf("%w: %s(%v)", ErrMorNotFound, op, f))
	}
}

// Compose folds a path of morphisms through the composition table.
// Two adjacent morphisms with disagreeing endpoints panic with
// ErrNotComposable; a composable generator pair with no recorded
// composite panics with ErrNoComposite. Both conditions indicate an
// inconsistently built presentation, not a recoverable outcome.
// Complexity: O(len)
func (c *FinCategory[V, E]) Compose(path graph.Path[V, FinMor[V, E]]) FinMor[V, E] {
	m, _ := c.composeFold(path, true) // strict mode panics instead of reporting
	return m
}

// ComposeChecked folds like Compose but reports a missing table entry
// as an explicit absence, the expected outcome for deliberately
// partial presentations. Endpoint disagreement still panics.
// Complexity: O(len)
func (c *FinCategory[V, E]) ComposeChecked(path graph.Path[V, FinMor[V, E]]) (FinMor[V, E], bool) {
	return c.composeFold(path, false)
}

func (c *FinCategory[V, E]) composeFold(path graph.Path[V, FinMor[V, E]], strict bool) (FinMor[V, E], bool) {
	if v, ok := path.Vertex(); ok {
		return IdMor[V, E](v), true
	}
	mors := path.Edges()
	acc := mors[0]
	for _, next := range mors[1:] {
		if c.Cod(acc) != c.Dom(next) {
			panic(fmt.Errorf("%w: %v then %v", ErrNotComposable, acc, next))
		}
		switch {
		case next.IsId():
			// acc unchanged
		case acc.IsId():
			acc = next
		default:
			g1, _ := acc.Generator()
			g2, _ := next.Generator()
			to, ok := c.table[genPair[E]{fst: g1, snd: g2}]
			if !ok {
				if strict {
					panic(fmt.Errorf("%w: (%v, %v)", ErrNoComposite, g1, g2))
				}
				return FinMor[V, E]{}, false
			}
			acc = to
		}
	}
	return acc, true
}

// MorEq is equality of normal forms: FinMor values compare with ==.
func (c *FinCategory[V, E]) MorEq(f, g FinMor[V, E]) bool { return f == g }

// ObGenerators returns the object generators in insertion order.
func (c *FinCategory[V, E]) ObGenerators() []V { return c.gens.Vertices() }

// MorGenerators returns the morphism generators in insertion order.
func (c *FinCategory[V, E]) MorGenerators() []FinMor[V, E] {
	edges := c.gens.Edges()
	out := make([]FinMor[V, E], len(edges))
	for i, e := range edges {
		out[i] = GenMor[V](e)
	}
	return out
}

// FinFailureKind discriminates tabulated-presentation failures.
type FinFailureKind int

const (
	// FinGenerator marks a generator-graph failure (missing endpoint).
	FinGenerator FinFailureKind = iota
	// FinPairBounds marks a table key whose generators are unknown or
	// not adjacent (cod of the first ≠ dom of the second).
	FinPairBounds
	// FinCompositeDom marks a table entry whose domain differs from the
	// pair's domain.
	FinCompositeDom
	// FinCompositeCod marks a table entry whose codomain differs from
	// the pair's codomain.
	FinCompositeCod
)

// String names the failure kind for diagnostics.
func (k FinFailureKind) String() string {
	switch k {
	case FinGenerator:
		return "FinGenerator"
	case FinPairBounds:
		return "FinPairBounds"
	case FinCompositeDom:
		return "FinCompositeDom"
	case FinCompositeCod:
		return "FinCompositeCod"
	default:
		return fmt.Sprintf("FinFailureKind(%d)", int(k))
	}
}

// InvalidFinCategory reports one failure of a tabulated presentation.
type InvalidFinCategory[E comparable] struct {
	Kind FinFailureKind

	// Edge names the offending generator for FinGenerator failures.
	Edge E

	// Fst, Snd name the table key for pair/composite failures.
	Fst, Snd E
}

// Validate reports every failure of the presentation: generator-graph
// failures plus, for every table entry, ill-bounded keys and boundary
// mismatches of the recorded composite. Totality of the table is not a
// failure — partial presentations are legitimate.
// Validation is pure and idempotent.
// Complexity: O(E + |table|)
func (c *FinCategory[V, E]) Validate() []InvalidFinCategory[E] {
	var out []InvalidFinCategory[E]
	for _, f := range c.gens.Validate() {
		out = append(out, InvalidFinCategory[E]{Kind: FinGenerator, Edge: f.Edge})
	}
	for _, key := range c.pairOrder {
		e1, e2 := key.fst, key.snd
		to := c.table[key]
		if !c.gens.HasEdge(e1) || !c.gens.HasEdge(e2) || c.gens.Tgt(e1) != c.gens.Src(e2) {
			out = append(out, InvalidFinCategory[E]{Kind: FinPairBounds, Fst: e1, Snd: e2})
			continue
		}
		if !c.HasMor(to) {
			out = append(out, InvalidFinCategory[E]{Kind: FinCompositeDom, Fst: e1, Snd: e2})
			continue
		}
		if c.Dom(to) != c.gens.Src(e1) {
			out = append(out, InvalidFinCategory[E]{Kind: FinCompositeDom, Fst: e1, Snd: e2})
		}
		if c.Cod(to) != c.gens.Tgt(e2) {
			out = append(out, InvalidFinCategory[E]{Kind: FinCompositeCod, Fst: e1, Snd: e2})
		}
	}
	return out
}

// IsValid reports whether the presentation has no failures, stopping
// at the first.
func (c *FinCategory[V, E]) IsValid() bool { return len(c.Validate()) == 0 }
