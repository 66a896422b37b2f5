package category

import (
	"fmt"

	"github.com/katalvlaran/lvlcat/graph"
)

// Congruence decides whether two paths of generators are congruent
// under a finite equation set. It is the single substitution point for
// equational reasoning: FpCategory delegates its morphism equality
// here, so a term-rewriting or congruence-closure decider can replace
// the shipped one without changing any category-level consumer.
type Congruence[V, E comparable] interface {
	// PathsEqual reports whether lhs and rhs present the same morphism.
	PathsEqual(lhs, rhs graph.Path[V, E]) bool
}

// StructuralCongruence is the trivial decider: two paths are congruent
// only when structurally equal. Sound for any presentation, complete
// only for equation-free ones.
type StructuralCongruence[V, E comparable] struct{}

// PathsEqual is structural path equality.
func (StructuralCongruence[V, E]) PathsEqual(lhs, rhs graph.Path[V, E]) bool {
	return graph.EqualPaths(lhs, rhs)
}

// TableCongruence decides congruence by reducing both sides to normal
// form through a FinCategory's composition table. It is sound and
// complete exactly when the table is a confluent orientation of the
// presentation's equations — the case for every doctrine-sized
// presentation this kernel ships.
//
// Reduction inherits the table's strict contract: a missing composite
// for an adjacent pair panics with ErrNoComposite, because a decider
// attached to a presentation is expected to cover it.
type TableCongruence[V, E comparable] struct {
	fin *FinCategory[V, E]
}

// NewTableCongruence builds the decider over fin's table.
func NewTableCongruence[V, E comparable](fin *FinCategory[V, E]) *TableCongruence[V, E] {
	return &TableCongruence[V, E]{fin: fin}
}

// PathsEqual reduces both sides and compares normal forms.
// Complexity: O(len(lhs) + len(rhs))
func (c *TableCongruence[V, E]) PathsEqual(lhs, rhs graph.Path[V, E]) bool {
	return c.reduce(lhs) == c.reduce(rhs)
}

func (c *TableCongruence[V, E]) reduce(p graph.Path[V, E]) FinMor[V, E] {
	lifted := graph.MapPath(p,
		func(v V) V { return v },
		GenMor[V, E],
	)
	return c.fin.Compose(lifted)
}

// rewriteRule is one oriented equation: a contiguous generator
// sequence and its strictly shorter replacement.
type rewriteRule[E comparable] struct {
	from []E
	to   []E
}

// RewriteCongruence decides congruence by running the presentation's
// equations as length-reducing rewrite rules to a fixpoint. Each
// equation is oriented longer side → shorter side; equations whose
// sides have equal length cannot be oriented this way and are
// rejected at construction.
//
// Reduction always terminates (every step strictly shortens the
// path). Completeness additionally needs the oriented system to be
// confluent, which holds for the schema-sized presentations this
// kernel ships; a completion-based decider can replace this one
// behind the same Congruence interface.
type RewriteCongruence[V, E comparable] struct {
	g     graph.Graph[V, E]
	rules []rewriteRule[E]
}

// NewRewriteCongruence orients eqs over the generating graph g.
// Fails with ErrUnorientableEquation if any equation's sides have the
// same length.
// Complexity: O(total equation length)
func NewRewriteCongruence[V, E comparable](
	g graph.Graph[V, E],
	eqs []graph.PathEq[V, E],
) (*RewriteCongruence[V, E], error) {
	c := &RewriteCongruence[V, E]{g: g}
	for i, eq := range eqs {
		longer, shorter := eq.Lhs, eq.Rhs
		if longer.Len() < shorter.Len() {
			longer, shorter = shorter, longer
		}
		if longer.Len() == shorter.Len() {
			return nil, fmt.Errorf("%w: equation %d", ErrUnorientableEquation, i)
		}
		c.rules = append(c.rules, rewriteRule[E]{
			from: longer.Edges(),
			to:   shorter.Edges(),
		})
	}
	return c, nil
}

// PathsEqual normalizes both sides and compares structurally.
// Complexity: O(n²) per side in the worst case, n = path length
func (c *RewriteCongruence[V, E]) PathsEqual(lhs, rhs graph.Path[V, E]) bool {
	return graph.EqualPaths(c.normalize(lhs), c.normalize(rhs))
}

func (c *RewriteCongruence[V, E]) normalize(p graph.Path[V, E]) graph.Path[V, E] {
	if p.IsId() {
		return p
	}
	edges := p.Edges()
	for changed := true; changed; {
		changed = false
		for _, r := range c.rules {
			if i := indexOfRun(edges, r.from); i >= 0 {
				edges = spliceRun(edges, i, len(r.from), r.to)
				changed = true
			}
		}
	}
	if len(edges) == 0 {
		return graph.Id[V, E](p.SrcIn(c.g))
	}
	q, _ := graph.FromEdges[V](edges)
	return q
}

// indexOfRun returns the first index where run occurs contiguously in
// edges, or -1.
func indexOfRun[E comparable](edges, run []E) int {
	for i := 0; i+len(run) <= len(edges); i++ {
		match := true
		for j := range run {
			if edges[i+j] != run[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// spliceRun replaces edges[i:i+n] with repl.
func spliceRun[E comparable](edges []E, i, n int, repl []E) []E {
	out := make([]E, 0, len(edges)-n+len(repl))
	out = append(out, edges[:i]...)
	out = append(out, repl...)
	out = append(out, edges[i+n:]...)
	return out
}
