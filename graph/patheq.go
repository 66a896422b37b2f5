package graph

import "fmt"

// PathEq is an equation between two paths. It is well formed in a
// graph when both sides are contained in the graph and share source
// and target; presentations impose such equations on free categories.
type PathEq[V comparable, E any] struct {
	Lhs Path[V, E]
	Rhs Path[V, E]
}

// NewPathEq builds the equation lhs = rhs.
func NewPathEq[V comparable, E any](lhs, rhs Path[V, E]) PathEq[V, E] {
	return PathEq[V, E]{Lhs: lhs, Rhs: rhs}
}

// PathEqFailureKind discriminates path-equation failures.
type PathEqFailureKind int

const (
	// EqLhs marks a left-hand side not contained in the graph.
	EqLhs PathEqFailureKind = iota
	// EqRhs marks a right-hand side not contained in the graph.
	EqRhs
	// EqSrc marks contained sides whose sources differ.
	EqSrc
	// EqTgt marks contained sides whose targets differ.
	EqTgt
)

// String names the failure kind for diagnostics.
func (k PathEqFailureKind) String() string {
	switch k {
	case EqLhs:
		return "EqLhs"
	case EqRhs:
		return "EqRhs"
	case EqSrc:
		return "EqSrc"
	case EqTgt:
		return "EqTgt"
	default:
		return fmt.Sprintf("PathEqFailureKind(%d)", int(k))
	}
}

// InvalidPathEq reports one failure of a path equation.
type InvalidPathEq struct {
	Kind PathEqFailureKind
}

// String renders the failure for diagnostics.
func (f InvalidPathEq) String() string { return f.Kind.String() }

// Validate checks the equation against g, reporting every failure:
// a side that is not contained, and — only when both sides are
// contained — disagreeing sources or targets.
// Complexity: O(len(Lhs) + len(Rhs))
func (eq PathEq[V, E]) Validate(g Graph[V, E]) []InvalidPathEq {
	var out []InvalidPathEq
	lhsOK := eq.Lhs.ContainedIn(g)
	if !lhsOK {
		out = append(out, InvalidPathEq{Kind: EqLhs})
	}
	rhsOK := eq.Rhs.ContainedIn(g)
	if !rhsOK {
		out = append(out, InvalidPathEq{Kind: EqRhs})
	}
	if lhsOK && rhsOK {
		if eq.Lhs.SrcIn(g) != eq.Rhs.SrcIn(g) {
			out = append(out, InvalidPathEq{Kind: EqSrc})
		}
		if eq.Lhs.TgtIn(g) != eq.Rhs.TgtIn(g) {
			out = append(out, InvalidPathEq{Kind: EqTgt})
		}
	}
	return out
}

// IsValid reports whether the equation is well formed in g.
// Complexity: O(len(Lhs) + len(Rhs))
func (eq PathEq[V, E]) IsValid(g Graph[V, E]) bool {
	return len(eq.Validate(g)) == 0
}
