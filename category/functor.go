package category

import (
	"fmt"

	"github.com/katalvlaran/lvlcat/graph"
	"github.com/katalvlaran/lvlcat/set"
)

// FpFunctor is a functor out of a finitely presented category into an
// arbitrary target category, defined by its action on generators. The
// target category is part of the data because evaluating the functor
// on a whole path requires composing in the target.
type FpFunctor[V, E, O comparable, M any] struct {
	dom    *FpCategory[V, E]
	cod    Category[O, M]
	obMap  *set.HashMapping[V, O]
	morMap *set.HashMapping[E, M]
}

// NewFpFunctor builds an empty functor from dom to cod; populate it
// with MapOb / MapMor, then Validate.
func NewFpFunctor[V, E, O comparable, M any](
	dom *FpCategory[V, E],
	cod Category[O, M],
) *FpFunctor[V, E, O, M] {
	return &FpFunctor[V, E, O, M]{
		dom:    dom,
		cod:    cod,
		obMap:  set.NewHashMapping[V, O](),
		morMap: set.NewHashMapping[E, M](),
	}
}

// MapOb records the image of an object generator.
func (f *FpFunctor[V, E, O, M]) MapOb(v V, image O) { f.obMap.Set(v, image) }

// MapMor records the image of a morphism generator.
func (f *FpFunctor[V, E, O, M]) MapMor(e E, image M) { f.morMap.Set(e, image) }

// ApplyOb evaluates the functor on an object generator.
func (f *FpFunctor[V, E, O, M]) ApplyOb(v V) (O, bool) { return f.obMap.Apply(v) }

// ApplyMor evaluates the functor on a morphism generator.
func (f *FpFunctor[V, E, O, M]) ApplyMor(e E) (M, bool) { return f.morMap.Apply(e) }

// ApplyPath evaluates the functor on a whole path: the generator
// images are substituted and composed in the target. Absent when any
// generator on the path has no image, or when the images fail to be a
// composable path of target morphisms — Validate reports the root
// cause of the latter separately, so ApplyPath never panics on a
// half-built functor.
// Complexity: O(len) plus target composition
func (f *FpFunctor[V, E, O, M]) ApplyPath(p graph.Path[V, E]) (M, bool) {
	var zero M
	imaged, ok := graph.PartialMapPath(p, f.obMap.Apply, f.morMap.Apply)
	if !ok {
		return zero, false
	}
	if o, isID := imaged.Vertex(); isID {
		if !f.cod.HasOb(o) {
			return zero, false
		}
		return f.cod.Compose(imaged), true
	}
	mors := imaged.Edges()
	for _, m := range mors {
		if !f.cod.HasMor(m) {
			return zero, false
		}
	}
	for i := 0; i+1 < len(mors); i++ {
		if f.cod.Cod(mors[i]) != f.cod.Dom(mors[i+1]) {
			return zero, false
		}
	}
	return f.cod.Compose(imaged), true
}

// FunctorFailureKind discriminates functor validation failures.
type FunctorFailureKind int

const (
	// MissingObImage marks an object generator whose image is undefined
	// or outside the target category.
	MissingObImage FunctorFailureKind = iota
	// MissingMorImage marks a morphism generator whose image is
	// undefined or outside the target category.
	MissingMorImage
	// DomMismatch marks a morphism generator whose image has the wrong
	// domain.
	DomMismatch
	// CodMismatch marks a morphism generator whose image has the wrong
	// codomain.
	CodMismatch
	// EquationViolated marks a source equation whose two sides map to
	// unequal target morphisms.
	EquationViolated
)

// String names the failure kind for diagnostics.
func (k FunctorFailureKind) String() string {
	switch k {
	case MissingObImage:
		return "MissingObImage"
	case MissingMorImage:
		return "MissingMorImage"
	case DomMismatch:
		return "DomMismatch"
	case CodMismatch:
		return "CodMismatch"
	case EquationViolated:
		return "EquationViolated"
	default:
		return fmt.Sprintf("FunctorFailureKind(%d)", int(k))
	}
}

// InvalidFpFunctor reports one functor validation failure with enough
// identity to localize it: the object generator, morphism generator,
// or equation index it concerns.
type InvalidFpFunctor[V, E comparable] struct {
	Kind FunctorFailureKind

	// ObGen names the generator for MissingObImage failures.
	ObGen V

	// MorGen names the generator for morphism-level failures.
	MorGen E

	// Equation indexes the violated equation for EquationViolated.
	Equation int
}

// String renders the failure for diagnostics.
func (f InvalidFpFunctor[V, E]) String() string {
	switch f.Kind {
	case MissingObImage:
		return fmt.Sprintf("%s(%v)", f.Kind, f.ObGen)
	case EquationViolated:
		return fmt.Sprintf("%s(%d)", f.Kind, f.Equation)
	default:
		return fmt.Sprintf("%s(%v)", f.Kind, f.MorGen)
	}
}

// Validate enumerates every failure without stopping at the first:
// object generators with missing images, morphism generators with
// missing images or wrong boundaries, and source equations whose two
// sides — when both images are defined — map to non-equal target
// morphisms. Endpoint checks are skipped for a generator whose own or
// endpoint images are missing, so one root cause yields one failure.
// Pure and idempotent.
// Complexity: O(generators + total equation length), plus target
// composition and equality costs
func (f *FpFunctor[V, E, O, M]) Validate() []InvalidFpFunctor[V, E] {
	var out []InvalidFpFunctor[V, E]
	gens := f.dom.Generators()

	for _, v := range gens.Vertices() {
		if o, ok := f.obMap.Apply(v); !ok || !f.cod.HasOb(o) {
			out = append(out, InvalidFpFunctor[V, E]{Kind: MissingObImage, ObGen: v})
		}
	}

	for _, e := range gens.Edges() {
		m, ok := f.morMap.Apply(e)
		if !ok || !f.cod.HasMor(m) {
			out = append(out, InvalidFpFunctor[V, E]{Kind: MissingMorImage, MorGen: e})
			continue
		}
		if o, ok := f.obMap.Apply(gens.Src(e)); ok && f.cod.HasOb(o) && f.cod.Dom(m) != o {
			out = append(out, InvalidFpFunctor[V, E]{Kind: DomMismatch, MorGen: e})
		}
		if o, ok := f.obMap.Apply(gens.Tgt(e)); ok && f.cod.HasOb(o) && f.cod.Cod(m) != o {
			out = append(out, InvalidFpFunctor[V, E]{Kind: CodMismatch, MorGen: e})
		}
	}

	for i, eq := range f.dom.Equations() {
		lhs, lhsOK := f.ApplyPath(eq.Lhs)
		rhs, rhsOK := f.ApplyPath(eq.Rhs)
		if lhsOK && rhsOK && !f.cod.MorEq(lhs, rhs) {
			out = append(out, InvalidFpFunctor[V, E]{Kind: EquationViolated, Equation: i})
		}
	}
	return out
}

// IsValid reports whether the functor has no failures.
func (f *FpFunctor[V, E, O, M]) IsValid() bool { return len(f.Validate()) == 0 }
