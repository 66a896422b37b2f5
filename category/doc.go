// Package category provides the Category capability and its concrete
// presentations: discrete categories, free (path) categories, finitely
// presented categories, and finitely tabulated categories, together
// with validated functors between presentations.
//
// The capability is path-biased: composition is a single operation on
// a whole path of morphisms, never a binary fold. An implementation is
// free to pick any evaluation order; pairwise composition and
// identities are derived helpers (ComposePair, Identity), not
// primitives.
//
// The four concrete representations, one capability:
//
//   - DiscreteCategory — objects from a finite set, morphisms are the
//     identities only.
//   - FreeCategory — the path category of a finite graph: morphisms
//     are paths, composition is concatenation, equality is structural.
//   - FpCategory — a generating graph plus path equations; morphisms
//     are paths and equality is decided modulo the equations by a
//     pluggable Congruence.
//   - FinCategory — a presentation small enough to tabulate: every
//     composable generator pair carries a recorded composite (an
//     identity or another generator), and composing a path folds
//     through the table. Missing or ill-bounded table entries are
//     programmer errors and fail loudly.
//
// Deciding whether two paths are congruent under a finite equation set
// is isolated behind the Congruence interface. The shipped decider,
// TableCongruence, reduces both sides to normal form through a
// FinCategory's composition table; it is sound and complete exactly
// when the table is a confluent orientation of the equations, which is
// the case for every standard theory this kernel ships. A rewriting or
// e-graph decider can be substituted without touching any consumer.
//
// FpFunctor is a generator-to-image map out of an FpCategory into an
// arbitrary target Category. Validation enumerates every failure —
// missing images, boundary mismatches, violated equations — without
// stopping at the first, so diagnostics can present all problems in
// one pass.
package category
