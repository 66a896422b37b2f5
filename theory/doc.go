// Package theory provides discrete double theories: finitely presented
// categories read as type signatures, together with a standard library
// of presentations and a uuid-keyed registry of constructed theories.
//
// A discrete double theory reads a presented category as a signature:
// objects become object types, morphisms become morphism types with a
// source and a target object type, and the category's composition and
// congruence become the composition law on types. ComposeTypes is
// partial the way a presentation is — it answers only for paths whose
// segments live in the presentation and meet end to end.
//
// Every theory is a virtual double category: object types are both the
// objects and the tight arrows (a discrete theory has no non-identity
// tight structure), morphism types are the proarrows, and a cell is an
// equality witness — an EqCell holds a path of morphism types and a
// single morphism type, and the theory has the cell exactly when the
// path composes to something congruent to it. Pasting-tree composition
// degenerates to reading the flattened frontier off the tree.
//
// The standard presentations (ThCategory, ThSchema, ThSignedCategory,
// ThCategoryLinks) each construct a fresh theory with a fresh ref;
// StdTheories returns them pre-registered in one Registry. A theory's
// ref is its identity: the surrounding application passes refs around
// and resolves them through a Registry, never the theory value itself.
//
// Error model:
//
//	ErrObTypeNotFound       - hom-type query on an unknown object type (panic).
//	ErrFrontierNotComposable - pasting frontier that does not compose (panic).
package theory
