// Package vdc provides virtual double categories and their pasting
// trees.
//
// A virtual double category has objects, tight arrows between objects,
// proarrows between objects, and cells. A cell's domain is a path of
// proarrows and its codomain a single proarrow; unlike a double
// category, proarrows carry no composition of their own — the only
// composition primitive is ComposeCells over a pasting tree, and a
// composite or unit proarrow exists exactly when the structure
// provides it (Composite and Unit are partial).
//
// A DblTree is the shape of one ComposeCells call: cell nodes with one
// child slot per proarrow of the node's domain path, and identity
// leaves that pass a proarrow through untouched. Trees are built by
// Single, IdLeaf and Graft; Graft checks arity and slot boundaries
// against the hosting structure and panics on a mismatch, so a built
// tree is always well-formed.
//
// Error model:
//
//	ErrUnknownCell     - tree node over a cell the structure lacks (panic).
//	ErrUnknownProarrow - identity leaf over an unknown proarrow (panic).
//	ErrGraftArity      - subtree count differs from the domain arity (panic).
//	ErrGraftBoundary   - a subtree's codomain disagrees with its slot (panic).
package vdc
