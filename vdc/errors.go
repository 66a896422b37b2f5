package vdc

import "errors"

var (
	// ErrUnknownCell indicates a tree node over a cell the hosting
	// structure does not contain. Raised as a panic: trees are built
	// from members only.
	ErrUnknownCell = errors.New("vdc: cell not in structure")

	// ErrUnknownProarrow indicates an identity leaf over a proarrow the
	// hosting structure does not contain. Raised as a panic.
	ErrUnknownProarrow = errors.New("vdc: proarrow not in structure")

	// ErrGraftArity indicates a graft with a subtree count different
	// from the root cell's domain arity. Raised as a panic.
	ErrGraftArity = errors.New("vdc: graft arity mismatch")

	// ErrGraftBoundary indicates a subtree whose codomain is not the
	// proarrow of the slot it was grafted into. Raised as a panic.
	ErrGraftBoundary = errors.New("vdc: graft boundary mismatch")
)
