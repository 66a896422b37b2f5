package theory

import "errors"

var (
	// ErrObTypeNotFound indicates a hom-type or unit query on an object
	// type the theory does not declare. Raised as a panic: callers only
	// query declared types.
	ErrObTypeNotFound = errors.New("theory: object type not found")

	// ErrFrontierNotComposable indicates a pasting tree whose leaf
	// frontier does not compose in the theory. Raised as a panic: trees
	// built through the vdc constructors always have composable
	// frontiers, so hitting this means a hand-assembled tree.
	ErrFrontierNotComposable = errors.New("theory: pasting frontier does not compose")
)
