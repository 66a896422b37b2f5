package category

import "errors"

var (
	// ErrNotComposable indicates adjacent morphisms whose endpoints
	// disagree. Raised as a panic: the presentation was built
	// inconsistently or the caller skipped validation.
	ErrNotComposable = errors.New("category: adjacent morphisms are not composable")

	// ErrNoComposite indicates a composable generator pair for which the
	// presentation never recorded a composite. Raised as a panic by
	// Compose; use ComposeChecked where partiality is expected.
	ErrNoComposite = errors.New("category: no composite recorded for generator pair")

	// ErrMorNotFound indicates a boundary query on a morphism outside the
	// category. Raised as a panic.
	ErrMorNotFound = errors.New("category: morphism not found")

	// ErrUnorientableEquation indicates an equation whose sides have the
	// same length: it cannot run as a length-reducing rewrite rule.
	ErrUnorientableEquation = errors.New("category: equation sides have equal length, cannot orient")
)
