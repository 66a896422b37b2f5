package computad

import "errors"

var (
	// ErrEdgeNotFound indicates a boundary query on a tight edge the
	// computad does not contain. Raised as a panic: the kernel's
	// contract is that callers only query recorded generators.
	ErrEdgeNotFound = errors.New("computad: tight edge not found")

	// ErrProedgeNotFound indicates a boundary query on an unknown
	// proedge. Raised as a panic for the same reason.
	ErrProedgeNotFound = errors.New("computad: proedge not found")

	// ErrCellNotFound indicates a boundary query on an unknown cell.
	// Raised as a panic for the same reason.
	ErrCellNotFound = errors.New("computad: cell not found")
)
