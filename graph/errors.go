package graph

import "errors"

var (
	// ErrEmptyPath indicates an attempt to build a sequence path from zero edges.
	ErrEmptyPath = errors.New("graph: path must contain at least one edge")

	// ErrPathNotContained indicates a boundary query on a path that is not
	// contained in the given graph. Raised as a panic: the kernel's contract
	// is that callers only query already-validated paths.
	ErrPathNotContained = errors.New("graph: path is not contained in the graph")

	// ErrEdgeNotFound indicates a boundary query on an edge the graph does
	// not contain. Raised as a panic for the same reason.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrUnknownPathTag indicates a serialized path whose tag is neither
	// "Id" nor "Seq".
	ErrUnknownPathTag = errors.New("graph: unknown path tag")
)
