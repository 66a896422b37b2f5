package category

import "github.com/katalvlaran/lvlcat/graph"

// FreeCategory is the path category of a finite graph: objects are
// vertices, morphisms are paths, composition is concatenation and
// morphism equality is structural. Every other presentation in this
// package is a quotient of a free category.
type FreeCategory[V, E comparable] struct {
	g graph.FinGraph[V, E]
}

// NewFreeCategory builds the free category on g.
// Complexity: O(1)
func NewFreeCategory[V, E comparable](g graph.FinGraph[V, E]) *FreeCategory[V, E] {
	return &FreeCategory[V, E]{g: g}
}

// UnderlyingGraph returns the generating graph.
func (c *FreeCategory[V, E]) UnderlyingGraph() graph.FinGraph[V, E] { return c.g }

// HasOb reports whether x is a vertex of the generating graph.
func (c *FreeCategory[V, E]) HasOb(x V) bool { return c.g.HasVertex(x) }

// HasMor reports whether f is a path contained in the generating graph.
// Complexity: O(len(f))
func (c *FreeCategory[V, E]) HasMor(f graph.Path[V, E]) bool { return f.ContainedIn(c.g) }

// Dom returns the source of the path. Panics if f is not contained.
// Complexity: O(len(f))
func (c *FreeCategory[V, E]) Dom(f graph.Path[V, E]) V { return f.SrcIn(c.g) }

// Cod returns the target of the path. Panics if f is not contained.
// Complexity: O(len(f))
func (c *FreeCategory[V, E]) Cod(f graph.Path[V, E]) V { return f.TgtIn(c.g) }

// Compose concatenates a path of paths.
// Complexity: O(total edges)
func (c *FreeCategory[V, E]) Compose(path graph.Path[V, graph.Path[V, E]]) graph.Path[V, E] {
	return graph.Flatten(path)
}

// MorEq is structural path equality: a free category imposes no
// relations.
func (c *FreeCategory[V, E]) MorEq(f, g graph.Path[V, E]) bool {
	return graph.EqualPaths(f, g)
}

// Homs enumerates the morphisms from x to y with at most maxLen
// generating edges. Hom-sets of a free category on a graph with cycles
// are infinite, so the truncation bound is part of the query.
// Complexity: exponential in maxLen on dense graphs
func (c *FreeCategory[V, E]) Homs(x, y V, maxLen int) ([]graph.Path[V, E], error) {
	return graph.EnumeratePaths(c.g, x, y, maxLen)
}

// ObGenerators returns the vertices in insertion order.
func (c *FreeCategory[V, E]) ObGenerators() []V { return c.g.Vertices() }

// MorGenerators returns the single-edge paths in edge insertion order.
// Complexity: O(E)
func (c *FreeCategory[V, E]) MorGenerators() []graph.Path[V, E] {
	edges := c.g.Edges()
	out := make([]graph.Path[V, E], len(edges))
	for i, e := range edges {
		out[i] = graph.Single[V](e)
	}
	return out
}
