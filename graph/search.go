package graph

import (
	"errors"
	"fmt"
)

// ErrStartNotFound indicates a search from a vertex the graph does not
// contain.
var ErrStartNotFound = errors.New("graph: start vertex not found")

// BFSResult holds the breadth-first layering of a graph from a start
// vertex: visit order, unweighted distance, and the parent edge along
// one shortest edge sequence. The start vertex has depth 0 and no
// parent entry.
type BFSResult[V, E comparable] struct {
	Order  []V
	Depth  map[V]int
	Parent map[V]E
}

// BFS explores g outward from start in increasing edge distance,
// following edges forward. Neighbors are visited in edge insertion
// order, so the result is deterministic. maxDepth < 0 means unbounded.
// Complexity: O(V + E)
func BFS[V, E comparable](g FinGraph[V, E], start V, maxDepth int) (*BFSResult[V, E], error) {
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: BFS(%v)", ErrStartNotFound, start)
	}
	res := &BFSResult[V, E]{
		Depth:  map[V]int{start: 0},
		Parent: make(map[V]E),
	}
	queue := []V{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, v)
		if maxDepth >= 0 && res.Depth[v] == maxDepth {
			continue
		}
		for _, e := range g.OutEdges(v) {
			w := g.Tgt(e)
			if _, seen := res.Depth[w]; seen {
				continue
			}
			res.Depth[w] = res.Depth[v] + 1
			res.Parent[w] = e
			queue = append(queue, w)
		}
	}
	return res, nil
}

// Reachable reports whether tgt can be reached from src along forward
// edges; every vertex reaches itself.
// Complexity: O(V + E)
func Reachable[V, E comparable](g FinGraph[V, E], src, tgt V) bool {
	res, err := BFS(g, src, -1)
	if err != nil {
		return false
	}
	_, ok := res.Depth[tgt]
	return ok
}

// EnumeratePaths lists every path from src to tgt with at most maxLen
// edges, in lexicographic order of the edge insertion order; the
// identity path appears first when src equals tgt. These are the
// morphisms of the free category on g, truncated at maxLen.
// Complexity: O(paths * maxLen) emitted work; exponential in maxLen on
// dense graphs
func EnumeratePaths[V, E comparable](
	g FinGraph[V, E], src, tgt V, maxLen int,
) ([]Path[V, E], error) {
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: EnumeratePaths(%v)", ErrStartNotFound, src)
	}
	var out []Path[V, E]
	if src == tgt {
		out = append(out, Id[V, E](src))
	}
	var prefix []E
	var walk func(at V)
	walk = func(at V) {
		if len(prefix) == maxLen {
			return
		}
		for _, e := range g.OutEdges(at) {
			prefix = append(prefix, e)
			next := g.Tgt(e)
			if next == tgt {
				p, err := FromEdges[V](append([]E(nil), prefix...))
				if err != nil {
					panic(err) // unreachable: prefix is non-empty
				}
				out = append(out, p)
			}
			walk(next)
			prefix = prefix[:len(prefix)-1]
		}
	}
	walk(src)
	return out, nil
}
