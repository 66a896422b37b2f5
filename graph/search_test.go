package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcat/graph"
)

// diamond builds x -(e1)-> y -(e3)-> w with a parallel arm
// x -(e2)-> z -(e4)-> w and a loop l at w.
func diamond(t *testing.T) *graph.HashGraph[string, string] {
	t.Helper()

	g := graph.NewHashGraph[string, string]()
	for _, v := range []string{"x", "y", "z", "w"} {
		g.AddVertex(v)
	}
	g.AddEdge("e1", "x", "y")
	g.AddEdge("e2", "x", "z")
	g.AddEdge("e3", "y", "w")
	g.AddEdge("e4", "z", "w")
	g.AddEdge("l", "w", "w")
	require.True(t, g.IsValid())
	return g
}

func TestBFS(t *testing.T) {
	g := diamond(t)

	t.Run("layers in insertion order", func(t *testing.T) {
		res, err := graph.BFS[string, string](g, "x", -1)
		require.NoError(t, err)
		require.Equal(t, []string{"x", "y", "z", "w"}, res.Order)
		require.Equal(t, map[string]int{"x": 0, "y": 1, "z": 1, "w": 2}, res.Depth)
		// w was first reached through y
		require.Equal(t, "e3", res.Parent["w"])
		_, hasRoot := res.Parent["x"]
		require.False(t, hasRoot)
	})

	t.Run("depth limit", func(t *testing.T) {
		res, err := graph.BFS[string, string](g, "x", 1)
		require.NoError(t, err)
		require.Equal(t, []string{"x", "y", "z"}, res.Order)
	})

	t.Run("unknown start", func(t *testing.T) {
		_, err := graph.BFS[string, string](g, "ghost", -1)
		require.ErrorIs(t, err, graph.ErrStartNotFound)
	})
}

func TestReachable(t *testing.T) {
	g := diamond(t)

	require.True(t, graph.Reachable[string, string](g, "x", "w"))
	require.True(t, graph.Reachable[string, string](g, "y", "y"))
	require.False(t, graph.Reachable[string, string](g, "w", "x"))
	require.False(t, graph.Reachable[string, string](g, "ghost", "x"))
}

func TestEnumeratePaths(t *testing.T) {
	g := diamond(t)

	t.Run("two arms of the diamond", func(t *testing.T) {
		paths, err := graph.EnumeratePaths[string, string](g, "x", "w", 2)
		require.NoError(t, err)
		require.Len(t, paths, 2)
		require.True(t, graph.EqualPaths(graph.Pair[string]("e1", "e3"), paths[0]))
		require.True(t, graph.EqualPaths(graph.Pair[string]("e2", "e4"), paths[1]))
	})

	t.Run("identity first on a loop vertex", func(t *testing.T) {
		paths, err := graph.EnumeratePaths[string, string](g, "w", "w", 2)
		require.NoError(t, err)
		require.Len(t, paths, 3)
		require.True(t, paths[0].IsId())
		require.Equal(t, 1, paths[1].Len())
		require.Equal(t, 2, paths[2].Len())
	})

	t.Run("bound truncates", func(t *testing.T) {
		paths, err := graph.EnumeratePaths[string, string](g, "x", "w", 1)
		require.NoError(t, err)
		require.Empty(t, paths)
	})

	t.Run("unknown source", func(t *testing.T) {
		_, err := graph.EnumeratePaths[string, string](g, "ghost", "w", 1)
		require.ErrorIs(t, err, graph.ErrStartNotFound)
	})
}
