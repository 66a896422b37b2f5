package graph_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcat/graph"
)

// TestPath_Constructors verifies the four construction forms and the
// empty-sequence failure.
func TestPath_Constructors(t *testing.T) {
	id := graph.Id[string, string]("x")
	require.True(t, id.IsId())
	require.Equal(t, 0, id.Len())
	v, ok := id.Vertex()
	require.True(t, ok)
	require.Equal(t, "x", v)

	single := graph.Single[string]("e1")
	require.False(t, single.IsId())
	require.Equal(t, 1, single.Len())
	e, ok := single.OnlyEdge()
	require.True(t, ok)
	require.Equal(t, "e1", e)

	pair := graph.Pair[string]("e1", "e2")
	require.Equal(t, 2, pair.Len())
	_, ok = pair.OnlyEdge()
	require.False(t, ok, "OnlyEdge is defined only at length 1")

	seq, err := graph.FromEdges[string]([]string{"e1", "e2", "e3"})
	require.NoError(t, err)
	require.Equal(t, []string{"e1", "e2", "e3"}, seq.Edges())

	_, err = graph.FromEdges[string]([]string(nil))
	require.ErrorIs(t, err, graph.ErrEmptyPath)
}

// TestPath_IdentityContainment: an identity path at v is contained in
// the graph iff the graph has vertex v.
func TestPath_IdentityContainment(t *testing.T) {
	g := twoChain()

	for _, v := range g.Vertices() {
		require.True(t, graph.Id[string, string](v).ContainedIn(g))
	}
	require.False(t, graph.Id[string, string]("ghost").ContainedIn(g))
}

// TestPath_PairContainment: for composable edges e1, e2, the two-edge
// path is contained and its endpoints are e1's source and e2's target.
func TestPath_PairContainment(t *testing.T) {
	g := twoChain()
	p := graph.Pair[string]("e1", "e2")

	require.True(t, p.ContainedIn(g))
	require.Equal(t, g.Src("e1"), p.SrcIn(g))
	require.Equal(t, g.Tgt("e2"), p.TgtIn(g))

	// Non-composable order breaks pairwise endpoint agreement.
	require.False(t, graph.Pair[string]("e2", "e1").ContainedIn(g))
	// A foreign edge breaks containment outright.
	require.False(t, graph.Pair[string]("e1", "e9").ContainedIn(g))
}

// TestPath_BoundaryPrecondition verifies that boundary queries on a
// non-contained path fail loudly.
func TestPath_BoundaryPrecondition(t *testing.T) {
	g := twoChain()
	bad := graph.Pair[string]("e2", "e1")

	require.Panics(t, func() { bad.SrcIn(g) })
	require.Panics(t, func() { bad.TgtIn(g) })
}

// TestPath_Equal verifies structural equality across both cases.
func TestPath_Equal(t *testing.T) {
	require.True(t, graph.EqualPaths(graph.Id[string, string]("x"), graph.Id[string, string]("x")))
	require.False(t, graph.EqualPaths(graph.Id[string, string]("x"), graph.Id[string, string]("y")))
	require.True(t, graph.EqualPaths(graph.Pair[string]("a", "b"), graph.Pair[string]("a", "b")))
	require.False(t, graph.EqualPaths(graph.Pair[string]("a", "b"), graph.Single[string]("a")))
	require.False(t, graph.EqualPaths(graph.Id[string, string]("x"), graph.Single[string]("x")))

	// EqualFunc compares edges through a caller-supplied predicate.
	caseless := func(a, b string) bool { return a == b || a == "A" && b == "a" }
	require.True(t, graph.Single[string]("A").EqualFunc(graph.Single[string]("a"), caseless))
}

// TestMapPath covers the total, partial, and fallible relabelings and
// their short-circuiting behavior.
func TestMapPath(t *testing.T) {
	upper := func(s string) string { return s + "!" }
	p := graph.Pair[string]("a", "b")

	mapped := graph.MapPath(p, upper, upper)
	require.Equal(t, []string{"a!", "b!"}, mapped.Edges())

	idMapped := graph.MapPath(graph.Id[string, string]("x"), upper, upper)
	v, _ := idMapped.Vertex()
	require.Equal(t, "x!", v)

	t.Run("Partial", func(t *testing.T) {
		defined := func(s string) (string, bool) { return s, s != "b" }
		_, ok := graph.PartialMapPath(p, defined, defined)
		require.False(t, ok, "must short-circuit on the undefined edge")

		q, ok := graph.PartialMapPath(graph.Single[string]("a"), defined, defined)
		require.True(t, ok)
		require.Equal(t, []string{"a"}, q.Edges())
	})

	t.Run("Fallible", func(t *testing.T) {
		boom := errors.New("boom")
		try := func(s string) (string, error) {
			if s == "b" {
				return "", boom
			}
			return s, nil
		}
		_, err := graph.TryMapPath(p, try, try)
		require.ErrorIs(t, err, boom)

		q, err := graph.TryMapPath(graph.Single[string]("a"), try, try)
		require.NoError(t, err)
		require.Equal(t, []string{"a"}, q.Edges())
	})
}

// TestFlatten verifies concatenation of a path of paths, including the
// all-identities degeneracy.
func TestFlatten(t *testing.T) {
	inner1 := graph.Pair[string]("a", "b")
	inner2 := graph.Single[string]("c")
	outer := graph.Pair[string, graph.Path[string, string]](inner1, inner2)

	flat := graph.Flatten(outer)
	require.Equal(t, []string{"a", "b", "c"}, flat.Edges())

	// Identity edges vanish under concatenation.
	withId, err := graph.FromEdges[string]([]graph.Path[string, string]{
		graph.Id[string, string]("x"),
		inner2,
		graph.Id[string, string]("y"),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"c"}, graph.Flatten(withId).Edges())

	// A path of identity paths flattens to their common identity.
	allIds := graph.Pair[string, graph.Path[string, string]](
		graph.Id[string, string]("x"),
		graph.Id[string, string]("x"),
	)
	flatId := graph.Flatten(allIds)
	require.True(t, flatId.IsId())
	v, _ := flatId.Vertex()
	require.Equal(t, "x", v)

	// Flattening an identity-of-paths gives the identity.
	outerId := graph.Id[string, graph.Path[string, string]]("w")
	require.True(t, graph.Flatten(outerId).IsId())
}

// TestPath_JSON verifies the tagged wire shape round-trips both cases
// and rejects malformed payloads.
func TestPath_JSON(t *testing.T) {
	cases := []struct {
		name string
		path graph.Path[string, string]
		want string
	}{
		{"Id", graph.Id[string, string]("x"), `{"tag":"Id","content":"x"}`},
		{"Seq", graph.Pair[string]("e1", "e2"), `{"tag":"Seq","content":["e1","e2"]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.path)
			require.NoError(t, err)
			require.JSONEq(t, tc.want, string(data))

			var back graph.Path[string, string]
			require.NoError(t, json.Unmarshal(data, &back))
			require.True(t, graph.EqualPaths(tc.path, back))
		})
	}

	var p graph.Path[string, string]
	err := json.Unmarshal([]byte(`{"tag":"Zig","content":"x"}`), &p)
	require.ErrorIs(t, err, graph.ErrUnknownPathTag)

	err = json.Unmarshal([]byte(`{"tag":"Seq","content":[]}`), &p)
	require.ErrorIs(t, err, graph.ErrEmptyPath)
}

// TestPathEq_Validate verifies exhaustive equation checking.
func TestPathEq_Validate(t *testing.T) {
	g := graph.NewHashGraph[string, string]()
	g.AddVertex("x")
	g.AddVertex("y")
	g.AddEdge("f", "x", "y")
	g.AddEdge("g", "x", "y")
	g.AddEdge("h", "y", "x")

	cases := []struct {
		name string
		eq   graph.PathEq[string, string]
		want []graph.PathEqFailureKind
	}{
		{
			"Parallel",
			graph.NewPathEq(graph.Single[string]("f"), graph.Single[string]("g")),
			nil,
		},
		{
			"RoundTripVsIdentity",
			graph.NewPathEq(graph.Pair[string]("f", "h"), graph.Id[string, string]("x")),
			nil,
		},
		{
			"LhsForeign",
			graph.NewPathEq(graph.Single[string]("nope"), graph.Single[string]("f")),
			[]graph.PathEqFailureKind{graph.EqLhs},
		},
		{
			"EndpointsDisagree",
			graph.NewPathEq(graph.Single[string]("f"), graph.Single[string]("h")),
			[]graph.PathEqFailureKind{graph.EqSrc, graph.EqTgt},
		},
		{
			"BothForeign",
			graph.NewPathEq(graph.Single[string]("no"), graph.Single[string]("pe")),
			[]graph.PathEqFailureKind{graph.EqLhs, graph.EqRhs},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			failures := tc.eq.Validate(g)
			var kinds []graph.PathEqFailureKind
			for _, f := range failures {
				kinds = append(kinds, f.Kind)
			}
			require.Equal(t, tc.want, kinds)
			require.Equal(t, len(tc.want) == 0, tc.eq.IsValid(g))
		})
	}
}

// TestFailureStrings pins the diagnostic rendering used by callers
// that surface validation reports.
func TestFailureStrings(t *testing.T) {
	f := graph.InvalidGraph[string]{Kind: graph.MissingSrc, Edge: "e"}
	require.Equal(t, "MissingSrc(e)", f.String())
	require.Equal(t, "EqTgt", graph.InvalidPathEq{Kind: graph.EqTgt}.String())
	require.Equal(t, "MissingTgt", fmt.Sprint(graph.MissingTgt))
}
