package set_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcat/set"
)

// TestHashMapping_ApplyPartiality verifies explicit (value, ok)
// partiality and insertion-order key enumeration.
func TestHashMapping_ApplyPartiality(t *testing.T) {
	m := set.NewHashMapping[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)

	v, ok := m.Apply("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = m.Apply("missing")
	require.False(t, ok, "undefined key must report absent, not error")
	require.False(t, m.IsDefined("missing"))

	require.Equal(t, []string{"a", "b"}, m.Keys())
	require.Equal(t, 2, m.Len())
}

// TestHashMapping_Overwrite verifies that redefining a key during the
// build phase keeps its original insertion slot.
func TestHashMapping_Overwrite(t *testing.T) {
	m := set.NewHashMapping[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10)

	v, ok := m.Apply("a")
	require.True(t, ok)
	require.Equal(t, 10, v)
	require.Equal(t, []string{"a", "b"}, m.Keys())
}

// TestColumn_Preimage exercises both Column implementations against the
// same table and requires identical answers.
func TestColumn_Preimage(t *testing.T) {
	build := func(c set.Column[string, string]) set.Column[string, string] {
		c.Set("e1", "v")
		c.Set("e2", "w")
		c.Set("e3", "v")
		return c
	}

	cols := map[string]set.Column[string, string]{
		"HashColumn":    build(set.NewHashColumn[string, string]()),
		"IndexedColumn": build(set.NewIndexedColumn[string, string]()),
	}
	for name, c := range cols {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, []string{"e1", "e3"}, c.Preimage("v"))
			require.Equal(t, []string{"e2"}, c.Preimage("w"))
			require.Empty(t, c.Preimage("absent"))
		})
	}
}

// TestIndexedColumn_Migrate verifies that redefining a key moves its
// inverted-index slot instead of duplicating it.
func TestIndexedColumn_Migrate(t *testing.T) {
	c := set.NewIndexedColumn[string, string]()
	c.Set("e1", "v")
	c.Set("e2", "v")
	c.Set("e1", "w")

	require.Equal(t, []string{"e2"}, c.Preimage("v"))
	require.Equal(t, []string{"e1"}, c.Preimage("w"))

	// Setting the same value again is a no-op.
	c.Set("e1", "w")
	require.Equal(t, []string{"e1"}, c.Preimage("w"))
}
