package set

// Mapping is a partial function from keys K to values V.
// Partiality is explicit: Apply returns (zero, false) for keys the
// mapping never defined, and that absence is an ordinary outcome, not
// an error.
type Mapping[K comparable, V any] interface {
	// Apply evaluates the mapping at k.
	Apply(k K) (V, bool)

	// IsDefined reports whether the mapping is defined at k.
	IsDefined(k K) bool
}

// MutMapping is a Mapping that can still be extended. Tables are
// append-only: Set on an already-defined key overwrites during the
// build phase and is never called after the owner freezes.
type MutMapping[K comparable, V any] interface {
	Mapping[K, V]

	// Set defines (or redefines, during building) the value at k.
	Set(k K, v V)
}

// HashMapping is the canonical hash-backed MutMapping with an
// insertion-order key journal. The zero value is not usable; construct
// with NewHashMapping.
type HashMapping[K comparable, V any] struct {
	forward map[K]V
	order   []K
}

// NewHashMapping builds an empty mapping.
// Complexity: O(1)
func NewHashMapping[K comparable, V any]() *HashMapping[K, V] {
	return &HashMapping[K, V]{forward: make(map[K]V)}
}

// Apply evaluates the mapping at k.
// Complexity: O(1)
func (m *HashMapping[K, V]) Apply(k K) (V, bool) {
	v, ok := m.forward[k]
	return v, ok
}

// IsDefined reports whether the mapping is defined at k.
// Complexity: O(1)
func (m *HashMapping[K, V]) IsDefined(k K) bool {
	_, ok := m.forward[k]
	return ok
}

// Set defines the value at k.
// Complexity: O(1) amortized
func (m *HashMapping[K, V]) Set(k K, v V) {
	if _, ok := m.forward[k]; !ok {
		m.order = append(m.order, k)
	}
	m.forward[k] = v
}

// Keys returns the defined keys in insertion order.
// Complexity: O(n)
func (m *HashMapping[K, V]) Keys() []K {
	out := make([]K, len(m.order))
	copy(out, m.order)
	return out
}

// Len returns the number of defined keys.
// Complexity: O(1)
func (m *HashMapping[K, V]) Len() int { return len(m.order) }

// Column is a partial function with a reverse lookup: Preimage(v)
// enumerates every key mapped to v. Boundary tables (src/tgt of edges,
// dom/cod of tight edges) are Columns so that incidence queries fall
// out of the preimage.
type Column[K, V comparable] interface {
	MutMapping[K, V]

	// Preimage returns, in insertion order, every key k with m(k) = v.
	Preimage(v V) []K
}

// HashColumn is a forward-only Column: Preimage scans the forward
// table. Use it when reverse lookups are rare or the table is small.
type HashColumn[K, V comparable] struct {
	HashMapping[K, V]
}

// NewHashColumn builds an empty scanning column.
// Complexity: O(1)
func NewHashColumn[K, V comparable]() *HashColumn[K, V] {
	return &HashColumn[K, V]{HashMapping[K, V]{forward: make(map[K]V)}}
}

// Preimage scans the table for keys mapped to v.
// Complexity: O(n)
func (c *HashColumn[K, V]) Preimage(v V) []K {
	var out []K
	for _, k := range c.order {
		if c.forward[k] == v {
			out = append(out, k)
		}
	}
	return out
}

// IndexedColumn is a Column with an eagerly maintained inverted index;
// Preimage is proportional to the number of hits. Boundary tables that
// back incidence queries (OutEdges, InEdges) use IndexedColumn.
type IndexedColumn[K, V comparable] struct {
	HashMapping[K, V]
	inverse map[V][]K
}

// NewIndexedColumn builds an empty indexed column.
// Complexity: O(1)
func NewIndexedColumn[K, V comparable]() *IndexedColumn[K, V] {
	return &IndexedColumn[K, V]{
		HashMapping: HashMapping[K, V]{forward: make(map[K]V)},
		inverse:     make(map[V][]K),
	}
}

// Set defines the value at k and updates the inverted index.
// Redefining a key during the build phase migrates its index slot.
// Complexity: O(1) amortized; O(preimage) if k was already defined.
func (c *IndexedColumn[K, V]) Set(k K, v V) {
	if old, ok := c.forward[k]; ok {
		if old == v {
			return
		}
		c.inverse[old] = removeKey(c.inverse[old], k)
	}
	c.HashMapping.Set(k, v)
	c.inverse[v] = append(c.inverse[v], k)
}

// Preimage returns the inverted-index slot for v.
// Complexity: O(k) for k hits
func (c *IndexedColumn[K, V]) Preimage(v V) []K {
	slot := c.inverse[v]
	if len(slot) == 0 {
		return nil
	}
	out := make([]K, len(slot))
	copy(out, slot)
	return out
}

// removeKey drops the first occurrence of k, preserving order.
func removeKey[K comparable](keys []K, k K) []K {
	for i, cur := range keys {
		if cur == k {
			return append(keys[:i:i], keys[i+1:]...)
		}
	}
	return keys
}
