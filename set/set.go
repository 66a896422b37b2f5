package set

// Set is a membership-testing collection of elements of type T.
// A Set is not required to be finite or enumerable; generator tables
// use FinSet, while constraint-shaped collections ("all strings of
// length 3") can stay purely predicative via SetFunc.
type Set[T comparable] interface {
	// Contains reports whether x belongs to the set.
	Contains(x T) bool
}

// SetFunc adapts a predicate into a Set. It is the idiomatic carrier
// for possibly-infinite sets.
type SetFunc[T comparable] func(T) bool

// Contains reports whether x satisfies the predicate.
// Complexity: whatever the predicate costs.
func (f SetFunc[T]) Contains(x T) bool { return f(x) }

// FinSet is a finite, enumerable Set. Enumeration replays insertion
// order, which keeps every computation over generator tables
// deterministic without requiring an ordering on T.
type FinSet[T comparable] interface {
	Set[T]

	// Len returns the number of elements.
	Len() int

	// Elems returns the elements in insertion order.
	// The returned slice is a copy; callers may retain or mutate it.
	Elems() []T
}

// HashFinSet is a hash-backed FinSet with an insertion-order journal.
// The zero value is not usable; construct with NewHashFinSet.
type HashFinSet[T comparable] struct {
	index map[T]struct{}
	order []T
}

// NewHashFinSet builds a finite set containing the given elements.
// Duplicates collapse; first occurrence wins the insertion slot.
// Complexity: O(len(elems))
func NewHashFinSet[T comparable](elems ...T) *HashFinSet[T] {
	s := &HashFinSet[T]{index: make(map[T]struct{}, len(elems))}
	for _, x := range elems {
		s.Add(x)
	}
	return s
}

// Add inserts x, reporting whether it was actually new.
// Complexity: O(1) amortized
func (s *HashFinSet[T]) Add(x T) bool {
	if _, ok := s.index[x]; ok {
		return false
	}
	s.index[x] = struct{}{}
	s.order = append(s.order, x)
	return true
}

// Contains reports whether x belongs to the set.
// Complexity: O(1)
func (s *HashFinSet[T]) Contains(x T) bool {
	_, ok := s.index[x]
	return ok
}

// Len returns the number of elements.
// Complexity: O(1)
func (s *HashFinSet[T]) Len() int { return len(s.order) }

// Elems returns the elements in insertion order.
// Complexity: O(n)
func (s *HashFinSet[T]) Elems() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}
