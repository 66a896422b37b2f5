// Package set provides the membership and partial-function substrate
// that every generator table in lvlcat is built on.
//
// Two families of types live here:
//
//   - Set / FinSet — membership-testing collections. A Set may be
//     infinite (SetFunc wraps an arbitrary predicate); a FinSet is
//     finite and enumerable with deterministic insertion order.
//     HashFinSet is the canonical concrete finite set.
//
//   - Mapping / Column — partial functions K → V. A Mapping answers
//     Apply(k) with an explicit (value, ok) pair; a Column additionally
//     answers Preimage(v), the reverse lookup. HashColumn scans its
//     forward table on demand; IndexedColumn maintains an eager
//     inverted index for O(1) preimage queries.
//
// All containers follow the kernel's build-then-freeze lifecycle:
// Add/Set are the only mutators, elements are never removed, and a
// container is owned exclusively by the structure that created it.
// Enumeration (Elems, Keys, Preimage) always replays insertion order,
// so every downstream computation is deterministic.
//
// Complexity summary:
//
//	HashFinSet:    Contains O(1), Add O(1) amortized, Elems O(n)
//	HashMapping:   Apply O(1), Set O(1) amortized, Keys O(n)
//	HashColumn:    Preimage O(n) per query
//	IndexedColumn: Preimage O(k) for k hits, Set O(1) amortized
package set
