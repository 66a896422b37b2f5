// Package lvlcat is an in-memory kernel for applied category theory —
// finite graphs, paths, presented categories, double computads and
// discrete double theories, all built from generators and relations.
//
// 🚀 What is lvlcat?
//
//	A small, pure-Go structural algebra engine that brings together:
//		• Set / Mapping primitives: membership sets & partial functions with preimage indexes
//		• Graphs & paths: directed multigraphs, the Path sum type, path equations
//		• Categories: discrete, free (path), and finitely presented categories
//		• Functors: validated structure-preserving maps between presentations
//		• Double computads: the generating data of double categories
//		• Virtual double categories: pasting trees and tree-shaped composition
//		• Discrete double theories: presented categories read as type signatures
//
// ✨ Why choose lvlcat?
//
//   - Generator-first – every structure is a finite table of generators plus relations
//   - Checked, not assumed – well-formedness (commuting squares, equation
//     preservation) is validated exhaustively with typed failure reports
//   - Build then freeze – append-only builders, immutable read-only snapshots
//   - Pure Go – no cgo, no I/O, no hidden state
//
// Everything is organized under six subpackages, leaves first:
//
//	set/      — membership sets, finite sets, columns (partial functions + preimage)
//	graph/    — directed multigraphs, Path, path equations
//	category/ — Category capability, presentations, congruence, functors
//	computad/ — double computads and their commuting-square validation
//	vdc/      — virtual double categories and pasting trees
//	theory/   — discrete double theories and the standard theory library
//
// Quick ASCII example — one cell of a double computad:
//
//	      p₁        p₂
//	   x ----→ y ----→ z
//	   │                │
//	 f │        α       │ g
//	   ↓                ↓
//	   w -------------→ v
//	            q
//
//	α has domain path [p₁,p₂], codomain q, source f and target g;
//	validation checks the square commutes at all four corners.
//
// Dive into the package docs for the full capability hierarchy, from
// set.FinSet up to theory.DiscreteDblTheory.
//
//	go get github.com/katalvlaran/lvlcat
package lvlcat
