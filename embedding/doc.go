// Package embedding holds the central mutable state of a k-page book
// embedding: the dual spine arrays, the per-edge page distribution, a cache
// of the total crossing count, and a pluggable crossing calculator.
//
// What:
//
//   - Embedding.spine[pos] -> vertex index; Embedding.vertexOnSpine[vertex]
//     -> pos; the two are always mutual inverses (spec.md §8, invariant 1).
//   - Embedding.distribution[edgeIndex] -> page index in [0,k), or the
//     PagePending sentinel during incremental construction by some edist
//     heuristics.
//   - A cached crossing count, invalidated by every mutator, recomputed
//     lazily by the pluggable Counter on next read.
//
// Why a pluggable Counter interface, not a concrete type: spec.md §4.C
// requires three interchangeable crossing-count algorithms that must agree
// bit-for-bit on every valid embedding; modeling the dependency as an
// interface resolved once per Embedding (DESIGN NOTES §9, "Pluggable
// counter") keeps Embedding ignorant of which one is active, and lets tests
// swap calculators to assert agreement (spec.md scenario S6).
//
// Key predicate: CanCross(u,v,x,y) on spine positions (u<v, x<y) returns
// true iff (u<x<v<y) or (x<u<y<v) — independent of page assignment; all
// three counters and every greedy/annealing move apply this predicate to
// the smaller/larger-endpoint positions of a pair of edges.
//
// Errors:
//
//   - ErrPageOutOfRange     a page index outside [0,k) (and != PagePending)
//   - ErrInvariantBroken    spine/vertexOnSpine are not mutual inverses, or
//     a counter returned a negative crossing count (bug class, spec.md §7)
//
// The position mutators (SwapVertices, SwapPositions, MoveVertexTo,
// SetSpine) take no out-of-range position as a possibility: every caller in
// this module derives positions from w.Positions(n), e.VertexOnSpine, or a
// freshly built permutation, so an out-of-range index here is a caller bug,
// not a contract violation to recover from (spec.md §7 distinguishes the
// two; there is no external, untrusted caller of these hot-path mutators).
//
// Complexity: all single-edge/vertex mutators are O(1) plus cache
// invalidation; MoveVertexTo is O(|newPos-oldPos|) (DESIGN NOTES §9, kept
// as sequential adjacent swaps rather than a single rotation, to preserve
// reproducible, RNG-order-dependent downstream behavior per the decided
// Open Question in SPEC_FULL.md §9.3).
package embedding
