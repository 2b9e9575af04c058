// Package greedy implements the local-search optimizers of spec.md §4.F:
// two inner primitives (best-page-for-edge, best-position-for-vertex via
// the swap-gain closed form) and two round-based optimizers
// built on them (TwoStep and Combined).
//
// What:
//
//   - SwapGain(e, p): the change in crossing count from exchanging the
//     vertices at adjacent spine positions p and p+1 (wrapping to the pair
//     n-1,0), computed in O(deg(L)*deg(R)) without touching the crossing
//     cache (spec.md §4.F, "the key O(Delta^2) micro-kernel").
//   - BestPageForEdge(e, edgeIdx): moves one edge to its min-crossing page.
//     Evaluated by brute-force trial of all k candidate pages via a fresh
//     Crossings() recount per trial, rather than a closed-form delta like
//     SwapGain's: moving one edge can change crossings against every other
//     edge sharing either its old or new page, so there is no
//     bounded-degree shortcut analogous to the swap-gain formula (see
//     bestpage.go's doc comment).
//   - BestPositionForVertex(e, v): sweeps v rightward, then leftward,
//     through every spine position using SwapGain to find the
//     crossing-minimizing position without a full recount, then applies
//     the winning sequence of swaps. O(n*Delta^2).
//   - TwoStep: alternates full rounds of BestPositionForVertex and
//     BestPageForEdge, visiting vertices and edges in the caller-supplied
//     orders (sequential index order when nil), until a round yields no
//     gain.
//   - Combined: for each vertex in the caller-supplied order (sequential
//     index order when nil), re-pages its incident
//     edges at its current position, then tries every spine position
//     (keeping pages re-optimized at each candidate), keeping the best.
//     Repeats until a round yields no gain. The strongest local-search
//     operator (spec.md §4.F).
//
// Why no shared "optimizer" interface with package anneal: spec.md
// describes greedy and simulated annealing as two genuinely different
// control structures (deterministic round-by-round hill-climbing vs. a
// fixed-iteration-count Boltzmann schedule); package harness is the
// common result/termination contract both report through (BestSolution,
// Reason), not a shared step interface.
//
// Termination (spec.md §4.F, §7): a round yields zero gain, or the
// caller's should predicate reports false (checked once per outer round,
// not inside the O(n*Delta^2) inner sweep, per spec.md §5 "no suspension
// points inside optimizer loops"). Reaching Problem.KnownOptimum or a
// wall-clock budget ends a run only through that predicate (for example
// harness.ShouldContinue); this package does not read KnownOptimum.
package greedy
