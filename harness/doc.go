// Package harness implements the optimizer-run bookkeeping of spec.md
// §4.H: a best-so-far deep-copy snapshot, wall-clock and iteration
// counters, and the termination-reason contract shared by package greedy
// and package anneal.
//
// What:
//
//   - Harness: owns one "best embedding seen" snapshot (SetLocalBest copies
//     in only on strict improvement, BestSolution hands a copy back out),
//     a wall-clock budget (ShouldContinue, BudgetExceeded), and an
//     iteration counter.
//   - Reason: ReasonRoundGainZero / ReasonBudgetExceeded /
//     ReasonOptimumReached, spec.md §7's "not errors" status enum.
//   - CheckOptimumInvariant: the "current<target is an invariant violation"
//     guard of spec.md §4.F, reported as a wrapped
//     embedding.ErrInvariantBroken rather than silently corrected.
//
// Why no shared "optimizer" interface: package greedy's deterministic
// round loop and package anneal's fixed-iteration Boltzmann schedule have
// different internal control flow; both report through this package's
// snapshot/reason contract instead (see greedy's doc comment).
package harness
