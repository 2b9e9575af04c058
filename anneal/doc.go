// Package anneal implements the simulated-annealing optimizer of spec.md
// §4.G: a fixed 980-iteration schedule, each iteration running four nested
// sub-phases (edge re-page, neighbor swap, vertex teleport with page
// repair, greedy vertex refine) under a Metropolis accept/reject rule.
//
// What:
//
//   - Temperature(t, t0): the logarithmic cooling curve, F=20, Tmin=0.2,
//     Tmax=980.
//   - Run(e, r, opts...): drives the fixed schedule against e, using r for
//     every random choice; WithInitialTemperature sets T0, WithOnBest wires
//     a "strictly improved" callback (for example a Harness's SetLocalBest),
//     and WithBudget registers a once-per-iteration early-exit predicate.
//
// Why a callback instead of importing package harness directly: anneal has
// no dependency on how (or whether) a caller snapshots its best-so-far
// embedding; a caller that wants harness snapshots passes its Harness's
// SetLocalBest to WithOnBest. Neither package imports the other.
package anneal
