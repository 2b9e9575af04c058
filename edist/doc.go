// Package edist implements the edge-distribution heuristics of spec.md
// §4.E: each writes a full assignment into an Embedding's page
// distribution.
//
// What:
//
//   - Random: uniform page per edge.
//   - Slope: folds each edge's spine-position sum into [1,n] and
//     partitions that range into k contiguous buckets, approximating the
//     "slope mod pi, bucketed into k angular sectors" construction without
//     trigonometry.
//   - GreedyRowMajor / GreedyRowMajorBySpine / GreedyELen / GreedyCeilFloor
//     / GreedyCircular / GreedyRandomOrder: share one greedyAssign core
//     (iterate edges in some order, assign each to the page minimizing
//     crossings against already-placed edges); they differ only in the
//     edge order fed to it.
//   - Conflict: shuffles the can-cross conflict set and assigns pages
//     pairwise.
//   - EarDecomposition: DFS-trees the conflict graph and assigns pages ear
//     by ear.
//
// Errors: ErrInvalidK when k < 1.
package edist
