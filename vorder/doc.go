// Package vorder implements the vertex-order (spine construction)
// heuristics of spec.md §4.D: each writes a full or partial permutation
// into an Embedding's spine.
//
// What:
//
//   - Window: a contiguous or wrap-around [begin,end) range of spine
//     positions; partial heuristics reorder only the vertices currently
//     occupying that range, leaving every other position untouched.
//   - RandomDFS / SmallestDegreeDFS: stack-based DFS over the window's
//     induced subgraph, randomized or smallest-degree-first neighbor order.
//   - RandomBFS: classic BFS with randomized neighbor enqueue order.
//   - MaxNbr / MaxNbrRemoving: repeatedly place the highest-(effective-)
//     degree unprocessed vertex, then its unprocessed neighbors ascending
//     by degree.
//   - BFSTree: a BFS spanning tree of the window, then SmallestDegreeDFS
//     over the tree's own adjacency.
//   - HamiltonPath: the Angluin-Valiant random-walk-with-short-circuit
//     heuristic, falling back to a DFS completion pass on an uncovered
//     suffix.
//   - Connectivity / GreedyConnectivity: grow-from-both-ends placement
//     driven by a Selector (which vertex next) and a Placer (which end),
//     or, for GreedyConnectivity, by trying every open position.
//
// Why a shared windowMembers/applyOrder pair: every heuristic here computes
// a visit order over the same vertex subset (the window's current
// occupants) and then writes it back via the same spine-splice operation;
// factoring that out keeps each heuristic's file focused on its traversal
// rule alone, matching the teacher's one-file-per-variant layout
// (`dfs/dfs.go`, `bfs/bfs.go`).
//
// Errors: ErrWindowOutOfRange for a malformed window; ErrEmptyGraph from any
// heuristic given a zero-length window. MaxNbr, MaxNbrRemoving, Connectivity,
// and GreedyConnectivity additionally require the window's induced subgraph
// to be connected (spec.md §7) and return ErrDisconnectedGraph otherwise.
// RandomDFS, SmallestDegreeDFS, RandomBFS, BFSTree, and HamiltonPath tolerate
// disconnected windows by construction, advancing to a fresh root each time
// the current component is exhausted (spec.md §4.D).
package vorder
