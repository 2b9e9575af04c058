package vorder

import "errors"

// ErrDisconnectedGraph is returned by heuristics that require every vertex
// reachable from a single traversal root (MaxNbr, MaxNbrRemoving,
// Connectivity and GreedyConnectivity require a connected window).
var ErrDisconnectedGraph = errors.New("vorder: graph is disconnected")

// ErrWindowOutOfRange is returned when a [begin,end) window references
// spine positions outside [0,n).
var ErrWindowOutOfRange = errors.New("vorder: window out of range")

// ErrEmptyGraph is returned by heuristics that need at least one vertex to
// pick a root from.
var ErrEmptyGraph = errors.New("vorder: graph has no vertices")
