// errors.go — sentinel errors for the core package.
//
// Error policy (matches the teacher's builder/errors.go convention):
//   - Only sentinel variables are exposed.
//   - Callers branch on semantics with errors.Is(err, ErrX).
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context with %w.
package core

import "errors"

// ErrSelfLoop is returned by NewGraph and Validate when an edge's two endpoints
// are the same vertex index. Self-loops are out of scope (spec.md §1).
var ErrSelfLoop = errors.New("core: self-loops are not supported")

// ErrMultiEdge is returned when an edge would duplicate an existing
// (start,target) pair. Parallel edges are out of scope (spec.md §1).
var ErrMultiEdge = errors.New("core: parallel edges are not supported")

// ErrVertexIndexRange is returned when a vertex index used to build an edge
// falls outside [0,n).
var ErrVertexIndexRange = errors.New("core: vertex index out of range")

// ErrDegreeSumMismatch is an invariant violation: sum(degree) != 2*m.
var ErrDegreeSumMismatch = errors.New("core: degree sum does not equal 2m")

// ErrEdgeIndexMismatch is an invariant violation: an edge's stored index
// does not match its position in the graph's edge array.
var ErrEdgeIndexMismatch = errors.New("core: edge index does not match its slot")

// ErrEndpointOrder is an invariant violation: an edge's start index is not
// strictly less than its target index.
var ErrEndpointOrder = errors.New("core: edge endpoints are not canonicalized")

// ErrInvalidK is a contract violation: Problem was built with k < 1.
var ErrInvalidK = errors.New("core: k must be >= 1")
