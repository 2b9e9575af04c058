package embedding

import "errors"

// ErrPageOutOfRange is returned when a page index outside [0,k) (and not
// PagePending) is assigned to an edge.
var ErrPageOutOfRange = errors.New("embedding: page index out of range")

// ErrInvariantBroken is the invariant-violation class of error from
// spec.md §7: spine/vertexOnSpine are not mutual inverses, or a counter
// returned a negative crossing count. Callers should treat it as a bug.
var ErrInvariantBroken = errors.New("embedding: invariant violated")
