package edist

import "errors"

// ErrInvalidK is returned when a heuristic is asked to distribute edges
// across fewer than one page.
var ErrInvalidK = errors.New("edist: k must be >= 1")
