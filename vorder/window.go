package vorder

import "fmt"

// Window identifies a contiguous or wrap-around range of spine positions
// [Begin,End): ordinary when Begin<End, wrap-around ([Begin,n) union
// [0,End)) when End<Begin, and the full spine when Begin==End (spec.md
// §4.D, "partial variants accept a contiguous or wrap-around window").
type Window struct {
	Begin, End int
}

// FullWindow returns the window covering every position [0,n).
func FullWindow(n int) Window { return Window{Begin: 0, End: n} }

// Len returns the number of positions the window covers.
func (w Window) Len(n int) int {
	if w.Begin == w.End {
		return n
	}
	if w.Begin < w.End {
		return w.End - w.Begin
	}
	return n - w.Begin + w.End
}

// validate checks Begin and End are in [0,n].
func (w Window) validate(n int) error {
	if w.Begin < 0 || w.Begin > n || w.End < 0 || w.End > n {
		return fmt.Errorf("window %+v over %d positions: %w", w, n, ErrWindowOutOfRange)
	}
	return nil
}

// Positions returns the spine positions covered by w, in window order
// (i.e. the order a heuristic should assign visited vertices into).
func (w Window) Positions(n int) []int {
	length := w.Len(n)
	out := make([]int, length)
	pos := w.Begin
	if w.Begin == w.End {
		pos = 0
	}
	for i := 0; i < length; i++ {
		out[i] = pos
		pos++
		if pos == n {
			pos = 0
		}
	}
	return out
}
