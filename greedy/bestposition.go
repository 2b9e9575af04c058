package greedy

import "github.com/bookembed/pagecross/embedding"

// BestPositionForVertex relocates v to the spine position that minimizes
// total crossings, found by sweeping v rightward through every position via
// repeated adjacent swaps, then leftward, tracking the cumulative gain at
// each step with SwapGain rather than a full recount (spec.md §4.F,
// "O(n·Δ²)"). It applies the winning sequence of swaps and reports whether
// v's position changed.
func BestPositionForVertex(e *embedding.Embedding, v int) bool {
	n := e.N()
	start := e.PositionOf(v)

	bestOffset := 0
	bestGain := int64(0)

	// Sweep rightward: repeatedly swap v with its right neighbor.
	gain := int64(0)
	pos := start
	for step := 1; step < n; step++ {
		g := SwapGain(e, pos)
		e.SwapPositions(pos, (pos+1)%n)
		gain += g
		pos = (pos + 1) % n
		if pos == start {
			break
		}
		if gain > bestGain {
			bestGain = gain
			bestOffset = step
		}
	}
	// Undo the rightward sweep back to start.
	for pos != start {
		prev := (pos - 1 + n) % n
		e.SwapPositions(prev, pos)
		pos = prev
	}

	// Sweep leftward: repeatedly swap v with its left neighbor.
	gain = 0
	pos = start
	for step := 1; step < n; step++ {
		left := (pos - 1 + n) % n
		g := SwapGain(e, left)
		e.SwapPositions(left, pos)
		gain += g
		pos = left
		if pos == start {
			break
		}
		if gain > bestGain {
			bestGain = gain
			bestOffset = -step
		}
	}
	// Undo the leftward sweep back to start.
	for pos != start {
		next := (pos + 1) % n
		e.SwapPositions(pos, next)
		pos = next
	}

	if bestOffset == 0 {
		return false
	}

	if bestOffset > 0 {
		pos = start
		for step := 0; step < bestOffset; step++ {
			e.SwapPositions(pos, (pos+1)%n)
			pos = (pos + 1) % n
		}
	} else {
		pos = start
		for step := 0; step < -bestOffset; step++ {
			left := (pos - 1 + n) % n
			e.SwapPositions(left, pos)
			pos = left
		}
	}
	return true
}
