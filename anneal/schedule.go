package anneal

import "math"

// Schedule parameters, spec.md §4.G.
const (
	// F is the logarithmic cooling curve's shape constant.
	F = 20.0
	// Tmin is the schedule's final temperature: Temperature(Tmax, t0) == Tmin.
	Tmin = 0.2
	// Tmax is both the schedule's normalization constant and the total
	// iteration count (spec.md §4.G: "Fixed schedule with 980 iterations").
	Tmax = 980
	// Iterations is the fixed number of annealing iterations.
	Iterations = 980
)

// Temperature returns the schedule's temperature at iteration t (1-indexed,
// t in [1,Iterations]) given an initial temperature t0 (spec.md §4.G):
//
//	T(t) = T0 + (1/ln(F) - 1/ln(t+F)) * (Tmin-T0) / (1/ln(F) - 1/ln(Tmax+F))
func Temperature(t int, t0 float64) float64 {
	lnF := 1.0 / math.Log(F)
	lnT := 1.0 / math.Log(float64(t)+F)
	lnTmax := 1.0 / math.Log(Tmax+F)
	return t0 + (lnF-lnT)*(Tmin-t0)/(lnF-lnTmax)
}
