// Package rng centralizes the deterministic, seedable random source that
// spec.md §6 treats as an external collaborator of the core ("a uniform
// integer/double source ... seedable for reproducibility tests").
//
// This package is adapted directly from the teacher's tsp/rng.go, which
// solves the identical problem for TSP's heuristic solvers: deterministic
// math/rand.Rand factories, SplitMix64 stream derivation for independent
// per-worker substreams, Fisher-Yates shuffling, and permutation generation.
//
// Why a dedicated package: vorder, edist, and anneal each need an
// independent, seedable stream (spec.md §5: "per-thread instances, no shared
// global generator under contention"), and all three need exactly the same
// three operations (uniform int, uniform float64, random permutation) plus
// in-place shuffling of small slices. Promoting tsp/rng.go's pattern into a
// package (instead of duplicating it three times) keeps that contract in one
// place.
//
// Concurrency: a Source wraps *rand.Rand, which is not goroutine-safe. Do
// not share one Source across goroutines; call Derive to mint an
// independent stream per worker.
package rng
