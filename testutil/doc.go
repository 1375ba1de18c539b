// Package testutil provides testing utilities for invert.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random shapes and skip sets, and a
// brute-force inversion to compare resolved iterators against.
//
// # Random Generation
//
//	rng := testutil.NewRNG(seed)
//	s := rng.Shape(position.RowMajor, 3, 4) // rank 3, axes of length 1..4
//	skips := rng.Subset(s, 0.3)             // ~30% of positions, shuffled
//
// # Ground Truth
//
//	want := testutil.ExactInversion(s, skips)
package testutil
