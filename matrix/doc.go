// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage shared by the qmkp
// heuristics: a row-major float64 matrix with error-returning accessors, the
// validators that guard shapes, symmetry and binary content, and the few
// linear-algebra kernels (Mul, Transpose, MatVec) the profit and density
// computations are expressed with.
//
// Public accessors never panic on user input. Out-of-range indices surface as
// ErrOutOfRange, NaN/Inf writes as ErrNaNInf, and shape problems as
// ErrDimensionMismatch; every error is a sentinel that callers match with
// errors.Is after any amount of wrapping.
//
// Determinism: every kernel iterates in a fixed row-major order, so the same
// inputs always yield bit-identical outputs.
package matrix
