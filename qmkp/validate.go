// SPDX-License-Identifier: MIT

// Instance and starting-assignment validation shared by every algorithm.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input; only sentinels from errors.go.
//   - Checks run in a fixed order so the first reported violation is stable.

package qmkp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qmkp/matrix"
)

// CheckDimensions verifies that profits and weights describe the same N items.
func CheckDimensions(p *Profits, weights []float64) error {
	if p == nil {
		return ErrNilInput
	}
	if len(weights) != p.NumItems() {
		return fmt.Errorf("%d weights for %d items: %w", len(weights), p.NumItems(), ErrDimensionMismatch)
	}

	return nil
}

// IsSymmetric reports whether p is square and symmetric within matrix.DefaultEpsilon.
func IsSymmetric(p [][]float64) bool {
	m, err := matrix.NewDenseFromRows(p)
	if err != nil {
		return false
	}

	return matrix.ValidateSymmetric(m, matrix.DefaultEpsilon) == nil
}

// validateWeights requires finite, strictly positive weights.
func validateWeights(weights []float64) error {
	if err := matrix.ValidateFinite(weights); err != nil {
		return fmt.Errorf("weights: %w: %w", ErrNonFinite, err)
	}
	for i, w := range weights {
		if w <= 0 {
			return fmt.Errorf("weight[%d]=%g: %w", i, w, ErrNonPositiveWeight)
		}
	}

	return nil
}

// validateCapacities requires finite, non-negative capacities.
func validateCapacities(capacities []float64) error {
	if err := matrix.ValidateFinite(capacities); err != nil {
		return fmt.Errorf("capacities: %w: %w", ErrNonFinite, err)
	}
	for k, c := range capacities {
		if c < 0 {
			return fmt.Errorf("capacity[%d]=%g: %w", k, c, ErrNegativeCapacity)
		}
	}

	return nil
}

// validateInstance runs the full input check of every algorithm:
// profits vs weights → per-knapsack slices vs K → weights → capacities.
func validateInstance(p *Profits, weights, capacities []float64) error {
	if err := CheckDimensions(p, weights); err != nil {
		return err
	}
	if err := p.CheckKnapsacks(len(capacities)); err != nil {
		return err
	}
	if err := validateWeights(weights); err != nil {
		return err
	}

	return validateCapacities(capacities)
}

// checkShape verifies a is N×K.
func checkShape(a *Assignment, numItems, numKnapsacks int) error {
	if a == nil {
		return ErrNilInput
	}
	if err := matrix.ValidateShape(a.m, numItems, numKnapsacks); err != nil {
		return fmt.Errorf("assignment %dx%d, want %dx%d: %w",
			a.NumItems(), a.NumKnapsacks(), numItems, numKnapsacks, ErrDimensionMismatch)
	}

	return nil
}

// checkBinary verifies every entry of a is 0 or 1.
func checkBinary(a *Assignment) error {
	if err := matrix.ValidateBinary(a.m); err != nil {
		return fmt.Errorf("%w: %w", ErrNonBinary, err)
	}

	return nil
}

// checkRowSums verifies no item is placed twice. a must be binary.
func checkRowSums(a *Assignment) error {
	for i := 0; i < a.NumItems(); i++ {
		if a.rowSum(i) > 1 {
			return fmt.Errorf("item %d: %w", i, ErrMultipleAssignment)
		}
	}

	return nil
}

// remainingOrError returns c - load, or the first knapsack whose load exceeds
// its capacity by more than matrix.DefaultEpsilon wrapped in errKind.
func remainingOrError(a *Assignment, weights, capacities []float64, errKind error) ([]float64, error) {
	loads, err := a.Loads(weights)
	if err != nil {
		return nil, err
	}
	remaining := make([]float64, len(capacities))
	for k := range capacities {
		if loads[k] > capacities[k]+matrix.DefaultEpsilon {
			return nil, fmt.Errorf("knapsack %d: load %g > capacity %g: %w", k, loads[k], capacities[k], errKind)
		}
		remaining[k] = math.Max(capacities[k]-loads[k], 0)
	}

	return remaining, nil
}

// prepareStart validates an optional starting assignment against the instance
// and returns a private working copy plus the remaining capacities.
// Order: shape → binary → row sums → capacity (ErrInfeasibleStart).
func prepareStart(start *Assignment, weights, capacities []float64) (*Assignment, []float64, error) {
	n, k := len(weights), len(capacities)
	if start == nil {
		a, err := NewAssignment(n, k)
		if err != nil {
			return nil, nil, err
		}
		rem := make([]float64, k)
		copy(rem, capacities)
		return a, rem, nil
	}
	if err := checkShape(start, n, k); err != nil {
		return nil, nil, err
	}
	if err := checkBinary(start); err != nil {
		return nil, nil, err
	}
	if err := checkRowSums(start); err != nil {
		return nil, nil, err
	}
	work := start.Clone()
	remaining, err := remainingOrError(work, weights, capacities, ErrInfeasibleStart)
	if err != nil {
		return nil, nil, err
	}

	return work, remaining, nil
}
