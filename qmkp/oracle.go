// SPDX-License-Identifier: MIT

package qmkp

import (
	"github.com/katalvlaran/qmkp/matrix"
)

// TotalProfit returns Σ_k profit(k) for a binary assignment, where profit(k)
// adds the standalone profit of every member and every unordered member pair
// once.
//
// Errors: ErrNilInput, ErrDimensionMismatch (rows != N, or per-knapsack
// columns != slices), ErrNonBinary.
// Complexity: O(N²·K).
func TotalProfit(p *Profits, a *Assignment) (float64, error) {
	per, err := KnapsackProfits(p, a)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, v := range per {
		total += v
	}

	return total, nil
}

// KnapsackProfits returns the profit earned inside every knapsack.
func KnapsackProfits(p *Profits, a *Assignment) ([]float64, error) {
	if p == nil || a == nil {
		return nil, opErrorf(opTotalProfit, ErrNilInput)
	}
	if err := checkShape(a, p.NumItems(), a.NumKnapsacks()); err != nil {
		return nil, opErrorf(opTotalProfit, err)
	}
	if err := p.CheckKnapsacks(a.NumKnapsacks()); err != nil {
		return nil, opErrorf(opTotalProfit, err)
	}
	if err := checkBinary(a); err != nil {
		return nil, opErrorf(opTotalProfit, err)
	}

	return knapsackProfits(p, a), nil
}

// knapsackProfits computes (a_kᵀ P a_k + Σ_{i∈A_k} p_ii) / 2 per column.
// Inputs are validated by the caller.
func knapsackProfits(p *Profits, a *Assignment) []float64 {
	n, numKs := a.NumItems(), a.NumKnapsacks()
	out := make([]float64, numKs)
	col := make([]float64, n)

	var (
		i, k     int
		quad, dg float64
	)
	for k = 0; k < numKs; k++ {
		for i = 0; i < n; i++ {
			col[i] = a.get(i, k)
		}
		y, _ := matrix.MatVec(p.slice(k), col) // shape validated upstream
		quad, dg = 0, 0
		for i = 0; i < n; i++ {
			if col[i] == 0 {
				continue
			}
			quad += y[i]
			dg += p.at(k, i, i)
		}
		out[k] = (quad + dg) / 2
	}

	return out
}

// totalProfit is TotalProfit without validation, for algorithm internals.
func totalProfit(p *Profits, a *Assignment) float64 {
	var total float64
	for _, v := range knapsackProfits(p, a) {
		total += v
	}

	return total
}

// CheckFeasible reports the first violated condition of a against the
// instance, checked in this order: shape (ErrDimensionMismatch), binary
// (ErrNonBinary), one knapsack per item (ErrMultipleAssignment), capacity
// (ErrCapacityExceeded). Instance errors are reported before all of them.
//
// Loads may exceed a capacity by at most matrix.DefaultEpsilon to absorb
// floating-point summation error.
func CheckFeasible(a *Assignment, p *Profits, weights, capacities []float64) error {
	if err := validateInstance(p, weights, capacities); err != nil {
		return opErrorf(opCheckFeasible, err)
	}
	if err := checkShape(a, len(weights), len(capacities)); err != nil {
		return opErrorf(opCheckFeasible, err)
	}
	if err := checkBinary(a); err != nil {
		return opErrorf(opCheckFeasible, err)
	}
	if err := checkRowSums(a); err != nil {
		return opErrorf(opCheckFeasible, err)
	}
	if _, err := remainingOrError(a, weights, capacities, ErrCapacityExceeded); err != nil {
		return opErrorf(opCheckFeasible, err)
	}

	return nil
}

// IsFeasible is the boolean form of CheckFeasible.
func IsFeasible(a *Assignment, p *Profits, weights, capacities []float64) bool {
	return CheckFeasible(a, p, weights, capacities) == nil
}
