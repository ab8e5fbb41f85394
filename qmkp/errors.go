// SPDX-License-Identifier: MIT

package qmkp

import (
	"errors"
	"fmt"
)

// ErrValidation is the umbrella for every caller-correctable precondition
// failure. Each kind below wraps it.
var ErrValidation = errors.New("qmkp: validation failed")

var (
	// ErrDimensionMismatch: profit tensor vs weights, assignment shape,
	// knapsack index or order entry out of range.
	ErrDimensionMismatch = fmt.Errorf("qmkp: dimension mismatch: %w", ErrValidation)

	// ErrNonSquare: a profit slice is not N×N.
	ErrNonSquare = fmt.Errorf("qmkp: profit matrix is not square: %w", ErrValidation)

	// ErrAsymmetricProfits: a profit slice violates p_ij == p_ji.
	ErrAsymmetricProfits = fmt.Errorf("qmkp: profit matrix is not symmetric: %w", ErrValidation)

	// ErrNonFinite: NaN or ±Inf in profits, weights or capacities.
	ErrNonFinite = fmt.Errorf("qmkp: non-finite value: %w", ErrValidation)

	// ErrNonPositiveWeight: some w_i <= 0.
	ErrNonPositiveWeight = fmt.Errorf("qmkp: weights must be strictly positive: %w", ErrValidation)

	// ErrNegativeCapacity: some c_k < 0.
	ErrNegativeCapacity = fmt.Errorf("qmkp: capacities must be non-negative: %w", ErrValidation)

	// ErrNonBinary: an assignment entry is not 0 or 1.
	ErrNonBinary = fmt.Errorf("qmkp: assignment is not binary: %w", ErrValidation)

	// ErrMultipleAssignment: an item sits in more than one knapsack.
	ErrMultipleAssignment = fmt.Errorf("qmkp: item assigned to multiple knapsacks: %w", ErrValidation)

	// ErrCapacityExceeded: a knapsack load is above its capacity.
	ErrCapacityExceeded = fmt.Errorf("qmkp: capacity exceeded: %w", ErrValidation)

	// ErrInfeasibleStart: a starting assignment already overloads a knapsack.
	ErrInfeasibleStart = fmt.Errorf("qmkp: infeasible starting assignment: %w", ErrValidation)

	// ErrParameterRange: FCS alpha outside (0,1) or len_history < 1.
	ErrParameterRange = fmt.Errorf("qmkp: parameter out of range: %w", ErrValidation)

	// ErrNilInput: a required *Profits or *Assignment is nil.
	ErrNilInput = fmt.Errorf("qmkp: nil input: %w", ErrValidation)

	// ErrNoSolver: Problem.Solve was called without a solver.
	ErrNoSolver = fmt.Errorf("qmkp: no solver configured: %w", ErrValidation)

	// ErrUnknownAlgorithm: ParseAlgorithm or NewSolver got an unknown name.
	ErrUnknownAlgorithm = fmt.Errorf("qmkp: unknown algorithm: %w", ErrValidation)
)

// opErrorf prefixes err with an operation tag, keeping it matchable via errors.Is.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Operation tags used in error wrapping.
const (
	opNewProfits    = "NewProfits"
	opAssignment    = "Assignment"
	opChromosome    = "Chromosome"
	opValueDensity  = "ValueDensity"
	opConstructive  = "Constructive"
	opRoundRobin    = "RoundRobin"
	opRandom        = "RandomAssignment"
	opFCS           = "FCS"
	opTotalProfit   = "TotalProfit"
	opCheckFeasible = "CheckFeasible"
	opProblem       = "Problem"
)
