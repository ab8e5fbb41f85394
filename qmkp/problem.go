// SPDX-License-Identifier: MIT

package qmkp

import (
	"fmt"
	"slices"
	"sync"
)

// Problem bundles one instance with an optional default Solver and the last
// assignment it produced. Inputs are copied at construction and never change.
type Problem struct {
	name       string
	profits    *Profits
	weights    []float64
	capacities []float64

	mu     sync.Mutex
	solver Solver
	last   *Assignment
}

// ProblemOption represents a functional option for configuring a Problem.
type ProblemOption func(*Problem)

// WithName sets the display name returned by String.
func WithName(name string) ProblemOption {
	return func(p *Problem) {
		p.name = name
	}
}

// WithSolver sets the solver used by Solve(nil).
func WithSolver(s Solver) ProblemOption {
	return func(p *Problem) {
		p.solver = s
	}
}

// NewProblem validates and copies an instance.
//
// Errors: as validateInstance: ErrNilInput, ErrDimensionMismatch,
// ErrNonPositiveWeight, ErrNegativeCapacity, ErrNonFinite.
func NewProblem(profits *Profits, weights, capacities []float64, opts ...ProblemOption) (*Problem, error) {
	if err := validateInstance(profits, weights, capacities); err != nil {
		return nil, opErrorf(opProblem, err)
	}
	p := &Problem{
		profits:    profits, // immutable
		weights:    slices.Clone(weights),
		capacities: slices.Clone(capacities),
	}
	if p.capacities == nil {
		p.capacities = []float64{}
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Name returns the display name ("" when unset).
func (p *Problem) Name() string { return p.name }

// Profits returns the profit model. *Profits is read-only.
func (p *Problem) Profits() *Profits { return p.profits }

// Weights returns a copy of the item weights.
func (p *Problem) Weights() []float64 { return slices.Clone(p.weights) }

// Capacities returns a copy of the knapsack capacities.
func (p *Problem) Capacities() []float64 { return slices.Clone(p.capacities) }

// NumItems returns N.
func (p *Problem) NumItems() int { return len(p.weights) }

// NumKnapsacks returns K.
func (p *Problem) NumKnapsacks() int { return len(p.capacities) }

// Solver returns the configured default solver (may be nil).
func (p *Problem) Solver() Solver {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.solver
}

// SetSolver replaces the default solver.
func (p *Problem) SetSolver(s Solver) {
	p.mu.Lock()
	p.solver = s
	p.mu.Unlock()
}

// LastAssignment returns a copy of the most recent Solve result, or nil.
func (p *Problem) LastAssignment() *Assignment {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.last == nil {
		return nil
	}
	return p.last.Clone()
}

// Solve runs s (or the default solver when s is nil), records the result and
// returns it with its total profit. The solver sees private copies of the
// weights and capacities.
//
// Errors: ErrNoSolver, the solver's own error, or a TotalProfit error when the
// solver returns a malformed assignment.
func (p *Problem) Solve(s Solver) (*Assignment, float64, error) {
	if s == nil {
		s = p.Solver()
	}
	if s == nil {
		return nil, 0, opErrorf(opProblem, ErrNoSolver)
	}

	a, err := s.Solve(p.profits, p.Weights(), p.Capacities())
	if err != nil {
		return nil, 0, err
	}
	if a == nil {
		return nil, 0, opErrorf(opProblem, ErrNilInput)
	}
	profit, err := TotalProfit(p.profits, a)
	if err != nil {
		return nil, 0, opErrorf(opProblem, err)
	}

	p.mu.Lock()
	p.last = a.Clone()
	p.mu.Unlock()

	return a, profit, nil
}

// Equal compares profits, weights and capacities. Name and solver are ignored.
func (p *Problem) Equal(other *Problem) bool {
	if p == nil || other == nil {
		return p == other
	}

	return p.profits.Equal(other.profits) &&
		slices.Equal(p.weights, other.weights) &&
		slices.Equal(p.capacities, other.capacities)
}

// String returns the name, or "QMKProblem(N, K)" when no name is set.
func (p *Problem) String() string {
	if p.name != "" {
		return p.name
	}
	return fmt.Sprintf("QMKProblem(%d, %d)", p.NumItems(), p.NumKnapsacks())
}
