// SPDX-License-Identifier: MIT

package qmkp

import (
	"fmt"
	"math/rand"
	"strings"
)

// Solver produces an assignment for an instance. Any heuristic, built-in or
// user-supplied, plugs into Problem and the experiment runner through it.
type Solver interface {
	Solve(p *Profits, weights, capacities []float64) (*Assignment, error)
}

// SolverFunc adapts an ordinary function to Solver.
type SolverFunc func(p *Profits, weights, capacities []float64) (*Assignment, error)

// Solve calls f.
func (f SolverFunc) Solve(p *Profits, weights, capacities []float64) (*Assignment, error) {
	return f(p, weights, capacities)
}

// ConstructiveSolver runs Constructive from Start (nil means empty).
type ConstructiveSolver struct {
	Start *Assignment
}

// Solve implements Solver.
func (s ConstructiveSolver) Solve(p *Profits, weights, capacities []float64) (*Assignment, error) {
	return Constructive(p, weights, capacities, s.Start)
}

// RoundRobinSolver runs RoundRobin from Start with the given knapsack Order.
type RoundRobinSolver struct {
	Start *Assignment
	Order []int
}

// Solve implements Solver.
func (s RoundRobinSolver) Solve(p *Profits, weights, capacities []float64) (*Assignment, error) {
	return RoundRobin(p, weights, capacities, s.Start, s.Order)
}

// RandomSolver runs RandomAssignment with Rand. A non-nil Rand is advanced by
// every call, so consecutive solves draw fresh assignments. A nil Rand falls
// back to NewRand(0) on each call, so every solve returns the same assignment.
type RandomSolver struct {
	Rand *rand.Rand
}

// Solve implements Solver.
func (s RandomSolver) Solve(p *Profits, weights, capacities []float64) (*Assignment, error) {
	return RandomAssignment(p, weights, capacities, s.Rand)
}

// FCSSolver runs FCS with Options.
type FCSSolver struct {
	Options []FCSOption
}

// Solve implements Solver.
func (s FCSSolver) Solve(p *Profits, weights, capacities []float64) (*Assignment, error) {
	return FCS(p, weights, capacities, s.Options...)
}

// Algorithm names a built-in heuristic for configuration-driven selection.
type Algorithm int

const (
	AlgorithmConstructive Algorithm = iota
	AlgorithmRoundRobin
	AlgorithmRandom
	AlgorithmFCS
)

var algorithmNames = [...]string{
	AlgorithmConstructive: "constructive",
	AlgorithmRoundRobin:   "round-robin",
	AlgorithmRandom:       "random",
	AlgorithmFCS:          "fcs",
}

// Algorithms lists every built-in heuristic in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmConstructive, AlgorithmRoundRobin, AlgorithmRandom, AlgorithmFCS}
}

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm maps a name to an Algorithm. Matching ignores case and
// accepts "cp", "rr" and "round_robin" as aliases.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "constructive", "cp":
		return AlgorithmConstructive, nil
	case "round-robin", "round_robin", "roundrobin", "rr":
		return AlgorithmRoundRobin, nil
	case "random":
		return AlgorithmRandom, nil
	case "fcs":
		return AlgorithmFCS, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}
}

// NewSolver builds the solver for alg. Randomized algorithms get a private
// generator seeded with seed; fcsOpts are applied to FCS after the seed.
func NewSolver(alg Algorithm, seed int64, fcsOpts ...FCSOption) (Solver, error) {
	switch alg {
	case AlgorithmConstructive:
		return ConstructiveSolver{}, nil
	case AlgorithmRoundRobin:
		return RoundRobinSolver{}, nil
	case AlgorithmRandom:
		return RandomSolver{Rand: NewRand(seed)}, nil
	case AlgorithmFCS:
		opts := append([]FCSOption{WithRand(NewRand(seed))}, fcsOpts...)
		return FCSSolver{Options: opts}, nil
	default:
		return nil, fmt.Errorf("%v: %w", alg, ErrUnknownAlgorithm)
	}
}
