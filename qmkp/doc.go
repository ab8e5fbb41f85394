// SPDX-License-Identifier: MIT

// Package qmkp provides heuristics for the Quadratic Multiple Knapsack Problem.
//
// N items with weights w_i are distributed over K knapsacks with capacities
// c_k. A symmetric profit matrix P holds the standalone profit of item i on its
// diagonal (p_ii) and the synergy of items i and j off the diagonal (p_ij),
// earned only when both sit in the same knapsack. Every item goes to at most
// one knapsack, no knapsack may be overloaded, and the total profit
//
//	Σ_k ( Σ_{i∈A_k} p_ii + Σ_{i<j∈A_k} p_ij )
//
// is to be maximized. With PerKnapsack profits the matrix additionally depends
// on the knapsack that holds the pair.
//
// Algorithms:
//
//   - Constructive: greedy completion by value density (profit per weight
//     given what the knapsack already holds). Deterministic.
//   - RoundRobin: knapsacks take turns picking their densest fitting item.
//   - RandomAssignment: profit-blind feasible baseline.
//   - FCS: fix-and-complete search: repeatedly drops a random fraction of a
//     solution and re-completes it with Constructive, keeping the best.
//
// Every algorithm returns a fresh binary N×K *Assignment; inputs are never
// mutated. All of them satisfy the Solver interface through small adapters
// (ConstructiveSolver, RoundRobinSolver, RandomSolver, FCSSolver), and a
// Problem bundles an instance with a pluggable Solver.
//
// Errors: every precondition failure wraps ErrValidation, so
//
//	errors.Is(err, qmkp.ErrValidation)
//
// matches all of them; the concrete kind (ErrDimensionMismatch, ErrNonBinary,
// ErrInfeasibleStart, ErrParameterRange, ...) is matched the same way.
//
// Randomness: RandomAssignment and FCS take an injected *rand.Rand; a nil
// generator falls back to a fixed default seed, so runs are reproducible.
// A *rand.Rand is not goroutine-safe; use one per goroutine.
package qmkp
