// SPDX-License-Identifier: MIT

// Package experiment compares the qmkp heuristics on random instances.
//
// GenerateInstance draws one instance: a factor matrix S with entries uniform
// in [0, ProfitScale), profits P = S·Sᵀ (symmetric, non-negative), integer
// weights and integer capacities from half-open ranges.
//
// A Runner generates config.Runs such instances, solves every one with each
// configured algorithm, verifies that every result is feasible and aggregates
// the profits per algorithm into a Report. Instances are solved concurrently
// (bounded by config.Workers) but every run draws from its own derived random
// streams, so a Report depends only on the seed and never on scheduling:
//
//	stream(run, instance)  = run·(A+1)
//	stream(run, algorithm) = run·(A+1) + 1 + algorithm
//
// where A is the number of built-in algorithms. Solve latencies, profits and
// outcomes are exported as Prometheus metrics when a Metrics is attached.
package experiment
