// Package qmkp is a toolbox of heuristics for the Quadratic Multiple
// Knapsack Problem: place items into capacity-limited knapsacks so that the
// sum of standalone and pairwise (co-location) profits is as large as
// possible.
//
// 🚀 What is inside?
//
//	• Profit models: one symmetric N×N matrix, or one per knapsack
//	• Value density: how much profit an item adds per unit of weight
//	• Constructive procedure: greedy completion by density
//	• Round robin: knapsacks take turns picking their best item
//	• Random assignment: a randomized feasible baseline
//	• Fix-and-complete search: ruin-and-recreate around the greedy start
//	• Oracle: total profit and feasibility checks for any assignment
//
// ✨ Why this layout?
//
//   - Deterministic by default: every random draw comes from an injected or
//     seeded *rand.Rand
//   - Inputs are never mutated; results are fresh values
//   - Typed, matchable errors: errors.Is(err, qmkp.ErrValidation)
//
// Everything is organized under these packages:
//
//	matrix/           dense row-major storage, validators, Mul/Transpose/MatVec
//	qmkp/             profit model, assignments, heuristics, Solver, Problem
//	config/           experiment settings (viper + validator)
//	experiment/       random instances and a parallel algorithm comparison
//	internal/logging/ zap logger construction
//
// Quick example:
//
//	profits, _ := qmkp.NewProfits([][]float64{{1, 2}, {2, 1}})
//	a, _ := qmkp.Constructive(profits, []float64{1, 1}, []float64{2}, nil)
//	total, _ := qmkp.TotalProfit(profits, a) // 4: both items share the knapsack
//
//	go get github.com/katalvlaran/qmkp
package qmkp
