// SPDX-License-Identifier: MIT

// Package qmkp_test provides the shared fixtures of the qmkp tests.
package qmkp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qmkp/qmkp"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Fixtures - single source of truth for test instances
// -----------------------------------------------------------------------------

const (
	// seedDet is a deterministic seed for randomized algorithms.
	seedDet = 42

	// epsTiny absorbs float rounding in density comparisons.
	epsTiny = 1e-12
)

// profitRows is the 4-item homogeneous matrix used throughout.
func profitRows() [][]float64 {
	return [][]float64{
		{1, 1, 2, 3},
		{1, 1, 4, 5},
		{2, 4, 2, 6},
		{3, 5, 6, 3},
	}
}

// perKnapsackRows returns three symmetric slices over the same 4 items.
func perKnapsackRows() [][][]float64 {
	return [][][]float64{
		profitRows(),
		{{6, 0, 2, 3}, {0, 3, 7, 1}, {2, 7, 3, 6}, {3, 1, 6, 9}},
		{{5, 2, 3, 3}, {2, 6, 3, 8}, {3, 3, 4, 1}, {3, 8, 1, 8}},
	}
}

// scaledRows returns the slices used by the per-knapsack density expectations.
func scaledRows() [][][]float64 {
	return [][][]float64{
		profitRows(),
		{{2, 2, 4, 6}, {2, 2, 8, 10}, {4, 8, 4, 12}, {6, 10, 12, 6}},
		{{2, 2, 3, 4}, {2, 2, 5, 6}, {3, 5, 3, 7}, {4, 6, 7, 4}},
	}
}

func mustProfits(t *testing.T) *qmkp.Profits {
	t.Helper()
	p, err := qmkp.NewProfits(profitRows())
	require.NoError(t, err)
	return p
}

func mustPerKnapsack(t *testing.T, rows [][][]float64) *qmkp.Profits {
	t.Helper()
	p, err := qmkp.NewPerKnapsackProfits(rows)
	require.NoError(t, err)
	return p
}

func mustAssignment(t *testing.T, rows [][]float64) *qmkp.Assignment {
	t.Helper()
	a, err := qmkp.AssignmentFromRows(rows)
	require.NoError(t, err)
	return a
}

func mustChromosome(t *testing.T, a *qmkp.Assignment) qmkp.Chromosome {
	t.Helper()
	c, err := qmkp.ChromosomeFromAssignment(a)
	require.NoError(t, err)
	return c
}

// instance is one (profits, weights, capacities) triple.
type instance struct {
	name       string
	profits    *qmkp.Profits
	weights    []float64
	capacities []float64
}

// randomInstance builds a symmetric non-negative instance with integer
// weights in [1,5) and capacities in [3,12).
func randomInstance(t testing.TB, rng *rand.Rand, n, k int) instance {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := float64(rng.Intn(10))
			rows[i][j], rows[j][i] = v, v
		}
	}
	p, err := qmkp.NewProfits(rows)
	require.NoError(t, err)

	w := make([]float64, n)
	for i := range w {
		w[i] = float64(1 + rng.Intn(4))
	}
	c := make([]float64, k)
	for i := range c {
		c[i] = float64(3 + rng.Intn(9))
	}

	return instance{name: "random", profits: p, weights: w, capacities: c}
}

// instances returns the fixed and random cases every algorithm must solve feasibly.
func instances(t *testing.T) []instance {
	t.Helper()
	rng := rand.New(rand.NewSource(seedDet))
	out := []instance{
		{"fixed homogeneous", mustProfits(t), []float64{1, 3, 2, 2}, []float64{5, 5, 3}},
		{"fixed per-knapsack", mustPerKnapsack(t, perKnapsackRows()), []float64{1, 3, 2, 2}, []float64{5, 5, 3}},
		{"single knapsack", mustProfits(t), []float64{1, 2, 3, 4}, []float64{6}},
		{"no knapsacks", mustProfits(t), []float64{1, 2, 3, 4}, []float64{}},
	}
	for r := 0; r < 5; r++ {
		inst := randomInstance(t, rng, 12, 3)
		inst.name = "random"
		out = append(out, inst)
	}

	return out
}
