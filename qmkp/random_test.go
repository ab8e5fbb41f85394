// SPDX-License-Identifier: MIT
package qmkp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qmkp/qmkp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomAssignment_SeedDeterminism(t *testing.T) {
	t.Parallel()

	inst := randomInstance(t, rand.New(rand.NewSource(seedDet)), 15, 4)
	a1, err := qmkp.RandomAssignment(inst.profits, inst.weights, inst.capacities, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	a2, err := qmkp.RandomAssignment(inst.profits, inst.weights, inst.capacities, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.True(t, a1.Equal(a2))

	// nil generator falls back to the fixed default stream.
	d1, err := qmkp.RandomAssignment(inst.profits, inst.weights, inst.capacities, nil)
	require.NoError(t, err)
	d2, err := qmkp.RandomAssignment(inst.profits, inst.weights, inst.capacities, qmkp.NewRand(0))
	require.NoError(t, err)
	assert.True(t, d1.Equal(d2))
}

func TestRandomAssignment_Diversity(t *testing.T) {
	t.Parallel()

	inst := randomInstance(t, rand.New(rand.NewSource(seedDet)), 15, 4)
	rng := rand.New(rand.NewSource(seedDet))
	seen := map[string]bool{}
	for r := 0; r < 30; r++ {
		a, err := qmkp.RandomAssignment(inst.profits, inst.weights, inst.capacities, rng)
		require.NoError(t, err)
		require.NoError(t, qmkp.CheckFeasible(a, inst.profits, inst.weights, inst.capacities))
		seen[a.String()] = true
	}
	assert.Greater(t, len(seen), 1, "a randomized baseline should not be constant")
}

func TestRandomAssignment_SingleOptionIsSkipped(t *testing.T) {
	t.Parallel()

	// With exactly one available knapsack the skip probability is 1/1.
	p, err := qmkp.NewProfits([][]float64{{4}})
	require.NoError(t, err)
	for seed := int64(1); seed <= 10; seed++ {
		a, err := qmkp.RandomAssignment(p, []float64{1}, []float64{3}, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		assert.False(t, a.IsPlaced(0))
	}
}

func TestRandomAssignment_NoCapacity(t *testing.T) {
	t.Parallel()

	p := mustProfits(t)
	a, err := qmkp.RandomAssignment(p, []float64{5, 6, 7, 8}, []float64{4, 1, 2}, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)
	assert.Len(t, qmkp.UnassignedItems(a), 4)

	_, err = qmkp.RandomAssignment(p, []float64{1, 2}, []float64{4}, nil)
	require.ErrorIs(t, err, qmkp.ErrDimensionMismatch)
}
