// SPDX-License-Identifier: MIT
package qmkp_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/qmkp/qmkp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructive_Deterministic(t *testing.T) {
	t.Parallel()

	p := mustProfits(t)
	weights := []float64{1, 3, 2, 2}
	capacities := []float64{5, 5, 3}

	// Item 3 (density 1.5) opens knapsack 0, then items 0 and 2 follow for
	// their synergy with it; item 1 only fits into knapsack 1.
	a, err := qmkp.Constructive(p, weights, capacities, nil)
	require.NoError(t, err)
	if diff := cmp.Diff(qmkp.Chromosome{0, 1, 0, 0}, mustChromosome(t, a)); diff != "" {
		t.Fatalf("unexpected solution (-want +got):\n%s", diff)
	}
	profit, err := qmkp.TotalProfit(p, a)
	require.NoError(t, err)
	assert.Equal(t, 18.0, profit)

	// Same input, same output.
	again, err := qmkp.Constructive(p, weights, capacities, nil)
	require.NoError(t, err)
	assert.True(t, again.Equal(a))
}

func TestConstructive_WithStart(t *testing.T) {
	t.Parallel()

	weights := []float64{1, 3, 2, 2}
	capacities := []float64{5, 5, 3}
	for _, p := range []*qmkp.Profits{mustProfits(t), mustPerKnapsack(t, perKnapsackRows())} {
		start := mustAssignment(t, [][]float64{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}, {1, 0, 0}})
		before := start.Clone()

		a, err := qmkp.Constructive(p, weights, capacities, start)
		require.NoError(t, err, p.Kind().String())
		assert.True(t, a.Contains(start), "pre-fixed placements must survive")
		assert.True(t, start.Equal(before), "start must not be mutated")
		require.NoError(t, qmkp.CheckFeasible(a, p, weights, capacities))

		profit, err := qmkp.TotalProfit(p, a)
		require.NoError(t, err)
		assert.Positive(t, profit)
	}
}

func TestConstructive_RejectsBadStart(t *testing.T) {
	t.Parallel()

	weights := []float64{1, 3, 2, 2}
	capacities := []float64{5, 5, 3}
	tests := []struct {
		name    string
		start   [][]float64
		wantErr error
	}{
		{"negative entry", [][]float64{{0, 0, 0}, {1, 0, 0}, {-1, 0, 0}, {0, 1, 0}}, qmkp.ErrNonBinary},
		{"entry two", [][]float64{{2, 0, 0}, {0, 0, 0}, {1, 0, 0}, {0, 0, 1}}, qmkp.ErrNonBinary},
		{"too few knapsacks", [][]float64{{1, 0}, {0, 0}, {1, 0}, {0, 0}}, qmkp.ErrDimensionMismatch},
		{"too many knapsacks", [][]float64{{1, 0, 0, 0}, {0, 0, 0, 0}, {1, 0, 0, 0}, {0, 0, 0, 0}}, qmkp.ErrDimensionMismatch},
		{"overloaded", [][]float64{{0, 0, 1}, {0, 0, 1}, {1, 0, 0}, {0, 0, 1}}, qmkp.ErrInfeasibleStart},
		{"double placement", [][]float64{{1, 1, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, qmkp.ErrMultipleAssignment},
	}
	for _, p := range []*qmkp.Profits{mustProfits(t), mustPerKnapsack(t, perKnapsackRows())} {
		for _, tc := range tests {
			_, err := qmkp.Constructive(p, weights, capacities, mustAssignment(t, tc.start))
			require.ErrorIs(t, err, tc.wantErr, "%s/%s", p.Kind(), tc.name)
			require.ErrorIs(t, err, qmkp.ErrValidation)
		}
	}
}

func TestConstructive_InstanceValidation(t *testing.T) {
	t.Parallel()

	p := mustProfits(t)
	_, err := qmkp.Constructive(p, []float64{1, 2, 3}, []float64{5}, nil)
	require.ErrorIs(t, err, qmkp.ErrDimensionMismatch)
	_, err = qmkp.Constructive(p, []float64{1, 2, 0, 4}, []float64{5}, nil)
	require.ErrorIs(t, err, qmkp.ErrNonPositiveWeight)
	_, err = qmkp.Constructive(p, []float64{1, 2, 3, 4}, []float64{-1}, nil)
	require.ErrorIs(t, err, qmkp.ErrNegativeCapacity)
	_, err = qmkp.Constructive(mustPerKnapsack(t, perKnapsackRows()), []float64{1, 2, 3, 4}, []float64{5, 5}, nil)
	require.ErrorIs(t, err, qmkp.ErrDimensionMismatch)
	_, err = qmkp.Constructive(nil, []float64{1}, []float64{1}, nil)
	require.ErrorIs(t, err, qmkp.ErrNilInput)
}

func TestConstructive_NoCapacity(t *testing.T) {
	t.Parallel()

	p := mustProfits(t)
	a, err := qmkp.Constructive(p, []float64{5, 6, 7, 8}, []float64{4, 1, 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, qmkp.UnassignedItems(a))
	profit, err := qmkp.TotalProfit(p, a)
	require.NoError(t, err)
	assert.Zero(t, profit)
}

func TestConstructive_FillsExactCapacity(t *testing.T) {
	t.Parallel()

	// Weight equal to capacity still fits.
	p, err := qmkp.NewProfits([][]float64{{3}})
	require.NoError(t, err)
	a, err := qmkp.Constructive(p, []float64{2}, []float64{2}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, a.KnapsackOf(0))
}
