// SPDX-License-Identifier: MIT
package qmkp_test

import (
	"testing"

	"github.com/katalvlaran/qmkp/matrix"
	"github.com/katalvlaran/qmkp/qmkp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var densityWeights = []float64{1, 2, 3, 4}

// requireRowsInDelta compares a density matrix against expected rows.
func requireRowsInDelta(t *testing.T, want [][]float64, got *matrix.Dense) {
	t.Helper()
	rows := got.ToRows()
	require.Len(t, rows, len(want))
	for i := range want {
		require.Len(t, rows[i], len(want[i]), "row %d", i)
		for j := range want[i] {
			assert.InDelta(t, want[i][j], rows[i][j], epsTiny, "cell (%d,%d)", i, j)
		}
	}
}

func TestValueDensityOfSet_Homogeneous(t *testing.T) {
	t.Parallel()

	p := mustProfits(t)
	tests := []struct {
		name  string
		items []int
		want  []float64
	}{
		{"pair", []int{1, 3}, []float64{5, 3, 4, 2}},
		{"none", nil, []float64{1, 0.5, 2.0 / 3, 0.75}},
		{"single", []int{2}, []float64{3, 2.5, 2.0 / 3, 2.25}},
		{"all", []int{0, 1, 2, 3}, []float64{7, 5.5, 14.0 / 3, 4.25}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			vd, err := qmkp.ValueDensityOfSet(p, densityWeights, tc.items)
			require.NoError(t, err)
			require.Equal(t, 1, vd.Cols())
			want := make([][]float64, len(tc.want))
			for i, v := range tc.want {
				want[i] = []float64{v}
			}
			requireRowsInDelta(t, want, vd)
		})
	}
}

func TestValueDensityOfSet_PerKnapsack(t *testing.T) {
	t.Parallel()

	p := mustPerKnapsack(t, scaledRows())
	vd, err := qmkp.ValueDensityOfSet(p, densityWeights, []int{1, 3})
	require.NoError(t, err)
	requireRowsInDelta(t, [][]float64{
		{5, 10, 8},
		{6.0 / 2, 12.0 / 2, 8.0 / 2},
		{12.0 / 3, 24.0 / 3, 15.0 / 3},
		{8.0 / 4, 16.0 / 4, 10.0 / 4},
	}, vd)

	red, err := qmkp.ReducedValueDensityOfSet(p, densityWeights, []int{2})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, red.Items)
	requireRowsInDelta(t, [][]float64{
		{3, 6, 5},
		{5.0 / 2, 10.0 / 2, 7.0 / 2},
		{9.0 / 4, 18.0 / 4, 11.0 / 4},
	}, red.Values)

	// Every item in the list leaves an empty 0×3 result.
	red, err = qmkp.ReducedValueDensityOfSet(p, densityWeights, []int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Empty(t, red.Items)
	assert.Equal(t, 0, red.Values.Rows())
	assert.Equal(t, 3, red.Values.Cols())
}

func TestValueDensity_Matrix(t *testing.T) {
	t.Parallel()

	vd, err := qmkp.ValueDensity(mustProfits(t), densityWeights,
		mustAssignment(t, [][]float64{{0, 0}, {1, 0}, {0, 0}, {1, 0}}))
	require.NoError(t, err)
	requireRowsInDelta(t, [][]float64{{5, 1}, {3, 0.5}, {4, 2.0 / 3}, {2, 0.75}}, vd)
}

func TestValueDensity_PerKnapsackMatrix(t *testing.T) {
	t.Parallel()

	rows := scaledRows()
	tests := []struct {
		name   string
		slices [][][]float64
		assign [][]float64
		want   [][]float64
	}{
		{
			"two slices",
			rows[:2],
			[][]float64{{0, 0}, {1, 0}, {0, 0}, {1, 0}},
			[][]float64{{5, 2}, {6.0 / 2, 1}, {12.0 / 3, 4.0 / 3}, {8.0 / 4, 6.0 / 4}},
		},
		{
			"empty three slices",
			rows,
			[][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
			[][]float64{{1, 2, 2}, {0.5, 1, 1}, {2.0 / 3, 4.0 / 3, 1}, {0.75, 6.0 / 4, 1}},
		},
		{
			// Binary but not one-hot: density is still defined column-wise.
			"overlapping columns",
			rows[:2],
			[][]float64{{1, 0}, {1, 0}, {1, 1}, {1, 0}},
			[][]float64{{7, 6}, {11.0 / 2, 5}, {14.0 / 3, 4.0 / 3}, {17.0 / 4, 18.0 / 4}},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			vd, err := qmkp.ValueDensity(mustPerKnapsack(t, tc.slices), densityWeights, mustAssignment(t, tc.assign))
			require.NoError(t, err)
			requireRowsInDelta(t, tc.want, vd)
		})
	}
}

func TestReducedValueDensity(t *testing.T) {
	t.Parallel()

	rows := scaledRows()
	red, err := qmkp.ReducedValueDensity(mustPerKnapsack(t, rows[:2]), densityWeights,
		mustAssignment(t, [][]float64{{0, 0}, {0, 1}, {0, 0}, {0, 1}}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, red.Items)
	requireRowsInDelta(t, [][]float64{{1, 10}, {2.0 / 3, 24.0 / 3}}, red.Values)

	red, err = qmkp.ReducedValueDensity(mustPerKnapsack(t, rows), densityWeights,
		mustAssignment(t, [][]float64{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}, {0, 0, 1}}))
	require.NoError(t, err)
	assert.Empty(t, red.Items)
	assert.Equal(t, 0, red.Values.Rows())
}

func TestValueDensity_Errors(t *testing.T) {
	t.Parallel()

	p := mustProfits(t)
	a := mustAssignment(t, [][]float64{{0}, {0}, {0}, {0}})

	_, err := qmkp.ValueDensity(p, []float64{1, 2, 3}, a)
	require.ErrorIs(t, err, qmkp.ErrDimensionMismatch)

	_, err = qmkp.ValueDensity(p, []float64{1, 0, 3, 4}, a)
	require.ErrorIs(t, err, qmkp.ErrNonPositiveWeight)

	_, err = qmkp.ValueDensity(p, densityWeights, mustAssignment(t, [][]float64{{0}, {0}, {0}}))
	require.ErrorIs(t, err, qmkp.ErrDimensionMismatch)

	_, err = qmkp.ValueDensity(p, densityWeights, mustAssignment(t, [][]float64{{0}, {2}, {0}, {0}}))
	require.ErrorIs(t, err, qmkp.ErrNonBinary)

	// Per-knapsack profits need one slice per column.
	_, err = qmkp.ValueDensity(mustPerKnapsack(t, scaledRows()), densityWeights, a)
	require.ErrorIs(t, err, qmkp.ErrDimensionMismatch)

	_, err = qmkp.ValueDensityOfSet(p, densityWeights, []int{4})
	require.ErrorIs(t, err, qmkp.ErrDimensionMismatch)
}
