// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qmkp/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseZeroOK(t *testing.T) {
	m, err := matrix.NewDenseZeroOK(0, 4)
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, 0, r)
	assert.Equal(t, 4, c)
	assert.Empty(t, m.ToRows())

	_, err = matrix.NewDenseZeroOK(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	// Out of range on both axes
	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)

	// Numeric policy
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestNewDenseFromRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, m.ToRows())

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewDenseFromRows([][]float64{{1, math.Inf(1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestNewDenseFromRows_CopiesInput(t *testing.T) {
	src := [][]float64{{1, 2}}
	m, err := matrix.NewDenseFromRows(src)
	require.NoError(t, err)
	src[0][0] = 100 // caller mutation must not leak in
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
}

func TestDense_RowAndCloneIndependence(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)
	row[0] = -1 // copy, not view
	v, _ := m.At(1, 0)
	assert.Equal(t, 3.0, v)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	cl := m.CloneDense()
	require.True(t, cl.Equal(m))
	require.NoError(t, cl.Set(0, 0, 9))
	assert.False(t, cl.Equal(m))
	v, _ = m.At(0, 0)
	assert.Equal(t, 1.0, v)
}

func TestDense_String(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 0.5}, {0, 2}})
	require.NoError(t, err)
	assert.Equal(t, "[1, 0.5]\n[0, 2]\n", m.String())
}
