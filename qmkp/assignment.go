// SPDX-License-Identifier: MIT

package qmkp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qmkp/matrix"
)

// Assignment is an N×K item-to-knapsack matrix: A[i,k]==1 iff item i sits in
// knapsack k. Algorithms only ever produce binary matrices with at most one 1
// per row; AssignmentFromRows accepts arbitrary values so that CheckFeasible
// can report exactly what is wrong with caller-supplied data.
type Assignment struct {
	m *matrix.Dense
}

// NewAssignment returns an all-zero N×K assignment.
// Zero items or zero knapsacks are legal; negative sizes are not.
func NewAssignment(numItems, numKnapsacks int) (*Assignment, error) {
	m, err := matrix.NewDenseZeroOK(numItems, numKnapsacks)
	if err != nil {
		return nil, opErrorf(opAssignment, ErrDimensionMismatch)
	}

	return &Assignment{m: m}, nil
}

// AssignmentFromRows copies a rectangular [][]float64 into an Assignment.
// Values are NOT restricted to {0,1} here.
//
// Errors: ErrDimensionMismatch for empty or ragged input, ErrNonFinite.
func AssignmentFromRows(rows [][]float64) (*Assignment, error) {
	m, err := matrix.NewDenseFromRows(rows)
	switch {
	case errors.Is(err, matrix.ErrNaNInf):
		return nil, opErrorf(opAssignment, ErrNonFinite)
	case err != nil:
		return nil, opErrorf(opAssignment, ErrDimensionMismatch)
	}

	return &Assignment{m: m}, nil
}

// NumItems returns N.
func (a *Assignment) NumItems() int { return a.m.Rows() }

// NumKnapsacks returns K.
func (a *Assignment) NumKnapsacks() int { return a.m.Cols() }

// At returns A[i,k].
func (a *Assignment) At(i, k int) (float64, error) {
	v, err := a.m.At(i, k)
	if err != nil {
		return 0, fmt.Errorf("assignment: %w: %w", ErrDimensionMismatch, err)
	}

	return v, nil
}

// Place puts item i into knapsack k, clearing any previous placement of i.
func (a *Assignment) Place(i, k int) error {
	if i < 0 || i >= a.NumItems() || k < 0 || k >= a.NumKnapsacks() {
		return fmt.Errorf("assignment: place(%d,%d): %w", i, k, ErrDimensionMismatch)
	}
	a.clearRow(i)
	a.set(i, k, 1)

	return nil
}

// ClearItem removes item i from whatever knapsack holds it.
func (a *Assignment) ClearItem(i int) error {
	if i < 0 || i >= a.NumItems() {
		return fmt.Errorf("assignment: clear(%d): %w", i, ErrDimensionMismatch)
	}
	a.clearRow(i)

	return nil
}

// KnapsackOf returns the knapsack holding item i, or Unassigned.
// For a row with several non-zero entries the lowest column wins.
func (a *Assignment) KnapsackOf(i int) int {
	if i < 0 || i >= a.NumItems() {
		return Unassigned
	}
	for k := 0; k < a.NumKnapsacks(); k++ {
		if a.get(i, k) != 0 {
			return k
		}
	}

	return Unassigned
}

// IsPlaced reports whether item i sits in some knapsack.
func (a *Assignment) IsPlaced(i int) bool { return a.KnapsackOf(i) != Unassigned }

// IsBinary reports whether every entry is 0 or 1.
func (a *Assignment) IsBinary() bool { return matrix.ValidateBinary(a.m) == nil }

// Members lists the items in knapsack k in ascending order.
func (a *Assignment) Members(k int) []int {
	var out []int
	if k < 0 || k >= a.NumKnapsacks() {
		return out
	}
	for i := 0; i < a.NumItems(); i++ {
		if a.get(i, k) != 0 {
			out = append(out, i)
		}
	}

	return out
}

// Loads returns Σ_i w_i·A[i,k] for every knapsack, i.e. Aᵀw.
// Complexity: O(N·K).
func (a *Assignment) Loads(weights []float64) ([]float64, error) {
	t, err := matrix.Transpose(a.m)
	if err != nil {
		return nil, opErrorf(opAssignment, err)
	}
	loads, err := matrix.MatVec(t, weights)
	if err != nil {
		return nil, fmt.Errorf("assignment: loads: %w: %w", ErrDimensionMismatch, err)
	}

	return loads, nil
}

// Contains reports whether every placement of sub is also present in a.
// Shapes must match.
func (a *Assignment) Contains(sub *Assignment) bool {
	if sub == nil {
		return true
	}
	if matrix.ValidateSameShape(a.m, sub.m) != nil {
		return false
	}
	for i := 0; i < a.NumItems(); i++ {
		for k := 0; k < a.NumKnapsacks(); k++ {
			if sub.get(i, k) != 0 && a.get(i, k) != sub.get(i, k) {
				return false
			}
		}
	}

	return true
}

// Clone returns an independent copy.
func (a *Assignment) Clone() *Assignment {
	return &Assignment{m: a.m.CloneDense()}
}

// Equal reports same shape and identical entries.
func (a *Assignment) Equal(other *Assignment) bool {
	if a == nil || other == nil {
		return a == other
	}

	return a.m.Equal(other.m)
}

// Rows returns the matrix as freshly allocated rows.
func (a *Assignment) Rows() [][]float64 { return a.m.ToRows() }

// Dense returns a copy of the underlying matrix.
func (a *Assignment) Dense() *matrix.Dense { return a.m.CloneDense() }

// String renders one bracketed row per item.
func (a *Assignment) String() string { return a.m.String() }

func (a *Assignment) get(i, k int) float64 {
	v, _ := a.m.At(i, k)
	return v
}

func (a *Assignment) set(i, k int, v float64) {
	_ = a.m.Set(i, k, v)
}

func (a *Assignment) clearRow(i int) {
	for k := 0; k < a.NumKnapsacks(); k++ {
		a.set(i, k, 0)
	}
}

// rowSum returns Σ_k A[i,k].
func (a *Assignment) rowSum(i int) float64 {
	var s float64
	for k := 0; k < a.NumKnapsacks(); k++ {
		s += a.get(i, k)
	}

	return s
}
