// SPDX-License-Identifier: MIT

package qmkp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qmkp/matrix"
)

// ProfitKind tags the two profit models.
type ProfitKind int

const (
	// Homogeneous: one N×N matrix shared by every knapsack.
	Homogeneous ProfitKind = iota
	// PerKnapsack: one N×N matrix per knapsack.
	PerKnapsack
)

// String implements fmt.Stringer.
func (k ProfitKind) String() string {
	switch k {
	case Homogeneous:
		return "homogeneous"
	case PerKnapsack:
		return "per-knapsack"
	default:
		return fmt.Sprintf("ProfitKind(%d)", int(k))
	}
}

// Profits is the read-only profit tensor of an instance.
//
// Homogeneous profits hold a single slice; PerKnapsack profits hold one slice
// per knapsack. Every slice is square, symmetric within matrix.DefaultEpsilon
// and finite. The constructors deep-copy their input and no method hands out
// internal storage, so a *Profits can be shared freely between goroutines.
type Profits struct {
	kind   ProfitKind
	n      int
	slices []*matrix.Dense
}

// NewProfits builds a homogeneous profit model from an N×N matrix.
//
// Errors (all wrap ErrValidation): ErrDimensionMismatch for empty or ragged
// input, ErrNonSquare, ErrNonFinite, ErrAsymmetricProfits.
// Complexity: O(N²).
func NewProfits(p [][]float64) (*Profits, error) {
	s, err := newProfitSlice(p)
	if err != nil {
		return nil, opErrorf(opNewProfits, err)
	}

	return &Profits{kind: Homogeneous, n: s.Rows(), slices: []*matrix.Dense{s}}, nil
}

// NewPerKnapsackProfits builds a per-knapsack profit model from K matrices of
// size N×N. Slice k applies to pairs held by knapsack k.
//
// Errors: as NewProfits, plus ErrDimensionMismatch when K==0 or the slices
// disagree on N.
// Complexity: O(K·N²).
func NewPerKnapsackProfits(p [][][]float64) (*Profits, error) {
	if len(p) == 0 {
		return nil, opErrorf(opNewProfits, ErrDimensionMismatch)
	}

	slices := make([]*matrix.Dense, len(p))
	for k := range p {
		s, err := newProfitSlice(p[k])
		if err != nil {
			return nil, opErrorf(fmt.Sprintf("%s[%d]", opNewProfits, k), err)
		}
		if k > 0 && s.Rows() != slices[0].Rows() {
			return nil, opErrorf(fmt.Sprintf("%s[%d]", opNewProfits, k), ErrDimensionMismatch)
		}
		slices[k] = s
	}

	return &Profits{kind: PerKnapsack, n: slices[0].Rows(), slices: slices}, nil
}

// NewProfitsFromMatrix builds a homogeneous profit model from any square
// symmetric matrix.Matrix. The input is copied.
func NewProfitsFromMatrix(m matrix.Matrix) (*Profits, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opErrorf(opNewProfits, ErrNilInput)
	}
	s, err := matrix.NewDenseZeroOK(m.Rows(), m.Cols())
	if err != nil {
		return nil, opErrorf(opNewProfits, ErrDimensionMismatch)
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if err = s.Set(i, j, v); err != nil {
				return nil, opErrorf(opNewProfits, ErrNonFinite)
			}
		}
	}
	if err = checkProfitSlice(s); err != nil {
		return nil, opErrorf(opNewProfits, err)
	}

	return &Profits{kind: Homogeneous, n: s.Rows(), slices: []*matrix.Dense{s}}, nil
}

// newProfitSlice copies and validates one N×N slice.
func newProfitSlice(p [][]float64) (*matrix.Dense, error) {
	s, err := matrix.NewDenseFromRows(p)
	switch {
	case errors.Is(err, matrix.ErrNaNInf):
		return nil, ErrNonFinite
	case err != nil:
		return nil, ErrDimensionMismatch
	}
	if err = checkProfitSlice(s); err != nil {
		return nil, err
	}

	return s, nil
}

func checkProfitSlice(s *matrix.Dense) error {
	if s.Rows() == 0 {
		return ErrDimensionMismatch
	}
	if err := matrix.ValidateSquare(s); err != nil {
		return ErrNonSquare
	}
	if err := matrix.ValidateSymmetric(s, matrix.DefaultEpsilon); err != nil {
		return ErrAsymmetricProfits
	}

	return nil
}

// Kind reports the profit model.
func (p *Profits) Kind() ProfitKind { return p.kind }

// NumItems returns N.
func (p *Profits) NumItems() int { return p.n }

// NumSlices returns 1 for homogeneous profits and K for per-knapsack profits.
func (p *Profits) NumSlices() int { return len(p.slices) }

// CheckKnapsacks verifies that the model can serve k knapsacks.
// Homogeneous profits serve any k; per-knapsack profits need exactly k slices.
func (p *Profits) CheckKnapsacks(k int) error {
	if p.kind == PerKnapsack && len(p.slices) != k {
		return fmt.Errorf("profits: %d slices for %d knapsacks: %w", len(p.slices), k, ErrDimensionMismatch)
	}

	return nil
}

// At returns p_ij as seen from knapsack k. k is ignored for homogeneous profits.
func (p *Profits) At(k, i, j int) (float64, error) {
	s, err := p.sliceChecked(k)
	if err != nil {
		return 0, err
	}
	v, err := s.At(i, j)
	if err != nil {
		return 0, fmt.Errorf("profits: %w: %w", ErrDimensionMismatch, err)
	}

	return v, nil
}

// Standalone returns p_ii as seen from knapsack k.
func (p *Profits) Standalone(k, i int) (float64, error) {
	return p.At(k, i, i)
}

// Slice returns a copy of the N×N matrix used by knapsack k.
func (p *Profits) Slice(k int) (*matrix.Dense, error) {
	s, err := p.sliceChecked(k)
	if err != nil {
		return nil, err
	}

	return s.CloneDense(), nil
}

// Rows returns the matrix used by knapsack k as freshly allocated rows.
func (p *Profits) Rows(k int) ([][]float64, error) {
	s, err := p.sliceChecked(k)
	if err != nil {
		return nil, err
	}

	return s.ToRows(), nil
}

// Equal reports whether both models have the same kind and identical entries.
func (p *Profits) Equal(other *Profits) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.kind != other.kind || p.n != other.n || len(p.slices) != len(other.slices) {
		return false
	}
	for k := range p.slices {
		if !p.slices[k].Equal(other.slices[k]) {
			return false
		}
	}

	return true
}

func (p *Profits) sliceChecked(k int) (*matrix.Dense, error) {
	if p.kind == Homogeneous {
		return p.slices[0], nil
	}
	if k < 0 || k >= len(p.slices) {
		return nil, fmt.Errorf("profits: knapsack %d: %w", k, ErrDimensionMismatch)
	}

	return p.slices[k], nil
}

// slice returns the matrix for knapsack k without bounds checks.
// Callers validate k against CheckKnapsacks first.
func (p *Profits) slice(k int) *matrix.Dense {
	if p.kind == Homogeneous {
		return p.slices[0]
	}

	return p.slices[k]
}

// at is the unchecked hot-path accessor. Indices are validated upstream.
func (p *Profits) at(k, i, j int) float64 {
	v, _ := p.slice(k).At(i, j)
	return v
}
