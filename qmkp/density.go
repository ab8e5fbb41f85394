// SPDX-License-Identifier: MIT

// Value density: the marginal profit per unit of weight of putting item i
// into knapsack k given what k already holds,
//
//	vd(i,k) = ( p_ii + Σ_{j∈A_k, j≠i} p_ij ) / w_i
//
// With PerKnapsack profits column k uses slice k. The synergy sums are one
// matrix product P·A (homogeneous) or one matrix-vector product per column
// (per-knapsack); the own-profit correction removes p_ii for members and adds
// it back for everyone, which is (P·A + diag(P)∘(1−A)) / w.

package qmkp

import (
	"fmt"

	"github.com/katalvlaran/qmkp/matrix"
)

// Densities is the reduced form of a density matrix: only the rows of items
// that are still free, together with their original indices.
type Densities struct {
	Items  []int         // original item index of every row
	Values *matrix.Dense // len(Items)×K
}

// ValueDensity returns the N×K density matrix for assignment a.
//
// Errors: ErrNilInput, ErrDimensionMismatch (profits vs weights, a not N×K,
// per-knapsack slices vs K), ErrNonPositiveWeight, ErrNonFinite, ErrNonBinary.
// Complexity: O(N²·K).
func ValueDensity(p *Profits, weights []float64, a *Assignment) (*matrix.Dense, error) {
	if err := checkDensityInputs(p, weights); err != nil {
		return nil, opErrorf(opValueDensity, err)
	}
	if err := checkShape(a, p.NumItems(), nonNilCols(a)); err != nil {
		return nil, opErrorf(opValueDensity, err)
	}
	if err := p.CheckKnapsacks(a.NumKnapsacks()); err != nil {
		return nil, opErrorf(opValueDensity, err)
	}
	if err := checkBinary(a); err != nil {
		return nil, opErrorf(opValueDensity, err)
	}

	vd, err := densityMatrix(p, weights, a.m)
	if err != nil {
		return nil, opErrorf(opValueDensity, err)
	}

	return vd, nil
}

// ReducedValueDensity is ValueDensity restricted to unassigned items.
func ReducedValueDensity(p *Profits, weights []float64, a *Assignment) (Densities, error) {
	vd, err := ValueDensity(p, weights, a)
	if err != nil {
		return Densities{}, err
	}

	return reduceRows(vd, UnassignedItems(a))
}

// ValueDensityOfSet treats items as present in every knapsack's context.
// Homogeneous profits yield an N×1 matrix; per-knapsack profits yield one
// column per slice.
//
// Errors: as ValueDensity; an item outside [0,N) gives ErrDimensionMismatch.
func ValueDensityOfSet(p *Profits, weights []float64, items []int) (*matrix.Dense, error) {
	if err := checkDensityInputs(p, weights); err != nil {
		return nil, opErrorf(opValueDensity, err)
	}
	n, cols := p.NumItems(), p.NumSlices()
	member, err := matrix.NewDenseZeroOK(n, cols)
	if err != nil {
		return nil, opErrorf(opValueDensity, err)
	}
	for _, i := range items {
		if i < 0 || i >= n {
			return nil, opErrorf(fmt.Sprintf("%s: item %d", opValueDensity, i), ErrDimensionMismatch)
		}
		for c := 0; c < cols; c++ {
			_ = member.Set(i, c, 1)
		}
	}

	vd, err := densityMatrix(p, weights, member)
	if err != nil {
		return nil, opErrorf(opValueDensity, err)
	}

	return vd, nil
}

// ReducedValueDensityOfSet is ValueDensityOfSet restricted to items not in the list.
func ReducedValueDensityOfSet(p *Profits, weights []float64, items []int) (Densities, error) {
	vd, err := ValueDensityOfSet(p, weights, items)
	if err != nil {
		return Densities{}, err
	}
	in := make([]bool, p.NumItems())
	for _, i := range items {
		in[i] = true
	}
	free := []int{}
	for i, ok := range in {
		if !ok {
			free = append(free, i)
		}
	}

	return reduceRows(vd, free)
}

func checkDensityInputs(p *Profits, weights []float64) error {
	if err := CheckDimensions(p, weights); err != nil {
		return err
	}

	return validateWeights(weights)
}

func nonNilCols(a *Assignment) int {
	if a == nil {
		return 0
	}
	return a.NumKnapsacks()
}

// densityMatrix computes (P·M + diag(P)∘(1−M)) / w column by column, where
// column c of M is a 0/1 membership vector evaluated with profit slice c.
func densityMatrix(p *Profits, weights []float64, member *matrix.Dense) (*matrix.Dense, error) {
	syn, err := synergy(p, member)
	if err != nil {
		return nil, err
	}
	n, cols := member.Shape()
	out, err := matrix.NewDenseZeroOK(n, cols)
	if err != nil {
		return nil, err
	}

	var (
		i, c          int
		s, m, own, vd float64
	)
	for i = 0; i < n; i++ {
		for c = 0; c < cols; c++ {
			s, _ = syn.At(i, c)
			m, _ = member.At(i, c)
			own = p.at(c, i, i)
			vd = (s + own*(1-m)) / weights[i]
			if err = out.Set(i, c, vd); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// synergy returns S with S[i,c] = Σ_j p_ij^{(c)}·M[j,c].
func synergy(p *Profits, member *matrix.Dense) (*matrix.Dense, error) {
	if p.Kind() == Homogeneous {
		return matrix.Mul(p.slice(0), member)
	}

	n, cols := member.Shape()
	out, err := matrix.NewDenseZeroOK(n, cols)
	if err != nil {
		return nil, err
	}
	col := make([]float64, n)
	for c := 0; c < cols; c++ {
		for i := 0; i < n; i++ {
			col[i], _ = member.At(i, c)
		}
		y, err := matrix.MatVec(p.slice(c), col)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			_ = out.Set(i, c, y[i])
		}
	}

	return out, nil
}

func reduceRows(vd *matrix.Dense, rows []int) (Densities, error) {
	out, err := matrix.NewDenseZeroOK(len(rows), vd.Cols())
	if err != nil {
		return Densities{}, err
	}
	var row []float64
	for r, i := range rows {
		if row, err = vd.Row(i); err != nil {
			return Densities{}, err
		}
		for c, v := range row {
			_ = out.Set(r, c, v)
		}
	}

	return Densities{Items: rows, Values: out}, nil
}

// densityTable is the mutable working copy the greedy procedures update
// incrementally. Row-major N×K.
type densityTable struct {
	p  *Profits
	w  []float64
	k  int
	vd []float64
}

func newDensityTable(p *Profits, weights []float64, a *Assignment) (*densityTable, error) {
	vd, err := densityMatrix(p, weights, a.m)
	if err != nil {
		return nil, err
	}
	t := &densityTable{p: p, w: weights, k: a.NumKnapsacks(), vd: make([]float64, 0, vd.Rows()*vd.Cols())}
	for _, row := range vd.ToRows() {
		t.vd = append(t.vd, row...)
	}

	return t, nil
}

func (t *densityTable) at(i, k int) float64 { return t.vd[i*t.k+k] }

// commit accounts for item i joining knapsack k: every other item j gains
// p_ij^{(k)}/w_j of density towards k.
func (t *densityTable) commit(i, k int) {
	for j := range t.w {
		if j == i {
			continue
		}
		t.vd[j*t.k+k] += t.p.at(k, i, j) / t.w[j]
	}
}
