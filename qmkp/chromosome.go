// SPDX-License-Identifier: MIT

package qmkp

import (
	"fmt"
	"slices"
)

// Unassigned marks an item that sits in no knapsack.
const Unassigned = -1

// Chromosome is the compact form of an Assignment: gene i holds the knapsack
// of item i, or Unassigned.
type Chromosome []int

// ChromosomeFromAssignment encodes a binary assignment with at most one 1 per row.
//
// Errors: ErrNilInput, ErrNonBinary, ErrMultipleAssignment.
func ChromosomeFromAssignment(a *Assignment) (Chromosome, error) {
	if a == nil {
		return nil, opErrorf(opChromosome, ErrNilInput)
	}
	if !a.IsBinary() {
		return nil, opErrorf(opChromosome, ErrNonBinary)
	}

	c := make(Chromosome, a.NumItems())
	for i := range c {
		if a.rowSum(i) > 1 {
			return nil, opErrorf(fmt.Sprintf("%s: item %d", opChromosome, i), ErrMultipleAssignment)
		}
		c[i] = a.KnapsackOf(i)
	}

	return c, nil
}

// AssignmentFromChromosome decodes c into an N×K assignment.
//
// Errors: ErrDimensionMismatch when a gene is outside [Unassigned, K) or K < 0.
func AssignmentFromChromosome(c Chromosome, numKnapsacks int) (*Assignment, error) {
	if numKnapsacks < 0 {
		return nil, opErrorf(opChromosome, ErrDimensionMismatch)
	}
	a, err := NewAssignment(len(c), numKnapsacks)
	if err != nil {
		return nil, err
	}
	for i, k := range c {
		if k == Unassigned {
			continue
		}
		if k < 0 || k >= numKnapsacks {
			return nil, opErrorf(fmt.Sprintf("%s: gene %d=%d", opChromosome, i, k), ErrDimensionMismatch)
		}
		a.set(i, k, 1)
	}

	return a, nil
}

// Clone returns an independent copy.
func (c Chromosome) Clone() Chromosome { return slices.Clone(c) }

// UnassignedItems lists, in ascending order, the items placed nowhere.
func UnassignedItems(a *Assignment) []int {
	out := []int{}
	for i := 0; i < a.NumItems(); i++ {
		if !a.IsPlaced(i) {
			out = append(out, i)
		}
	}

	return out
}

// UnassignedGenes lists the positions of c holding Unassigned.
func UnassignedGenes(c Chromosome) []int {
	out := []int{}
	for i, k := range c {
		if k == Unassigned {
			out = append(out, i)
		}
	}

	return out
}

// EmptyKnapsacks lists, in ascending order, the knapsacks that hold no item.
func EmptyKnapsacks(a *Assignment) []int {
	out := []int{}
	for k := 0; k < a.NumKnapsacks(); k++ {
		if len(a.Members(k)) == 0 {
			out = append(out, k)
		}
	}

	return out
}

// EmptyKnapsacksOfChromosome is EmptyKnapsacks for the compact form.
//
// Errors: ErrDimensionMismatch when some gene names a knapsack >= numKnapsacks.
func EmptyKnapsacksOfChromosome(c Chromosome, numKnapsacks int) ([]int, error) {
	used := make([]bool, max(numKnapsacks, 0))
	for i, k := range c {
		if k == Unassigned {
			continue
		}
		if k < 0 || k >= numKnapsacks {
			return nil, opErrorf(fmt.Sprintf("%s: gene %d=%d", opChromosome, i, k), ErrDimensionMismatch)
		}
		used[k] = true
	}

	out := []int{}
	for k, u := range used {
		if !u {
			out = append(out, k)
		}
	}

	return out, nil
}

// RemainingCapacities returns c_k minus the load of knapsack k under a.
// Entries are negative for overloaded knapsacks.
func RemainingCapacities(weights, capacities []float64, a *Assignment) ([]float64, error) {
	if a == nil {
		return nil, ErrNilInput
	}
	if len(weights) != a.NumItems() || len(capacities) != a.NumKnapsacks() {
		return nil, fmt.Errorf("remaining capacities: %w", ErrDimensionMismatch)
	}
	loads, err := a.Loads(weights)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(capacities))
	for k := range capacities {
		out[k] = capacities[k] - loads[k]
	}

	return out, nil
}

// PossibleAssignments marks, for every unassigned item, each knapsack whose
// remaining capacity admits it. Placed rows are copied unchanged. The result
// is generally not a valid assignment; it is a map of options. The second
// return value lists the unassigned items.
func PossibleAssignments(weights, capacities []float64, a *Assignment) (*Assignment, []int, error) {
	remaining, err := RemainingCapacities(weights, capacities, a)
	if err != nil {
		return nil, nil, err
	}
	out := a.Clone()
	free := UnassignedItems(a)
	for _, i := range free {
		for k, r := range remaining {
			if r >= weights[i] {
				out.set(i, k, 1)
			}
		}
	}

	return out, free, nil
}
