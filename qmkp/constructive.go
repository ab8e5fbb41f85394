// SPDX-License-Identifier: MIT

package qmkp

import "sort"

// Constructive greedily completes start (nil means empty) to a feasible
// assignment.
//
// Each round ranks every (free item, knapsack) pair by value density,
// highest first, and commits the first pair whose item fits the knapsack's
// remaining capacity. Ties keep row-major scan order, i.e. lower item index
// first, then lower knapsack index. Densities are updated incrementally after
// every commit. The loop ends when no free item fits any knapsack.
//
// The result is a fresh superset of start; start itself is never modified.
// Validation order: profits vs weights, per-knapsack slices vs K, weights,
// capacities, then start shape, binary, row sums and load (ErrInfeasibleStart).
//
// Complexity: O(R·N·K·log(N·K)) for R committed items, plus O(N²·K) set-up.
func Constructive(p *Profits, weights, capacities []float64, start *Assignment) (*Assignment, error) {
	if err := validateInstance(p, weights, capacities); err != nil {
		return nil, opErrorf(opConstructive, err)
	}
	work, remaining, err := prepareStart(start, weights, capacities)
	if err != nil {
		return nil, opErrorf(opConstructive, err)
	}
	if err = complete(p, weights, work, remaining); err != nil {
		return nil, opErrorf(opConstructive, err)
	}

	return work, nil
}

// candidate is one (item, knapsack) pair with its current density.
type candidate struct {
	item, ks int
	density  float64
}

// complete runs the greedy loop in place on a validated working copy.
func complete(p *Profits, weights []float64, a *Assignment, remaining []float64) error {
	table, err := newDensityTable(p, weights, a)
	if err != nil {
		return err
	}

	n, numKs := a.NumItems(), a.NumKnapsacks()
	placed := make([]bool, n)
	free := 0
	for i := 0; i < n; i++ {
		placed[i] = a.IsPlaced(i)
		if !placed[i] {
			free++
		}
	}

	cands := make([]candidate, 0, free*numKs)
	for free > 0 {
		cands = cands[:0]
		for i := 0; i < n; i++ { // row-major scan fixes the tie-break order
			if placed[i] {
				continue
			}
			for k := 0; k < numKs; k++ {
				cands = append(cands, candidate{item: i, ks: k, density: table.at(i, k)})
			}
		}
		sort.SliceStable(cands, func(x, y int) bool {
			return cands[x].density > cands[y].density
		})

		chosen := -1
		for c := range cands {
			if weights[cands[c].item] <= remaining[cands[c].ks] {
				chosen = c
				break
			}
		}
		if chosen < 0 {
			break // nothing fits anywhere
		}

		i, k := cands[chosen].item, cands[chosen].ks
		a.set(i, k, 1)
		placed[i] = true
		free--
		remaining[k] -= weights[i]
		table.commit(i, k)
	}

	return nil
}
