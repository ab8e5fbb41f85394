// SPDX-License-Identifier: MIT

package qmkp

import "math/rand"

// RandomAssignment builds a profit-blind feasible assignment.
//
// Items are visited in a random permutation. For each item the available
// knapsacks are those whose remaining capacity is at least its weight. With
// no available knapsack the item stays free; otherwise it is skipped with
// probability 1/|available| and placed into a uniformly chosen available
// knapsack otherwise. The result is feasible but usually not maximal.
//
// A nil rng uses NewRand(0).
// Complexity: O(N·K).
func RandomAssignment(p *Profits, weights, capacities []float64, rng *rand.Rand) (*Assignment, error) {
	if err := validateInstance(p, weights, capacities); err != nil {
		return nil, opErrorf(opRandom, err)
	}
	if rng == nil {
		rng = NewRand(0)
	}

	a, err := NewAssignment(len(weights), len(capacities))
	if err != nil {
		return nil, opErrorf(opRandom, err)
	}
	remaining := make([]float64, len(capacities))
	copy(remaining, capacities)

	avail := make([]int, 0, len(capacities))
	for _, i := range permRange(len(weights), rng) {
		avail = avail[:0]
		for k, r := range remaining {
			if r >= weights[i] {
				avail = append(avail, k)
			}
		}
		if len(avail) == 0 {
			continue
		}
		if rng.Float64() < 1.0/float64(len(avail)) {
			continue
		}
		k := avail[rng.Intn(len(avail))]
		a.set(i, k, 1)
		remaining[k] -= weights[i]
	}

	return a, nil
}
