// SPDX-License-Identifier: MIT

package qmkp

import "fmt"

// RoundRobin completes start (nil means empty) by letting knapsacks take
// turns in the given order (empty order means 0..K-1; repeats are allowed).
// On its turn a knapsack takes the free item of highest density towards it
// among those that fit; ties go to the lowest item index. A knapsack with
// nothing that fits skips its turn but stays in the rotation. The procedure
// stops after a full pass of the order without any placement.
//
// Same validation and superset guarantee as Constructive; an order entry
// outside [0,K) gives ErrDimensionMismatch.
//
// Complexity: O(R·|order|·N) for R committed items, plus O(N²·K) set-up.
func RoundRobin(p *Profits, weights, capacities []float64, start *Assignment, order []int) (*Assignment, error) {
	if err := validateInstance(p, weights, capacities); err != nil {
		return nil, opErrorf(opRoundRobin, err)
	}
	order, err := normalizeOrder(order, len(capacities))
	if err != nil {
		return nil, opErrorf(opRoundRobin, err)
	}
	work, remaining, err := prepareStart(start, weights, capacities)
	if err != nil {
		return nil, opErrorf(opRoundRobin, err)
	}
	table, err := newDensityTable(p, weights, work)
	if err != nil {
		return nil, opErrorf(opRoundRobin, err)
	}

	n := work.NumItems()
	placed := make([]bool, n)
	free := 0
	for i := 0; i < n; i++ {
		placed[i] = work.IsPlaced(i)
		if !placed[i] {
			free++
		}
	}

	for progress := true; progress && free > 0; {
		progress = false
		for _, k := range order {
			best := -1
			for i := 0; i < n; i++ {
				if placed[i] || weights[i] > remaining[k] {
					continue
				}
				if best < 0 || table.at(i, k) > table.at(best, k) {
					best = i
				}
			}
			if best < 0 {
				continue // skip this turn
			}
			work.set(best, k, 1)
			placed[best] = true
			free--
			remaining[k] -= weights[best]
			table.commit(best, k)
			progress = true
		}
	}

	return work, nil
}

// normalizeOrder returns 0..K-1 for an empty order and a validated copy otherwise.
func normalizeOrder(order []int, numKnapsacks int) ([]int, error) {
	if len(order) == 0 {
		out := make([]int, numKnapsacks)
		for k := range out {
			out[k] = k
		}
		return out, nil
	}
	out := make([]int, len(order))
	for x, k := range order {
		if k < 0 || k >= numKnapsacks {
			return nil, fmt.Errorf("order[%d]=%d: %w", x, k, ErrDimensionMismatch)
		}
		out[x] = k
	}

	return out, nil
}
