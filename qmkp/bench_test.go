// SPDX-License-Identifier: MIT
// Package qmkp_test benchmarks the heuristics on a generated 50×5 instance,
// the size the Complexity notes on Constructive, RoundRobin and FCS refer to.
package qmkp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qmkp/qmkp"
)

const (
	benchItems     = 50
	benchKnapsacks = 5
	benchHistory   = 10
)

// sinks to defeat dead-code elimination
var (
	sinkA *qmkp.Assignment
	sinkD qmkp.Densities
)

// benchInstance widens the capacities of a random instance so that a few
// knapsacks hold most of the 50 items.
func benchInstance(b *testing.B) instance {
	b.Helper()
	inst := randomInstance(b, rand.New(rand.NewSource(seedDet)), benchItems, benchKnapsacks)
	for k := range inst.capacities {
		inst.capacities[k] *= 4
	}

	return inst
}

func BenchmarkConstructive(b *testing.B) {
	inst := benchInstance(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a, err := qmkp.Constructive(inst.profits, inst.weights, inst.capacities, nil)
		if err != nil {
			b.Fatal(err)
		}
		sinkA = a
	}
}

func BenchmarkRoundRobin(b *testing.B) {
	inst := benchInstance(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a, err := qmkp.RoundRobin(inst.profits, inst.weights, inst.capacities, nil, nil)
		if err != nil {
			b.Fatal(err)
		}
		sinkA = a
	}
}

func BenchmarkFCS(b *testing.B) {
	inst := benchInstance(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a, err := qmkp.FCS(inst.profits, inst.weights, inst.capacities,
			qmkp.WithSeed(seedDet), qmkp.WithLenHistory(benchHistory))
		if err != nil {
			b.Fatal(err)
		}
		sinkA = a
	}
}

// BenchmarkReducedValueDensity isolates the density pass every greedy step
// starts from.
func BenchmarkReducedValueDensity(b *testing.B) {
	inst := benchInstance(b)
	empty, err := qmkp.NewAssignment(benchItems, benchKnapsacks)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d, err := qmkp.ReducedValueDensity(inst.profits, inst.weights, empty)
		if err != nil {
			b.Fatal(err)
		}
		sinkD = d
	}
}
