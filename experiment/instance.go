// SPDX-License-Identifier: MIT

package experiment

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/qmkp/config"
	"github.com/katalvlaran/qmkp/matrix"
	"github.com/katalvlaran/qmkp/qmkp"
)

// ErrInvalidSpec indicates an InstanceSpec that cannot produce an instance.
var ErrInvalidSpec = errors.New("experiment: invalid instance spec")

// InstanceSpec shapes a random instance. Ranges are half-open [min, max).
type InstanceSpec struct {
	Items       int
	Knapsacks   int
	ProfitScale float64
	WeightMin   int
	WeightMax   int
	CapacityMin int
	CapacityMax int
}

// SpecFromConfig copies the instance section of a configuration.
func SpecFromConfig(c config.InstanceConfig) InstanceSpec {
	return InstanceSpec{
		Items:       c.Items,
		Knapsacks:   c.Knapsacks,
		ProfitScale: c.ProfitScale,
		WeightMin:   c.WeightMin,
		WeightMax:   c.WeightMax,
		CapacityMin: c.CapacityMin,
		CapacityMax: c.CapacityMax,
	}
}

// Validate reports the first constraint s violates.
func (s InstanceSpec) Validate() error {
	switch {
	case s.Items < 1:
		return fmt.Errorf("%w: items=%d < 1", ErrInvalidSpec, s.Items)
	case s.Knapsacks < 0:
		return fmt.Errorf("%w: knapsacks=%d < 0", ErrInvalidSpec, s.Knapsacks)
	case !(s.ProfitScale > 0) || math.IsInf(s.ProfitScale, 0):
		return fmt.Errorf("%w: profit scale=%g", ErrInvalidSpec, s.ProfitScale)
	case s.WeightMin < 1 || s.WeightMax <= s.WeightMin:
		return fmt.Errorf("%w: weight range [%d,%d)", ErrInvalidSpec, s.WeightMin, s.WeightMax)
	case s.CapacityMin < 0 || s.CapacityMax <= s.CapacityMin:
		return fmt.Errorf("%w: capacity range [%d,%d)", ErrInvalidSpec, s.CapacityMin, s.CapacityMax)
	}

	return nil
}

// GenerateInstance draws one instance from rng. The draw order is fixed
// (factor matrix row-major, then weights, then capacities), so equal seeds
// give equal problems.
//
// Complexity: O(N³) for the profit product.
func GenerateInstance(rng *rand.Rand, spec InstanceSpec) (*qmkp.Problem, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil rng", ErrInvalidSpec)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	n := spec.Items
	factor, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("factor matrix: %w", err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			_ = factor.Set(i, j, spec.ProfitScale*rng.Float64()) // in range, finite
		}
	}
	ft, err := matrix.Transpose(factor)
	if err != nil {
		return nil, fmt.Errorf("factor transpose: %w", err)
	}
	pm, err := matrix.Mul(factor, ft)
	if err != nil {
		return nil, fmt.Errorf("profit product: %w", err)
	}
	profits, err := qmkp.NewProfitsFromMatrix(pm)
	if err != nil {
		return nil, fmt.Errorf("profits: %w", err)
	}

	weights := make([]float64, n)
	for i = range weights {
		weights[i] = float64(spec.WeightMin + rng.Intn(spec.WeightMax-spec.WeightMin))
	}
	capacities := make([]float64, spec.Knapsacks)
	for i = range capacities {
		capacities[i] = float64(spec.CapacityMin + rng.Intn(spec.CapacityMax-spec.CapacityMin))
	}

	return qmkp.NewProblem(profits, weights, capacities,
		qmkp.WithName(fmt.Sprintf("random(%d, %d)", n, spec.Knapsacks)))
}
