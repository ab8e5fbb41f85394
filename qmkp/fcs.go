// SPDX-License-Identifier: MIT

package qmkp

import (
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"
)

// DefaultLenHistory is the default FCS stall limit.
const DefaultLenHistory = 50

// reanchorProbability is the chance per iteration that FCS restarts its walk
// from the best solution found so far.
const reanchorProbability = 0.5

// FCSOptions configures FCS.
type FCSOptions struct {
	// Alpha is the fraction of placed items dropped per iteration, in (0,1).
	// When not set through WithAlpha it is drawn once per call from Rand.
	Alpha float64

	// LenHistory is the number of consecutive non-improving iterations
	// before the search stops (>= 1).
	LenHistory int

	Rand   *rand.Rand  // takes precedence over Seed when non-nil
	Seed   int64       // seed for NewRand when Rand is nil (0 ⇒ default seed)
	Logger *zap.Logger // Debug records for progress; zap.NewNop by default

	alphaSet bool
}

// FCSOption represents a functional option for configuring FCS.
type FCSOption func(*FCSOptions)

// WithAlpha fixes the drop fraction. Values outside (0,1) make FCS return
// ErrParameterRange.
func WithAlpha(alpha float64) FCSOption {
	return func(o *FCSOptions) {
		o.Alpha = alpha
		o.alphaSet = true
	}
}

// WithLenHistory sets the stall limit. Values below 1 make FCS return
// ErrParameterRange.
func WithLenHistory(n int) FCSOption {
	return func(o *FCSOptions) {
		o.LenHistory = n
	}
}

// WithRand injects the random source.
func WithRand(rng *rand.Rand) FCSOption {
	return func(o *FCSOptions) {
		o.Rand = rng
	}
}

// WithSeed seeds a private random source (used when no Rand is injected).
func WithSeed(seed int64) FCSOption {
	return func(o *FCSOptions) {
		o.Seed = seed
	}
}

// WithLogger sets the logger for search progress.
func WithLogger(l *zap.Logger) FCSOption {
	return func(o *FCSOptions) {
		o.Logger = l
	}
}

// DefaultFCSOptions returns the defaults:
//   - Alpha:      drawn per call.
//   - LenHistory: DefaultLenHistory.
//   - Rand:       nil (NewRand(Seed)).
//   - Seed:       0 (default seed).
//   - Logger:     zap.NewNop().
func DefaultFCSOptions() FCSOptions {
	return FCSOptions{
		LenHistory: DefaultLenHistory,
		Logger:     zap.NewNop(),
	}
}

func (o FCSOptions) validate() error {
	if o.alphaSet && !(o.Alpha > 0 && o.Alpha < 1) {
		return fmt.Errorf("alpha=%g not in (0,1): %w", o.Alpha, ErrParameterRange)
	}
	if o.LenHistory < 1 {
		return fmt.Errorf("len_history=%d < 1: %w", o.LenHistory, ErrParameterRange)
	}

	return nil
}

// FCS runs fix-and-complete search.
//
// Start from Constructive on the empty assignment. Each iteration drops
// ⌊|S|·alpha⌋ items chosen uniformly without replacement from the placed
// set S of the current solution, re-completes the rest with Constructive and
// makes the result the current solution. A strictly better result becomes the
// best and resets the stall counter; anything else increments it. Then, with
// probability 0.5, the current solution is reset to the best. The search
// stops after LenHistory consecutive non-improving iterations and returns the
// best solution, whose profit is never below Constructive's.
//
// Parameter errors (ErrParameterRange) are reported before any search work.
// Complexity: O(I·C) where I is the number of iterations and C the cost of
// one Constructive call.
func FCS(p *Profits, weights, capacities []float64, opts ...FCSOption) (*Assignment, error) {
	o := DefaultFCSOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, opErrorf(opFCS, err)
	}
	if err := validateInstance(p, weights, capacities); err != nil {
		return nil, opErrorf(opFCS, err)
	}

	rng := o.Rand
	if rng == nil {
		rng = NewRand(o.Seed)
	}
	log := o.Logger
	if log == nil {
		log = zap.NewNop()
	}
	alpha := o.Alpha
	if !o.alphaSet {
		for alpha == 0 { // Float64 is in [0,1); zero is redrawn
			alpha = rng.Float64()
		}
	}

	current, remaining, err := prepareStart(nil, weights, capacities)
	if err != nil {
		return nil, opErrorf(opFCS, err)
	}
	if err = complete(p, weights, current, remaining); err != nil {
		return nil, opErrorf(opFCS, err)
	}
	best, bestProfit := current, totalProfit(p, current)
	log.Debug("fcs initial solution",
		zap.Float64("alpha", alpha),
		zap.Int("len_history", o.LenHistory),
		zap.Float64("profit", bestProfit))

	var (
		iter, stall int
		placed      []int
	)
	for stall < o.LenHistory {
		iter++
		placed = placed[:0]
		for i := 0; i < current.NumItems(); i++ {
			if current.IsPlaced(i) {
				placed = append(placed, i)
			}
		}
		drop := int(math.Floor(float64(len(placed)) * alpha))

		next := current.Clone()
		for _, i := range sampleWithoutReplacement(placed, drop, rng) {
			next.clearRow(i)
		}
		if remaining, err = remainingOrError(next, weights, capacities, ErrInfeasibleStart); err != nil {
			return nil, opErrorf(opFCS, err)
		}
		if err = complete(p, weights, next, remaining); err != nil {
			return nil, opErrorf(opFCS, err)
		}

		if profit := totalProfit(p, next); profit > bestProfit {
			best, bestProfit = next, profit
			stall = 0
			log.Debug("fcs improvement",
				zap.Int("iteration", iter),
				zap.Int("dropped", drop),
				zap.Float64("profit", profit))
		} else {
			stall++
		}

		current = next
		if rng.Float64() < reanchorProbability {
			current = best
		}
	}
	log.Debug("fcs finished", zap.Int("iterations", iter), zap.Float64("profit", bestProfit))

	return best.Clone(), nil
}
