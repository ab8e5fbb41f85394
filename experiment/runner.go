// SPDX-License-Identifier: MIT

package experiment

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/qmkp/config"
	"github.com/katalvlaran/qmkp/internal/logging"
	"github.com/katalvlaran/qmkp/qmkp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrInfeasibleResult indicates a solver returned an assignment that breaks
// a capacity or the one-knapsack-per-item rule.
var ErrInfeasibleResult = errors.New("experiment: solver returned an infeasible assignment")

// SolverFactory builds the solver for one (run, algorithm) pair. seed is the
// derived seed of that pair.
type SolverFactory func(alg qmkp.Algorithm, seed int64) (qmkp.Solver, error)

// Runner executes a comparison experiment. A Runner may be reused; every
// Run call produces a fresh Report with a new ID.
type Runner struct {
	cfg     config.Config
	spec    InstanceSpec
	algs    []qmkp.Algorithm
	workers int

	logger  *zap.Logger
	metrics *Metrics
	factory SolverFactory
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the progress logger. Without it the Runner builds one from
// cfg.Log; a nil l silences logging.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		r.logger = logging.OrNop(l)
	}
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) {
		r.metrics = m
	}
}

// WithSolverFactory replaces qmkp.NewSolver as the source of solvers.
func WithSolverFactory(f SolverFactory) Option {
	return func(r *Runner) {
		r.factory = f
	}
}

// NewRunner validates cfg and prepares a Runner.
//
// Errors: config.ErrInvalid, or the error of logging.New when no logger is
// injected.
func NewRunner(cfg config.Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	algs, err := cfg.ParsedAlgorithms()
	if err != nil {
		return nil, err
	}

	r := &Runner{
		cfg:     cfg,
		spec:    SpecFromConfig(cfg.Instance),
		algs:    algs,
		workers: cfg.Workers,
	}
	if r.workers == 0 {
		r.workers = runtime.GOMAXPROCS(0)
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		if r.logger, err = logging.New(cfg.Log.Level, cfg.Log.Development); err != nil {
			return nil, err
		}
	}
	if r.factory == nil {
		fcsOpts := append(cfg.FCS.Options(), qmkp.WithLogger(r.logger))
		r.factory = func(alg qmkp.Algorithm, seed int64) (qmkp.Solver, error) {
			return qmkp.NewSolver(alg, seed, fcsOpts...)
		}
	}

	return r, nil
}

// Algorithms returns the resolved algorithm list in report order.
func (r *Runner) Algorithms() []qmkp.Algorithm {
	return append([]qmkp.Algorithm(nil), r.algs...)
}

// Logger returns the progress logger in use.
func (r *Runner) Logger() *zap.Logger { return r.logger }

// streamsPerRun reserves one stream for the instance and one per built-in
// algorithm, whether or not it is configured.
var streamsPerRun = uint64(len(qmkp.Algorithms()) + 1)

// Run generates and solves every instance, stopping at the first error or
// when ctx is cancelled.
//
// Errors: ctx.Err(), ErrInfeasibleResult, or the solver's own error, each
// prefixed with the run index and algorithm.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	id := uuid.NewString()
	log := r.logger.With(zap.String("run_id", id))
	log.Info("experiment started",
		zap.Int("runs", r.cfg.Runs),
		zap.Int("workers", r.workers),
		zap.Int64("seed", r.cfg.Seed),
		zap.Stringers("algorithms", r.algs))

	profits := make([][]float64, len(r.algs))
	for i := range profits {
		profits[i] = make([]float64, r.cfg.Runs)
	}

	began := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for run := 0; run < r.cfg.Runs; run++ {
		if gctx.Err() != nil {
			break
		}
		run := run
		g.Go(func() error {
			return r.runOne(gctx, log, run, profits)
		})
	}
	if err := g.Wait(); err != nil {
		log.Warn("experiment aborted", zap.Error(err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		log.Warn("experiment cancelled", zap.Error(err))
		return nil, err
	}

	rep := newReport(id, r.cfg.Seed, r.spec, r.algs, profits, time.Since(began))
	for _, s := range rep.Summaries {
		log.Info("algorithm summary",
			zap.Stringer("algorithm", s.Algorithm),
			zap.Float64("mean", s.Mean),
			zap.Float64("min", s.Min),
			zap.Float64("max", s.Max))
	}
	log.Info("experiment finished", zap.Duration("elapsed", rep.Elapsed))

	return rep, nil
}

// runOne solves instance run with every algorithm, writing into its own
// column of profits.
func (r *Runner) runOne(ctx context.Context, log *zap.Logger, run int, profits [][]float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	base := uint64(run) * streamsPerRun
	prob, err := GenerateInstance(qmkp.DeriveRand(r.cfg.Seed, base), r.spec)
	if err != nil {
		return fmt.Errorf("run %d: %w", run, err)
	}
	r.metrics.instanceGenerated()

	for i, alg := range r.algs {
		if err = ctx.Err(); err != nil {
			return err
		}
		solver, err := r.factory(alg, qmkp.DeriveSeed(r.cfg.Seed, base+1+uint64(alg)))
		if err != nil {
			return fmt.Errorf("run %d: %s: %w", run, alg, err)
		}

		start := time.Now()
		a, profit, err := prob.Solve(solver)
		elapsed := time.Since(start)
		if err != nil {
			r.metrics.observe(alg.String(), StatusError, elapsed, 0)
			return fmt.Errorf("run %d: %s: %w", run, alg, err)
		}
		if err = qmkp.CheckFeasible(a, prob.Profits(), prob.Weights(), prob.Capacities()); err != nil {
			r.metrics.observe(alg.String(), StatusInfeasible, elapsed, 0)
			return fmt.Errorf("run %d: %s: %w: %w", run, alg, ErrInfeasibleResult, err)
		}
		r.metrics.observe(alg.String(), StatusOK, elapsed, profit)
		profits[i][run] = profit

		log.Debug("instance solved",
			zap.Int("run", run),
			zap.Stringer("algorithm", alg),
			zap.Float64("profit", profit),
			zap.Duration("elapsed", elapsed))
	}

	return nil
}
