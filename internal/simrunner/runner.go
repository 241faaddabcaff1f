// Package simrunner fans a simulation study out across worker goroutines.
// Trials are pure functions of (config, trial index), so the runner can
// split the index range into batches, simulate them concurrently, and
// merge the partial accumulators into statistics that are bit-identical
// to a sequential run.
package simrunner

import (
	"context"
	"runtime"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/voteforge/voteforge/internal/sim"
)

// batchesPerWorker keeps batches small enough that workers stay busy even
// when trial costs are uneven across the index range.
const batchesPerWorker = 4

// Runner executes a study's trials in parallel batches.
type Runner struct {
	est     *sim.Estimator
	workers int
	metrics *Metrics
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers caps the number of concurrent batch workers. Values below 1
// fall back to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// WithMetrics attaches Prometheus instrumentation to the runner.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// New builds a Runner for the given estimator.
func New(est *sim.Estimator, opts ...Option) *Runner {
	r := &Runner{est: est}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers < 1 {
		r.workers = runtime.GOMAXPROCS(0)
	}
	return r
}

// Run simulates every configured trial and returns the merged statistics.
// The first batch error cancels the remaining batches.
func (r *Runner) Run(ctx context.Context) (sim.Stats, error) {
	cfg := r.est.Config()

	tracer := otel.Tracer("simrunner")
	ctx, span := tracer.Start(ctx, "Runner.Run")
	defer span.End()
	span.SetAttributes(
		attribute.Int("trials", cfg.Trials),
		attribute.Int("voters", cfg.Voters),
		attribute.Int("candidates", cfg.Candidates),
		attribute.String("model", cfg.Model),
		attribute.Int("workers", r.workers),
		attribute.StringSlice("methods", cfg.Methods),
	)

	batches := batchBounds(cfg.Trials, r.workers*batchesPerWorker)
	partials := make([]sim.Stats, len(batches))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, b := range batches {
		g.Go(func() error {
			start := time.Now()
			partial, err := r.est.Run(gctx, b.from, b.to)
			if err != nil {
				return err
			}
			r.metrics.observeBatch(time.Since(start))
			partials[i] = partial
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return sim.Stats{}, err
	}

	stats := sim.NewStats(cfg.Methods)
	for _, partial := range partials {
		stats = stats.Merge(partial)
	}

	r.metrics.recordStudy(stats.Trials, stats.Cycles)
	span.SetAttributes(
		attribute.Int("condorcet_winners", stats.CondorcetWinners),
		attribute.Int("cycles", stats.Cycles),
	)
	return stats, nil
}

type bounds struct{ from, to int }

// batchBounds splits [0, trials) into up to maxBatches contiguous ranges
// of near-equal size.
func batchBounds(trials, maxBatches int) []bounds {
	if maxBatches > trials {
		maxBatches = trials
	}
	out := make([]bounds, 0, maxBatches)
	from := 0
	for i := 0; i < maxBatches; i++ {
		size := (trials - from) / (maxBatches - i)
		out = append(out, bounds{from: from, to: from + size})
		from += size
	}
	return out
}
