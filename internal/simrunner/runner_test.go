package simrunner

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voteforge/voteforge/internal/sim"
)

func testEstimator(t *testing.T) *sim.Estimator {
	t.Helper()
	cfg := sim.DefaultConfig()
	cfg.Trials = 120
	cfg.Voters = 9
	cfg.Candidates = 3
	est, err := sim.NewEstimator(cfg)
	require.NoError(t, err)
	return est
}

// The runner must be invisible in the results: any worker count yields
// statistics bit-identical to the sequential estimator.
func TestRunMatchesSequential(t *testing.T) {
	est := testEstimator(t)
	ctx := context.Background()

	sequential, err := est.RunAll(ctx)
	require.NoError(t, err)

	for _, workers := range []int{1, 2, 3, 8} {
		got, err := New(est, WithWorkers(workers)).Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, sequential, got, "workers=%d", workers)
	}
}

func TestRunMoreBatchesThanTrials(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.Trials = 3
	cfg.Voters = 5
	cfg.Candidates = 3
	est, err := sim.NewEstimator(cfg)
	require.NoError(t, err)

	got, err := New(est, WithWorkers(16)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cfg.Trials, got.Trials)
}

func TestRunRecordsMetrics(t *testing.T) {
	est := testEstimator(t)
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	stats, err := New(est, WithWorkers(2), WithMetrics(metrics)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, float64(stats.Trials), testutil.ToFloat64(metrics.trialsTotal))
	assert.Equal(t, float64(stats.Cycles), testutil.ToFloat64(metrics.cyclesTotal))
}

func TestRunHonorsContext(t *testing.T) {
	est := testEstimator(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(est).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatchBounds(t *testing.T) {
	tests := []struct {
		name       string
		trials     int
		maxBatches int
	}{
		{"even split", 100, 4},
		{"uneven split", 101, 4},
		{"more batches than trials", 3, 10},
		{"single batch", 50, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batches := batchBounds(tt.trials, tt.maxBatches)

			covered := 0
			next := 0
			for _, b := range batches {
				assert.Equal(t, next, b.from)
				assert.Greater(t, b.to, b.from)
				covered += b.to - b.from
				next = b.to
			}
			assert.Equal(t, tt.trials, covered)
		})
	}
}
