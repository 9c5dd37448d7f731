package contractbench

import (
	"context"
	"fmt"
)

// Workload performs one experiment run against the given algebra.
// Implementations drive whatever sequence of compose/quotient/merge calls
// the experiment calls for; the algebra they receive is already instrumented.
type Workload func(ctx context.Context, alg Algebra) error

// Config controls experiment execution.
type Config struct {
	Runs int // how many times to execute the workload
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{Runs: 5}
}

// Run executes the workload cfg.Runs times, each run against a freshly
// instrumented view of alg, and returns one RunCounters snapshot per run.
//
// Runs execute sequentially. Each gets its own Instrumentation, so a
// workload error in run k cannot corrupt earlier snapshots; feed the result
// to Summarize, or fold it with RunCounters.Combine for a single total.
func Run(ctx context.Context, alg Algebra, w Workload, cfg Config) ([]RunCounters, error) {
	if cfg.Runs < 1 {
		return nil, fmt.Errorf("need at least 1 run, got %d", cfg.Runs)
	}

	results := make([]RunCounters, 0, cfg.Runs)

	for i := 0; i < cfg.Runs; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("canceled before run %d: %w", i+1, err)
		}

		in := NewInstrumentation()
		if err := w(ctx, Instrument(alg, in)); err != nil {
			return nil, fmt.Errorf("failed at run %d: %w", i+1, err)
		}
		results = append(results, in.Snapshot())
	}

	return results, nil
}
