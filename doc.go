// Package contractbench measures how a contract-algebra library gets used.
//
// # Overview
//
// Polyhedral contract tools spend their time in three binary operations:
// compose, quotient, and merge. contractbench wraps those operations with a
// transparent decorator that counts invocations and tracks the smallest and
// largest contract seen (constraint count, variable count), then aggregates
// the numbers across experiment runs into a human-readable report.
//
// The algebra itself lives elsewhere. This package never touches contract
// semantics; it only reads counts off the operands and results.
//
// # Components
//
//   - size.go       - Size value: (constraints, variables) with a total order
//   - instrument.go - Counter, Instrumentation, and the Algebra wrapper
//   - counters.go   - RunCounters snapshots and their Combine fold
//   - stats.go      - Aggregate statistics over a population of runs
//   - runner.go     - Sequential multi-run experiment driver
//   - assertions.go - Test helpers for the tracking invariants
//
// # Quick Start
//
// Wrap an algebra, drive it, snapshot, and report:
//
//	in := contractbench.NewInstrumentation()
//	alg := contractbench.Instrument(myAlgebra, in)
//
//	// ... many alg.Compose / alg.Quotient / alg.Merge calls ...
//
//	snap := in.Snapshot()
//	fmt.Print(snap)
//
// Or let the runner handle the per-run lifecycle and summarize:
//
//	runs, err := contractbench.Run(ctx, myAlgebra, workload, contractbench.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	agg, err := contractbench.Summarize(runs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(agg)
//
// # Concurrency
//
// Counters are plain mutable state with no locking. Within one goroutine
// that is exactly right; across goroutines it is wrong. Give each worker its
// own Instrumentation and fold the snapshots with RunCounters.Combine, which
// is associative and commutative, so the fold order never matters.
//
// # Sentinels
//
// A counter that has never fired reports an unbounded minimum size and a zero
// maximum. Reports render the unbounded sentinel as "inf" rather than as a
// number, so "no data" can never be read as a gigantic contract.
package contractbench
