package contractbench

import (
	"fmt"
	"strings"
)

// OpAggregate summarizes one operation's behavior across a population of runs.
type OpAggregate struct {
	MinCalls int     // fewest invocations in any single run
	MaxCalls int     // most invocations in any single run
	AvgCalls float64 // population mean of per-run invocation counts
	MinSize  Size    // smallest per-run minimum, by the lexicographic order
	MaxSize  Size    // largest per-run maximum, by the lexicographic order
}

// Aggregate is the read-only summary of a collection of RunCounters,
// one OpAggregate per contract-algebra operation.
type Aggregate struct {
	Runs     int
	Compose  OpAggregate
	Quotient OpAggregate
	Merge    OpAggregate
}

// Summarize reduces a non-empty collection of run snapshots into per-operation
// min/max/average invocation counts and overall size extremes.
//
// The size extremes select whole Size values by the lexicographic order, so
// the aggregate maximum is always one of the runs' maxima (compare Combine,
// which widens ranges per field). Averages are population means.
func Summarize(runs []RunCounters) (Aggregate, error) {
	if len(runs) == 0 {
		return Aggregate{}, fmt.Errorf("need at least 1 run, got 0")
	}

	agg := Aggregate{
		Runs:     len(runs),
		Compose:  newOpAggregate(runs[0].Compose),
		Quotient: newOpAggregate(runs[0].Quotient),
		Merge:    newOpAggregate(runs[0].Merge),
	}
	for _, r := range runs[1:] {
		agg.Compose.fold(r.Compose)
		agg.Quotient.fold(r.Quotient)
		agg.Merge.fold(r.Merge)
	}

	n := float64(len(runs))
	agg.Compose.AvgCalls /= n
	agg.Quotient.AvgCalls /= n
	agg.Merge.AvgCalls /= n

	return agg, nil
}

// newOpAggregate seeds the fold with a single run's record, so a one-run
// summary reproduces that run exactly.
func newOpAggregate(o OpCounters) OpAggregate {
	return OpAggregate{
		MinCalls: o.Calls,
		MaxCalls: o.Calls,
		AvgCalls: float64(o.Calls), // divided by the run count at the end
		MinSize:  o.MinSize,
		MaxSize:  o.MaxSize,
	}
}

// fold accumulates one more run. AvgCalls holds the running sum until
// Summarize divides it.
func (a *OpAggregate) fold(o OpCounters) {
	a.MinCalls = min(a.MinCalls, o.Calls)
	a.MaxCalls = max(a.MaxCalls, o.Calls)
	a.AvgCalls += float64(o.Calls)
	a.MinSize = a.MinSize.Min(o.MinSize)
	a.MaxSize = a.MaxSize.Max(o.MaxSize)
}

// String renders a multi-line report of the aggregate.
func (a Aggregate) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "contract compose,quotient,merge statistics over %d runs:\n", a.Runs)
	fmt.Fprintf(&b, "min calls: (compose: %d, quotient: %d, merge: %d)\n",
		a.Compose.MinCalls, a.Quotient.MinCalls, a.Merge.MinCalls)
	fmt.Fprintf(&b, "max calls: (compose: %d, quotient: %d, merge: %d)\n",
		a.Compose.MaxCalls, a.Quotient.MaxCalls, a.Merge.MaxCalls)
	fmt.Fprintf(&b, "avg calls: (compose: %g, quotient: %g, merge: %g)\n",
		a.Compose.AvgCalls, a.Quotient.AvgCalls, a.Merge.AvgCalls)
	fmt.Fprintf(&b, "compose sizes: min=%s, max=%s\n", a.Compose.MinSize, a.Compose.MaxSize)
	fmt.Fprintf(&b, "quotient sizes: min=%s, max=%s\n", a.Quotient.MinSize, a.Quotient.MaxSize)
	fmt.Fprintf(&b, "merge sizes: min=%s, max=%s\n", a.Merge.MinSize, a.Merge.MaxSize)
	return b.String()
}
