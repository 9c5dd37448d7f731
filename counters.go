package contractbench

import (
	"fmt"
	"strings"
)

// OpCounters is the frozen statistics of one operation at snapshot time.
type OpCounters struct {
	Calls   int
	MinSize Size // Unbounded() when the operation was never invoked
	MaxSize Size // zero when the operation was never invoked
}

// combine folds two per-operation records: counts sum, sizes take the
// per-field minimum and maximum.
func (o OpCounters) combine(p OpCounters) OpCounters {
	return OpCounters{
		Calls:   o.Calls + p.Calls,
		MinSize: o.MinSize.Meet(p.MinSize),
		MaxSize: o.MaxSize.Join(p.MaxSize),
	}
}

// RunCounters is an immutable snapshot of the three contract-algebra
// operations' counters for one run. Snapshots from separate runs (or
// separate workers) fold together with Combine.
type RunCounters struct {
	Compose  OpCounters
	Quotient OpCounters
	Merge    OpCounters
}

// Combine merges two snapshots into the view of both runs together:
// invocation counts sum, size ranges widen to cover both inputs.
//
// Combine is associative and commutative, so any number of runs can be
// folded in any order:
//
//	total := runs[0]
//	for _, r := range runs[1:] {
//	    total = total.Combine(r)
//	}
func (r RunCounters) Combine(o RunCounters) RunCounters {
	return RunCounters{
		Compose:  r.Compose.combine(o.Compose),
		Quotient: r.Quotient.combine(o.Quotient),
		Merge:    r.Merge.combine(o.Merge),
	}
}

// String renders a multi-line report of the snapshot.
func (r RunCounters) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "contract operation counts: compose=%d, quotient=%d, merge=%d\n",
		r.Compose.Calls, r.Quotient.Calls, r.Merge.Calls)
	fmt.Fprintf(&b, "compose sizes: min=%s, max=%s\n", r.Compose.MinSize, r.Compose.MaxSize)
	fmt.Fprintf(&b, "quotient sizes: min=%s, max=%s\n", r.Quotient.MinSize, r.Quotient.MaxSize)
	fmt.Fprintf(&b, "merge sizes: min=%s, max=%s\n", r.Merge.MinSize, r.Merge.MaxSize)
	return b.String()
}
