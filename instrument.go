package contractbench

// BinaryOp is a binary contract-algebra operation: compose, quotient,
// or merge. The algebra library supplies the implementations; this package
// only wraps them.
type BinaryOp func(lhs, rhs Contract) (Contract, error)

// Counter accumulates invocation statistics for one wrapped operation:
// how many times it ran, and the smallest and largest contract (per field)
// seen among its operands and results.
//
// The zero value is ready to use: before the first recorded call the minimum
// reads as Unbounded() and the maximum as the zero size, the identities for
// min- and max-folds respectively.
//
// Counters are not safe for concurrent use. Callers running parallel
// experiments should give each worker its own Instrumentation and fold the
// snapshots together with RunCounters.Combine afterward.
type Counter struct {
	calls    int
	recorded bool
	min, max Size
}

// Wrap decorates op so every call updates the counter. The decoration is
// transparent: op runs first, and its result and error reach the caller
// unchanged. Statistics are recorded only when op succeeds, so an error
// from the algebra is never masked by measurement.
func (c *Counter) Wrap(op BinaryOp) BinaryOp {
	return func(lhs, rhs Contract) (Contract, error) {
		result, err := op(lhs, rhs)
		if err != nil {
			return result, err
		}
		c.record(Measure(lhs), Measure(rhs), Measure(result))
		return result, nil
	}
}

// record counts one invocation and folds the given sizes into the running
// per-field minimum and maximum.
func (c *Counter) record(sizes ...Size) {
	c.calls++
	for _, s := range sizes {
		if !c.recorded {
			c.min, c.max = s, s
			c.recorded = true
			continue
		}
		c.min = c.min.Meet(s)
		c.max = c.max.Join(s)
	}
}

// Calls returns the number of recorded invocations.
func (c *Counter) Calls() int {
	return c.calls
}

// MinSize returns the per-field smallest size seen, or Unbounded() if
// nothing has been recorded yet.
func (c *Counter) MinSize() Size {
	if !c.recorded {
		return Unbounded()
	}
	return c.min
}

// MaxSize returns the per-field largest size seen, or the zero size if
// nothing has been recorded yet.
func (c *Counter) MaxSize() Size {
	if !c.recorded {
		return Size{}
	}
	return c.max
}

// Reset returns the counter to its initial state. Snapshots taken earlier
// are unaffected.
func (c *Counter) Reset() {
	*c = Counter{}
}

// Instrumentation owns one Counter per contract-algebra operation. It is an
// explicit state object: callers construct it, wrap their operations (or an
// Algebra) through it, and snapshot it at run boundaries. Nothing here
// mutates the algebra library itself.
type Instrumentation struct {
	Compose  Counter
	Quotient Counter
	Merge    Counter
}

// NewInstrumentation returns a fresh Instrumentation. The zero value is
// equally usable; the constructor exists for symmetry with Reset.
func NewInstrumentation() *Instrumentation {
	return &Instrumentation{}
}

// Snapshot freezes the current counter state into a RunCounters.
// It reads without resetting: two snapshots with no operation calls in
// between are equal.
func (in *Instrumentation) Snapshot() RunCounters {
	return RunCounters{
		Compose:  in.Compose.snapshot(),
		Quotient: in.Quotient.snapshot(),
		Merge:    in.Merge.snapshot(),
	}
}

// Reset clears all three counters, typically between runs that reuse one
// Instrumentation. Snapshot before resetting or the run's numbers are gone.
func (in *Instrumentation) Reset() {
	in.Compose.Reset()
	in.Quotient.Reset()
	in.Merge.Reset()
}

func (c *Counter) snapshot() OpCounters {
	return OpCounters{
		Calls:   c.Calls(),
		MinSize: c.MinSize(),
		MaxSize: c.MaxSize(),
	}
}

// Algebra is the contract-algebra surface being instrumented. The external
// library (or an adapter around it) implements this; so does the wrapper
// returned by Instrument.
type Algebra interface {
	Compose(lhs, rhs Contract) (Contract, error)
	Quotient(lhs, rhs Contract) (Contract, error)
	Merge(lhs, rhs Contract) (Contract, error)
}

// Instrument wraps an Algebra so every operation call updates in.
// The wrapper forwards to alg and is exactly as transparent as Counter.Wrap.
func Instrument(alg Algebra, in *Instrumentation) Algebra {
	return &instrumentedAlgebra{
		compose:  in.Compose.Wrap(alg.Compose),
		quotient: in.Quotient.Wrap(alg.Quotient),
		merge:    in.Merge.Wrap(alg.Merge),
	}
}

type instrumentedAlgebra struct {
	compose  BinaryOp
	quotient BinaryOp
	merge    BinaryOp
}

func (a *instrumentedAlgebra) Compose(lhs, rhs Contract) (Contract, error) {
	return a.compose(lhs, rhs)
}

func (a *instrumentedAlgebra) Quotient(lhs, rhs Contract) (Contract, error) {
	return a.quotient(lhs, rhs)
}

func (a *instrumentedAlgebra) Merge(lhs, rhs Contract) (Contract, error) {
	return a.merge(lhs, rhs)
}
