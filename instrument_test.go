package contractbench

import (
	"errors"
	"testing"
)

// testContract is a minimal Contract carrying fixed counts.
type testContract struct {
	assumptions int
	guarantees  int
	variables   int
}

func (c testContract) AssumptionCount() int { return c.assumptions }
func (c testContract) GuaranteeCount() int  { return c.guarantees }
func (c testContract) VariableCount() int   { return c.variables }

// contractOfSize builds a contract measuring exactly (constraints, variables).
func contractOfSize(constraints, variables int) testContract {
	return testContract{guarantees: constraints, variables: variables}
}

// testAlgebra implements Algebra with arithmetic on counts: compose sums,
// quotient subtracts, merge takes the larger. Shapes are plausible enough
// to exercise tracking; the semantics are irrelevant here.
type testAlgebra struct{}

func (testAlgebra) Compose(lhs, rhs Contract) (Contract, error) {
	return testContract{
		guarantees: Measure(lhs).Constraints + Measure(rhs).Constraints,
		variables:  Measure(lhs).Variables + Measure(rhs).Variables,
	}, nil
}

func (testAlgebra) Quotient(lhs, rhs Contract) (Contract, error) {
	return testContract{
		guarantees: max(0, Measure(lhs).Constraints-Measure(rhs).Constraints),
		variables:  max(0, Measure(lhs).Variables-Measure(rhs).Variables),
	}, nil
}

func (testAlgebra) Merge(lhs, rhs Contract) (Contract, error) {
	s := Measure(lhs).Join(Measure(rhs))
	return contractOfSize(s.Constraints, s.Variables), nil
}

// TestCounter_ZeroValue verifies the initial sentinels: unbounded minimum,
// zero maximum, zero calls.
func TestCounter_ZeroValue(t *testing.T) {
	var c Counter

	if c.Calls() != 0 {
		t.Errorf("fresh counter has %d calls, want 0", c.Calls())
	}
	if !c.MinSize().IsUnbounded() {
		t.Errorf("fresh counter min size = %v, want unbounded", c.MinSize())
	}
	if c.MaxSize() != (Size{}) {
		t.Errorf("fresh counter max size = %v, want zero", c.MaxSize())
	}
}

// TestCounter_Wrap_Counting verifies N invocations yield a count of N.
func TestCounter_Wrap_Counting(t *testing.T) {
	var c Counter
	op := c.Wrap(testAlgebra{}.Compose)

	const n = 7
	for i := 0; i < n; i++ {
		if _, err := op(contractOfSize(1, 1), contractOfSize(2, 2)); err != nil {
			t.Fatalf("wrapped op failed: %v", err)
		}
	}

	if c.Calls() != n {
		t.Errorf("got %d calls, want %d", c.Calls(), n)
	}
}

// TestCounter_Wrap_MinMaxTracking feeds calls whose operand and result sizes
// are (2,3), (5,1), (1,1) and expects the per-field extremes min=(1,1),
// max=(5,3) — not the smallest or largest whole pair.
func TestCounter_Wrap_MinMaxTracking(t *testing.T) {
	var c Counter

	sizes := []Size{
		{Constraints: 2, Variables: 3},
		{Constraints: 5, Variables: 1},
		{Constraints: 1, Variables: 1},
	}
	for _, s := range sizes {
		fixed := contractOfSize(s.Constraints, s.Variables)
		op := c.Wrap(func(lhs, rhs Contract) (Contract, error) { return fixed, nil })
		if _, err := op(fixed, fixed); err != nil {
			t.Fatalf("wrapped op failed: %v", err)
		}
	}

	if want := (Size{Constraints: 1, Variables: 1}); c.MinSize() != want {
		t.Errorf("min size = %v, want %v", c.MinSize(), want)
	}
	if want := (Size{Constraints: 5, Variables: 3}); c.MaxSize() != want {
		t.Errorf("max size = %v, want %v", c.MaxSize(), want)
	}
}

// TestCounter_Wrap_Transparent verifies the decorator forwards results and
// errors unchanged, and records nothing on failure.
func TestCounter_Wrap_Transparent(t *testing.T) {
	var c Counter

	want := contractOfSize(3, 2)
	ok := c.Wrap(func(lhs, rhs Contract) (Contract, error) { return want, nil })
	got, err := ok(contractOfSize(1, 1), contractOfSize(1, 1))
	if err != nil {
		t.Fatalf("wrapped op failed: %v", err)
	}
	if got != want {
		t.Errorf("wrapped op returned %v, want %v", got, want)
	}

	opErr := errors.New("incompatible contracts")
	failing := c.Wrap(func(lhs, rhs Contract) (Contract, error) { return nil, opErr })
	if _, err := failing(contractOfSize(9, 9), contractOfSize(9, 9)); !errors.Is(err, opErr) {
		t.Errorf("wrapped op error = %v, want %v unchanged", err, opErr)
	}

	if c.Calls() != 1 {
		t.Errorf("got %d calls, want 1 (failed call must not be recorded)", c.Calls())
	}
	if c.MaxSize().Constraints == 18 || c.MaxSize().Constraints == 9 {
		t.Errorf("max size %v includes operands of a failed call", c.MaxSize())
	}
}

// TestInstrumentation_SnapshotIdempotent verifies snapshot is a read:
// two snapshots with no calls in between are equal.
func TestInstrumentation_SnapshotIdempotent(t *testing.T) {
	in := NewInstrumentation()
	alg := Instrument(testAlgebra{}, in)

	if _, err := alg.Compose(contractOfSize(2, 2), contractOfSize(3, 1)); err != nil {
		t.Fatalf("compose failed: %v", err)
	}

	first := in.Snapshot()
	second := in.Snapshot()
	if first != second {
		t.Errorf("consecutive snapshots differ:\nfirst  = %v\nsecond = %v", first, second)
	}
}

// TestInstrument_RoutesPerOperation verifies each algebra method updates its
// own counter and no other.
func TestInstrument_RoutesPerOperation(t *testing.T) {
	in := NewInstrumentation()
	alg := Instrument(testAlgebra{}, in)

	a, b := contractOfSize(2, 3), contractOfSize(4, 1)

	for i := 0; i < 3; i++ {
		if _, err := alg.Compose(a, b); err != nil {
			t.Fatalf("compose failed: %v", err)
		}
	}
	if _, err := alg.Quotient(a, b); err != nil {
		t.Fatalf("quotient failed: %v", err)
	}

	snap := in.Snapshot()
	if snap.Compose.Calls != 3 {
		t.Errorf("compose calls = %d, want 3", snap.Compose.Calls)
	}
	if snap.Quotient.Calls != 1 {
		t.Errorf("quotient calls = %d, want 1", snap.Quotient.Calls)
	}
	if snap.Merge.Calls != 0 {
		t.Errorf("merge calls = %d, want 0", snap.Merge.Calls)
	}
	if !snap.Merge.MinSize.IsUnbounded() {
		t.Errorf("idle merge min size = %v, want unbounded", snap.Merge.MinSize)
	}

	AssertOrderedRange(t, snap)
}

// TestInstrumentation_Reset verifies reset restores the initial sentinels
// without touching earlier snapshots.
func TestInstrumentation_Reset(t *testing.T) {
	in := NewInstrumentation()
	alg := Instrument(testAlgebra{}, in)

	if _, err := alg.Merge(contractOfSize(2, 2), contractOfSize(5, 5)); err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	before := in.Snapshot()
	in.Reset()

	if before.Merge.Calls != 1 {
		t.Errorf("earlier snapshot mutated by Reset: %v", before)
	}

	after := in.Snapshot()
	if after.Merge.Calls != 0 || !after.Merge.MinSize.IsUnbounded() || after.Merge.MaxSize != (Size{}) {
		t.Errorf("post-reset snapshot = %v, want pristine", after)
	}
}
