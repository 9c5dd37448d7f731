package contractbench

import (
	"fmt"
	"testing"
)

// AssertOrderedRange verifies the size-range invariant of a snapshot:
// for every operation with at least one invocation, the minimum size is
// bounded and does not exceed the maximum in either field; an operation that
// was never invoked must still carry the unbounded minimum and zero maximum.
func AssertOrderedRange(t *testing.T, r RunCounters) {
	t.Helper()

	check := func(name string, o OpCounters) {
		t.Helper()

		if o.Calls == 0 {
			if !o.MinSize.IsUnbounded() {
				t.Errorf("%s: no invocations but min size %s is bounded\n"+
					"An idle counter must keep the unbounded sentinel.", name, o.MinSize)
			}
			if o.MaxSize != (Size{}) {
				t.Errorf("%s: no invocations but max size is %s, want zero", name, o.MaxSize)
			}
			return
		}

		if o.MinSize.IsUnbounded() {
			t.Errorf("%s: %d invocations but min size is still unbounded", name, o.Calls)
			return
		}
		if o.MinSize.Constraints > o.MaxSize.Constraints || o.MinSize.Variables > o.MaxSize.Variables {
			t.Errorf("%s: min size %s exceeds max size %s in some field", name, o.MinSize, o.MaxSize)
		}
	}

	check("compose", r.Compose)
	check("quotient", r.Quotient)
	check("merge", r.Merge)
}

// AssertCombineLaws verifies that Combine behaves as a commutative,
// associative fold over the three given snapshots:
//
//	(a ⊕ b) ⊕ c == a ⊕ (b ⊕ c)
//	a ⊕ b == b ⊕ a
//
// These laws are what make order-independent aggregation across runs sound.
func AssertCombineLaws(t *testing.T, a, b, c RunCounters) {
	t.Helper()

	left := a.Combine(b).Combine(c)
	right := a.Combine(b.Combine(c))
	if left != right {
		t.Errorf("Combine is not associative:\n(a⊕b)⊕c = %v\na⊕(b⊕c) = %v", left, right)
	}

	if ab, ba := a.Combine(b), b.Combine(a); ab != ba {
		t.Errorf("Combine is not commutative:\na⊕b = %v\nb⊕a = %v", ab, ba)
	}

	t.Logf("✓ Combine laws hold over %s", describeCalls(a, b, c))
}

func describeCalls(rs ...RunCounters) string {
	s := ""
	for i, r := range rs {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("{c:%d q:%d m:%d}", r.Compose.Calls, r.Quotient.Calls, r.Merge.Calls)
	}
	return s
}
