package contractbench

import "fmt"

// Contract is the view of a polyhedral contract this package needs.
// The algebra library owns the representation; only the counts matter here.
type Contract interface {
	AssumptionCount() int
	GuaranteeCount() int
	VariableCount() int
}

// Size measures one contract: the number of polyhedral constraints
// (assumptions + guarantees) and the number of variables.
//
// Sizes form a total order by lexicographic (Constraints, Variables)
// comparison, with a distinguished unbounded value above every bounded size.
// The unbounded value is the identity for min-folds, the same way the zero
// value is the identity for max-folds.
type Size struct {
	Constraints int
	Variables   int

	// unbounded marks the +inf sentinel. A tagged flag instead of a
	// maximum-integer constant, so a genuinely large contract can never
	// alias the sentinel.
	unbounded bool
}

// Measure returns the size of a contract. A nil contract measures as zero.
func Measure(c Contract) Size {
	if c == nil {
		return Size{}
	}
	return Size{
		Constraints: c.AssumptionCount() + c.GuaranteeCount(),
		Variables:   c.VariableCount(),
	}
}

// Unbounded returns the size greater than every bounded size.
func Unbounded() Size {
	return Size{unbounded: true}
}

// IsUnbounded reports whether s is the unbounded sentinel.
func (s Size) IsUnbounded() bool {
	return s.unbounded
}

// Compare orders sizes lexicographically by (Constraints, Variables).
// It returns -1 if s < o, 0 if s == o, +1 if s > o.
// The unbounded size compares greater than every bounded size.
func (s Size) Compare(o Size) int {
	switch {
	case s.unbounded && o.unbounded:
		return 0
	case s.unbounded:
		return 1
	case o.unbounded:
		return -1
	}
	if s.Constraints != o.Constraints {
		if s.Constraints < o.Constraints {
			return -1
		}
		return 1
	}
	if s.Variables != o.Variables {
		if s.Variables < o.Variables {
			return -1
		}
		return 1
	}
	return 0
}

// Min returns the lexicographically smaller of s and o.
func (s Size) Min(o Size) Size {
	if s.Compare(o) <= 0 {
		return s
	}
	return o
}

// Max returns the lexicographically larger of s and o.
func (s Size) Max(o Size) Size {
	if s.Compare(o) >= 0 {
		return s
	}
	return o
}

// Meet returns the per-field minimum of s and o. Unlike Min, the result
// need not equal either input: Meet((2,3), (5,1)) == (2,1).
func (s Size) Meet(o Size) Size {
	switch {
	case s.unbounded:
		return o
	case o.unbounded:
		return s
	}
	return Size{
		Constraints: min(s.Constraints, o.Constraints),
		Variables:   min(s.Variables, o.Variables),
	}
}

// Join returns the per-field maximum of s and o: Join((2,3), (5,1)) == (5,3).
func (s Size) Join(o Size) Size {
	if s.unbounded || o.unbounded {
		return Unbounded()
	}
	return Size{
		Constraints: max(s.Constraints, o.Constraints),
		Variables:   max(s.Variables, o.Variables),
	}
}

// String renders the size as "(constraints: N, variables: N)".
// The unbounded sentinel renders its fields as "inf" so a reader never
// mistakes it for an enormous real contract.
func (s Size) String() string {
	if s.unbounded {
		return "(constraints: inf, variables: inf)"
	}
	return fmt.Sprintf("(constraints: %d, variables: %d)", s.Constraints, s.Variables)
}
