package should

import (
	"cmp"
	"fmt"

	"digital.vasic.expectations/pkg/expect"
	"digital.vasic.expectations/pkg/format"
)

func compare[T cmp.Ordered](
	relation string,
	bound T,
	holds func(actual, bound T) bool,
) expect.Expectation[T] {
	return expect.Func[T](func(actual T) expect.Result {
		if holds(actual, bound) {
			return expect.Pass()
		}
		return expect.Failf(
			"Expectation failed (a %s b)\na: `%s`\nb: `%s`",
			relation, format.Value(actual), format.Value(bound),
		)
	})
}

// BeLessThan expects the value to be < bound.
func BeLessThan[T cmp.Ordered](bound T) expect.Expectation[T] {
	return compare("<", bound, func(a, b T) bool { return a < b })
}

// BeLessThanOrEqual expects the value to be <= bound.
func BeLessThanOrEqual[T cmp.Ordered](bound T) expect.Expectation[T] {
	return compare("≤", bound, func(a, b T) bool { return a <= b })
}

// BeGreaterThan expects the value to be > bound.
func BeGreaterThan[T cmp.Ordered](bound T) expect.Expectation[T] {
	return compare(">", bound, func(a, b T) bool { return a > b })
}

// BeGreaterThanOrEqual expects the value to be >= bound.
func BeGreaterThanOrEqual[T cmp.Ordered](bound T) expect.Expectation[T] {
	return compare("≥", bound, func(a, b T) bool { return a >= b })
}

// Range is an interval over an ordered type. Build one with
// Closed, HalfOpen, AtLeast, AtMost or Below.
type Range[T cmp.Ordered] struct {
	low, high       T
	hasLow, hasHigh bool
	includeHigh     bool
}

// Closed is the range [low, high].
func Closed[T cmp.Ordered](low, high T) Range[T] {
	return Range[T]{low: low, high: high, hasLow: true, hasHigh: true, includeHigh: true}
}

// HalfOpen is the range [low, high).
func HalfOpen[T cmp.Ordered](low, high T) Range[T] {
	return Range[T]{low: low, high: high, hasLow: true, hasHigh: true}
}

// AtLeast is the range [low, ∞).
func AtLeast[T cmp.Ordered](low T) Range[T] {
	return Range[T]{low: low, hasLow: true}
}

// AtMost is the range (-∞, high].
func AtMost[T cmp.Ordered](high T) Range[T] {
	return Range[T]{high: high, hasHigh: true, includeHigh: true}
}

// Below is the range (-∞, high).
func Below[T cmp.Ordered](high T) Range[T] {
	return Range[T]{high: high, hasHigh: true}
}

// Contains reports whether v lies inside the range. Bounds are
// tested positively, so NaN lies inside no range.
func (r Range[T]) Contains(v T) bool {
	if r.hasLow && !(r.low <= v) {
		return false
	}
	if r.hasHigh {
		if r.includeHigh {
			return v <= r.high
		}
		return v < r.high
	}
	return true
}

// String renders the range in interval notation, e.g. "[1, 5)".
func (r Range[T]) String() string {
	low, high := "(-∞", "∞)"
	if r.hasLow {
		low = "[" + format.Value(r.low)
	}
	if r.hasHigh {
		closing := ")"
		if r.includeHigh {
			closing = "]"
		}
		high = format.Value(r.high) + closing
	}
	return fmt.Sprintf("%s, %s", low, high)
}

// BeInside expects the value to lie inside r.
func BeInside[T cmp.Ordered](r Range[T]) expect.Expectation[T] {
	return expect.Func[T](func(actual T) expect.Result {
		if r.Contains(actual) {
			return expect.Pass()
		}
		return expect.Failf(
			"Expectation failed (value ∈ range)\nvalue: `%s`\nrange: `%s`",
			format.Value(actual), r,
		)
	})
}
