package should

import (
	"digital.vasic.expectations/pkg/expect"
	"digital.vasic.expectations/pkg/format"
)

const expectedNonNil = "Expectation failed (expected non-nil)\n  actual: nil"

// BeNil expects a nil pointer.
func BeNil[T any]() expect.Expectation[*T] {
	return expect.Func[*T](func(actual *T) expect.Result {
		if actual == nil {
			return expect.Pass()
		}
		return expect.Failf(
			"Expectation failed (expected nil)\n  actual: &%s",
			format.Value(*actual),
		)
	})
}

// NotBeNil expects a non-nil pointer.
func NotBeNil[T any]() expect.Expectation[*T] {
	return expect.Func[*T](func(actual *T) expect.Result {
		if actual != nil {
			return expect.Pass()
		}
		return expect.Fail(expectedNonNil)
	})
}

// PointToMatching expects a non-nil pointer whose target
// satisfies pred.
func PointToMatching[T any](pred func(T) bool) expect.Expectation[*T] {
	return expect.Func[*T](func(actual *T) expect.Result {
		if actual == nil {
			return expect.Fail(expectedNonNil)
		}
		if pred(*actual) {
			return expect.Pass()
		}
		return expect.Failf(
			"Expectation failed (expected pointee to match predicate)\n  actual: &%s",
			format.Value(*actual),
		)
	})
}

// PointTo expects a non-nil pointer and checks its target
// against the expectations added by configure.
func PointTo[T any](
	configure func(*expect.List[T]) *expect.List[T],
) expect.Expectation[*T] {
	return expect.Unwrap(func(actual *T) (T, expect.Result) {
		if actual == nil {
			var zero T
			return zero, expect.Fail(expectedNonNil)
		}
		return *actual, expect.Pass()
	}, configure)
}
