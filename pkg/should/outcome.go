package should

import (
	"errors"

	"digital.vasic.expectations/pkg/expect"
	"digital.vasic.expectations/pkg/format"
)

// Outcome pairs the two results of a (value, error) call so the
// call can be the subject of an expectation chain.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Returned captures the results of a call:
//
//	expect.That(t, should.Returned(strconv.Atoi("42"))).
//		ToPass(should.SucceedWith(func(n *expect.List[int]) *expect.List[int] {
//			return n.ToPass(should.Equal(42))
//		}))
func Returned[T any](value T, err error) Outcome[T] {
	return Outcome[T]{Value: value, Err: err}
}

func expectedSuccess(err error) expect.Result {
	return expect.Failf(
		"Expectation failed (expected success)\n  actual: %s",
		format.Value(err),
	)
}

func expectedError[T any](value T) expect.Result {
	return expect.Failf(
		"Expectation failed (expected error)\n  actual: %s",
		format.Value(value),
	)
}

// Succeed expects a nil error.
func Succeed[T any]() expect.Expectation[Outcome[T]] {
	return expect.Func[Outcome[T]](func(o Outcome[T]) expect.Result {
		if o.Err == nil {
			return expect.Pass()
		}
		return expectedSuccess(o.Err)
	})
}

// Fail expects a non-nil error.
func Fail[T any]() expect.Expectation[Outcome[T]] {
	return expect.Func[Outcome[T]](func(o Outcome[T]) expect.Result {
		if o.Err != nil {
			return expect.Pass()
		}
		return expectedError(o.Value)
	})
}

// SucceedMatching expects a nil error and a value satisfying
// pred.
func SucceedMatching[T any](pred func(T) bool) expect.Expectation[Outcome[T]] {
	return expect.Func[Outcome[T]](func(o Outcome[T]) expect.Result {
		if o.Err != nil {
			return expectedSuccess(o.Err)
		}
		if pred(o.Value) {
			return expect.Pass()
		}
		return expect.Failf(
			"Expectation failed (expected value to match predicate)\n  actual: %s",
			format.Value(o.Value),
		)
	})
}

// FailMatching expects an error satisfying pred.
func FailMatching[T any](pred func(error) bool) expect.Expectation[Outcome[T]] {
	return expect.Func[Outcome[T]](func(o Outcome[T]) expect.Result {
		if o.Err == nil {
			return expectedError(o.Value)
		}
		if pred(o.Err) {
			return expect.Pass()
		}
		return expect.Failf(
			"Expectation failed (expected error to match predicate)\n  actual: %s",
			format.Value(o.Err),
		)
	})
}

// FailWithError expects an error matching target under
// errors.Is.
func FailWithError[T any](target error) expect.Expectation[Outcome[T]] {
	return expect.Func[Outcome[T]](func(o Outcome[T]) expect.Result {
		if o.Err == nil {
			return expectedError(o.Value)
		}
		if errors.Is(o.Err, target) {
			return expect.Pass()
		}
		return expect.Failf(
			"Expectation failed (errors.Is(actual, expected))\nexpected: %s\n  actual: %s",
			format.Value(target), format.Value(o.Err),
		)
	})
}

// SucceedWith expects a nil error and checks the value against
// the expectations added by configure.
func SucceedWith[T any](
	configure func(*expect.List[T]) *expect.List[T],
) expect.Expectation[Outcome[T]] {
	return expect.Unwrap(func(o Outcome[T]) (T, expect.Result) {
		if o.Err != nil {
			return o.Value, expectedSuccess(o.Err)
		}
		return o.Value, expect.Pass()
	}, configure)
}

// FailWith expects a non-nil error and checks it against the
// expectations added by configure.
func FailWith[T any](
	configure func(*expect.List[error]) *expect.List[error],
) expect.Expectation[Outcome[T]] {
	return expect.Unwrap(func(o Outcome[T]) (error, expect.Result) {
		if o.Err == nil {
			return nil, expectedError(o.Value)
		}
		return o.Err, expect.Pass()
	}, configure)
}
