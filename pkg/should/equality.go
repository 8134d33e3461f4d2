package should

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	"digital.vasic.expectations/pkg/expect"
	"digital.vasic.expectations/pkg/format"
)

// equal compares a and b with ==. Interface type arguments can
// hold dynamic values that are not comparable; such a comparison
// is reported as an error instead of a panic.
func equal[T comparable](a, b T) (eq bool, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%v", p)
		}
	}()
	return a == b, nil
}

// recoverIncomparable is deferred by expectations built on ==
// or go-cmp. It turns a comparison panic into a failing result.
func recoverIncomparable(r *expect.Result) {
	if p := recover(); p != nil {
		*r = incomparable(fmt.Errorf("%v", p))
	}
}

func incomparable(err error) expect.Result {
	return expect.Failf(
		"Expectation failed (values could not be compared)\nreason: %v",
		err,
	)
}

// Equal expects the value to be == expected.
func Equal[T comparable](expected T) expect.Expectation[T] {
	return expect.Func[T](func(actual T) expect.Result {
		eq, err := equal(actual, expected)
		if err != nil {
			return incomparable(err)
		}
		if eq {
			return expect.Pass()
		}
		return expect.Failf(
			"Expectation failed (expected == actual)\nexpected: `%s`\n  actual: `%s`",
			format.Value(expected), format.Value(actual),
		)
	})
}

// NotEqual expects the value to be != unexpected.
func NotEqual[T comparable](unexpected T) expect.Expectation[T] {
	return expect.Func[T](func(actual T) expect.Result {
		eq, err := equal(actual, unexpected)
		if err != nil {
			return incomparable(err)
		}
		if !eq {
			return expect.Pass()
		}
		return expect.Failf(
			"Expectation failed (expected != actual)\n  actual: `%s`",
			format.Value(actual),
		)
	})
}

// DeepEqual expects the value to equal expected according to
// go-cmp. The failure message carries the diff. Values with
// unexported fields need an option such as
// cmpopts.IgnoreUnexported or cmp.AllowUnexported; without one
// the comparison is reported as a failure.
func DeepEqual[T any](expected T, opts ...cmp.Option) expect.Expectation[T] {
	return expect.Func[T](func(actual T) (r expect.Result) {
		defer recoverIncomparable(&r)

		if cmp.Equal(expected, actual, opts...) {
			return expect.Pass()
		}
		return expect.Fail(fmt.Sprintf(
			"Expectation failed (expected == actual)\ndiff (-expected +actual):\n%s",
			format.Diff(expected, actual, opts...),
		))
	})
}

// BeTrue expects a bool to be true.
func BeTrue() expect.Expectation[bool] {
	return Equal(true)
}

// BeFalse expects a bool to be false.
func BeFalse() expect.Expectation[bool] {
	return Equal(false)
}

// Satisfy expects pred to hold for the value. description names
// the property in the failure message.
func Satisfy[T any](
	description string,
	pred func(T) bool,
) expect.Expectation[T] {
	return expect.Func[T](func(actual T) expect.Result {
		if pred(actual) {
			return expect.Pass()
		}
		return expect.Failf(
			"Expectation failed (%s)\n  actual: `%s`",
			description, format.Value(actual),
		)
	})
}
