package should

import (
	"regexp"
	"strings"

	"digital.vasic.expectations/pkg/expect"
)

// The string expectations accept any type whose underlying type
// is string. The type argument is inferred from the operand, so
// named types need a typed operand or an explicit argument:
//
//	expect.That(t, user.Name).ToPass(should.HavePrefix(Name("J")))
//	expect.That(t, user.Name).ToPass(should.BeEmptyString[Name]())

// Contain expects a string to contain substring.
func Contain[S ~string](substring S) expect.Expectation[S] {
	return expect.Func[S](func(actual S) expect.Result {
		if strings.Contains(string(actual), string(substring)) {
			return expect.Pass()
		}
		return expect.Failf(
			"Expected %q to contain %q", string(actual), string(substring),
		)
	})
}

// HavePrefix expects a string to start with prefix.
func HavePrefix[S ~string](prefix S) expect.Expectation[S] {
	return expect.Func[S](func(actual S) expect.Result {
		if strings.HasPrefix(string(actual), string(prefix)) {
			return expect.Pass()
		}
		return expect.Failf(
			"Expected %q to start with %q", string(actual), string(prefix),
		)
	})
}

// HaveSuffix expects a string to end with suffix.
func HaveSuffix[S ~string](suffix S) expect.Expectation[S] {
	return expect.Func[S](func(actual S) expect.Result {
		if strings.HasSuffix(string(actual), string(suffix)) {
			return expect.Pass()
		}
		return expect.Failf(
			"Expected %q to end with %q", string(actual), string(suffix),
		)
	})
}

// MatchRegexp expects a string to match pattern. An invalid
// pattern fails every check with the compile error.
func MatchRegexp[S ~string](pattern S) expect.Expectation[S] {
	re, err := regexp.Compile(string(pattern))
	return expect.Func[S](func(actual S) expect.Result {
		if err != nil {
			return expect.Failf("Invalid pattern %q: %v", string(pattern), err)
		}
		if re.MatchString(string(actual)) {
			return expect.Pass()
		}
		return expect.Failf("Expected %q to match /%s/", string(actual), string(pattern))
	})
}

// BeEmptyString expects a string of length zero.
func BeEmptyString[S ~string]() expect.Expectation[S] {
	return expect.Func[S](func(actual S) expect.Result {
		if actual == "" {
			return expect.Pass()
		}
		return expect.Failf("Expected %q to be empty", string(actual))
	})
}
