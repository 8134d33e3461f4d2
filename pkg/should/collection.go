package should

import (
	"slices"

	"digital.vasic.expectations/pkg/expect"
	"digital.vasic.expectations/pkg/format"
)

// BeEmpty expects a slice without elements.
func BeEmpty[E any]() expect.Expectation[[]E] {
	return expect.Func[[]E](func(actual []E) expect.Result {
		if len(actual) == 0 {
			return expect.Pass()
		}
		return expect.Fail(
			"Expected iterable to be empty, but it had at least one item",
		)
	})
}

// NotBeEmpty expects a slice with at least one element.
func NotBeEmpty[E any]() expect.Expectation[[]E] {
	return expect.Func[[]E](func(actual []E) expect.Result {
		if len(actual) > 0 {
			return expect.Pass()
		}
		return expect.Fail("Expected iterable to not be empty, but it was")
	})
}

// HaveCount projects a slice onto its length and checks the
// length against the expectations added by configure.
func HaveCount[E any](
	configure func(*expect.List[int]) *expect.List[int],
) expect.Expectation[[]E] {
	return expect.Project(func(actual []E) int {
		return len(actual)
	}, configure)
}

// HaveLen expects a slice with exactly n elements.
func HaveLen[E any](n int) expect.Expectation[[]E] {
	return HaveCount[E](func(count *expect.List[int]) *expect.List[int] {
		return count.ToPass(Equal(n))
	})
}

// ContainElement expects a slice containing element.
func ContainElement[E comparable](element E) expect.Expectation[[]E] {
	return ContainAllOf(element)
}

// ContainAllOf expects a slice containing every one of elements,
// in any order.
func ContainAllOf[E comparable](elements ...E) expect.Expectation[[]E] {
	return expect.Func[[]E](func(actual []E) (r expect.Result) {
		defer recoverIncomparable(&r)
		for _, needle := range elements {
			if !slices.Contains(actual, needle) {
				return expect.Failf(
					"Expectation failed (a ⊇ b)\na: `%s`\nb: `%s`",
					format.Values(actual), format.Values(elements),
				)
			}
		}
		return expect.Pass()
	})
}

// BeEquivalentTo expects a slice with exactly elements, in the
// same order.
func BeEquivalentTo[E comparable](elements ...E) expect.Expectation[[]E] {
	return expect.Func[[]E](func(actual []E) (r expect.Result) {
		defer recoverIncomparable(&r)
		if slices.Equal(actual, elements) {
			return expect.Pass()
		}
		return expect.Failf(
			"Expectation failed (a == b)\na: `%s`\nb: `%s`",
			format.Values(actual), format.Values(elements),
		)
	})
}

// BeEquivalentToInAnyOrder expects a slice that is a permutation
// of elements. Duplicates must match in number. The failure
// message lists actual elements without a counterpart (extra)
// and expected elements never seen (unmatched).
func BeEquivalentToInAnyOrder[E comparable](
	elements ...E,
) expect.Expectation[[]E] {
	return expect.Func[[]E](func(actual []E) (r expect.Result) {
		defer recoverIncomparable(&r)
		remaining := slices.Clone(elements)
		var extras []E

		for _, a := range actual {
			if i := slices.Index(remaining, a); i >= 0 {
				remaining = slices.Delete(remaining, i, i+1)
			} else {
				extras = append(extras, a)
			}
		}

		if len(remaining) == 0 && len(extras) == 0 {
			return expect.Pass()
		}
		return expect.Failf(
			"Expectation failed (a ≅ b, any order)\na: `%s`\nb: `%s`\nextra: `%s`\nunmatched: `%s`",
			format.Values(actual), format.Values(elements),
			format.Values(extras), format.Values(remaining),
		)
	})
}
