package expect

import (
	"strings"
	"unicode"
)

// List is an ordered collection of expectations bound to one
// value type. A nil *List behaves as an empty list.
type List[T any] struct {
	expectations []Expectation[T]
}

// NewList creates an empty List.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// Push appends an expectation. Nil expectations are ignored.
func (l *List[T]) Push(expectation Expectation[T]) {
	if expectation == nil {
		return
	}
	l.expectations = append(l.expectations, expectation)
}

// ToPass appends an expectation and returns the list so calls
// can be chained inside projection configure functions.
func (l *List[T]) ToPass(expectation Expectation[T]) *List[T] {
	l.Push(expectation)
	return l
}

// Len returns the number of registered expectations.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.expectations)
}

// Check evaluates every expectation in insertion order against
// value. Evaluation never stops early: every expectation runs
// even after a failure. Failure messages are joined with a
// single newline in declaration order.
func (l *List[T]) Check(value T) Result {
	if l == nil {
		return Pass()
	}

	var failures []string
	for _, e := range l.expectations {
		if r := e.Check(value); !r.Passed() {
			failures = append(failures, r.Message())
		}
	}

	if len(failures) == 0 {
		return Pass()
	}

	return Fail(trimTrailing(strings.Join(failures, "\n")))
}

// indentation is prepended to every line of a nested failure.
const indentation = "  "

// Indent prefixes every line of message with two spaces and
// leaves the line content untouched. It is applied once per
// nesting level, so N levels of projection yield 2N leading
// spaces.
func Indent(message string) string {
	lines := strings.Split(message, "\n")
	for i, line := range lines {
		lines[i] = indentation + line
	}
	return trimTrailing(strings.Join(lines, "\n"))
}

func trimTrailing(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
