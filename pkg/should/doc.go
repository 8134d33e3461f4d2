// Package should provides the stock expectations for the expect
// engine. Every constructor returns an expect.Expectation that
// can be passed to ToPass on a root, an aspect or a nested list:
//
//	expect.That(t, order.Total).
//		ToPass(should.BeGreaterThan(0)).
//		ToPass(should.BeInside(should.Closed(1, 500)))
//
// Failure messages follow one layout: a first line naming the
// relation that did not hold, then one labelled line per operand.
package should
