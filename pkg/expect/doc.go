// Package expect provides a fluent expectation engine for tests.
// A subject value is wrapped in a root builder, expectations are
// chained onto it, and the whole chain is evaluated exactly once
// when the test ends or when Check is called. All failures are
// folded into one message; expectations nested on derived values
// (projections and aspects) are reported as indented sub-blocks.
//
//	expect.That(t, 1+1).
//		ToPass(should.Equal(2)).
//		ToPass(should.BeGreaterThan(1))
package expect
