package should

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"digital.vasic.expectations/pkg/expect"
)

func TestOrdering(t *testing.T) {
	tests := []struct {
		name        string
		expectation expect.Expectation[int]
		value       int
		passed      bool
		relation    string
	}{
		{"less than holds", BeLessThan(5), 4, true, ""},
		{"less than on bound", BeLessThan(5), 5, false, "<"},
		{"less or equal on bound", BeLessThanOrEqual(5), 5, true, ""},
		{"less or equal above", BeLessThanOrEqual(5), 6, false, "≤"},
		{"greater than holds", BeGreaterThan(5), 6, true, ""},
		{"greater than on bound", BeGreaterThan(5), 5, false, ">"},
		{"greater or equal on bound", BeGreaterThanOrEqual(5), 5, true, ""},
		{"greater or equal below", BeGreaterThanOrEqual(5), 4, false, "≥"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.expectation.Check(tt.value)
			assert.Equal(t, tt.passed, r.Passed())
			if !tt.passed {
				assert.Contains(t, r.Message(),
					"Expectation failed (a "+tt.relation+" b)")
			}
		})
	}
}

func TestBeGreaterThan_Message(t *testing.T) {
	r := BeGreaterThan(10).Check(3)
	assert.Equal(t,
		"Expectation failed (a > b)\na: `3`\nb: `10`",
		r.Message(),
	)
}

func TestOrdering_Strings(t *testing.T) {
	assert.True(t, BeLessThan("b").Check("a").Passed())
	assert.Contains(t, BeLessThan("a").Check("b").Message(), "a: `\"b\"`")
}

func TestRange(t *testing.T) {
	tests := []struct {
		name    string
		r       Range[int]
		text    string
		inside  []int
		outside []int
	}{
		{"closed", Closed(1, 5), "[1, 5]", []int{1, 3, 5}, []int{0, 6}},
		{"half open", HalfOpen(1, 5), "[1, 5)", []int{1, 4}, []int{0, 5}},
		{"at least", AtLeast(1), "[1, ∞)", []int{1, 1000}, []int{0}},
		{"at most", AtMost(5), "(-∞, 5]", []int{-1000, 5}, []int{6}},
		{"below", Below(5), "(-∞, 5)", []int{4}, []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.text, tt.r.String())
			for _, v := range tt.inside {
				assert.True(t, tt.r.Contains(v), "%d in %s", v, tt.r)
				assert.True(t, BeInside(tt.r).Check(v).Passed())
			}
			for _, v := range tt.outside {
				assert.False(t, tt.r.Contains(v), "%d in %s", v, tt.r)
				assert.False(t, BeInside(tt.r).Check(v).Passed())
			}
		})
	}
}

func TestBeInside_Message(t *testing.T) {
	r := BeInside(HalfOpen(1, 5)).Check(5)
	assert.Equal(t,
		"Expectation failed (value ∈ range)\nvalue: `5`\nrange: `[1, 5)`",
		r.Message(),
	)
}

func TestOrdering_ChainedFailuresKeepOrder(t *testing.T) {
	r := expect.NewList[int]().
		ToPass(Equal(5)).
		ToPass(BeGreaterThan(10)).
		Check(3)

	assert.Equal(t,
		"Expectation failed (expected == actual)\nexpected: `5`\n  actual: `3`\n"+
			"Expectation failed (a > b)\na: `3`\nb: `10`",
		r.Message(),
	)
}

func TestRange_RejectsNaN(t *testing.T) {
	nan := math.NaN()
	ranges := []Range[float64]{
		Closed(0.0, 1.0),
		HalfOpen(0.0, 1.0),
		AtLeast(1.0),
		AtMost(1.0),
		Below(1.0),
	}

	for _, r := range ranges {
		t.Run(r.String(), func(t *testing.T) {
			assert.False(t, r.Contains(nan))
			assert.False(t, BeInside(r).Check(nan).Passed())
		})
	}
}
