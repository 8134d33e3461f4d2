package format

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type point struct {
	X, Y int
}

func TestValue(t *testing.T) {
	assert.Equal(t, "7", Value(7))
	assert.Equal(t, `"foo"`, Value("foo"))
	assert.Equal(t, "true", Value(true))
	assert.Equal(t, "nil", Value(nil))
	assert.Equal(t, "2.5", Value(2.5))
	assert.Contains(t, Value(point{X: 1, Y: 2}), "X:")
}

func TestValues(t *testing.T) {
	assert.Equal(t, "[1, 2, 3]", Values([]int{1, 2, 3}))
	assert.Equal(t, `["a"]`, Values([]string{"a"}))
	assert.Equal(t, "[]", Values([]int{}))
}

func TestDiff(t *testing.T) {
	assert.Empty(t, Diff(point{1, 2}, point{1, 2}))

	diff := Diff(point{1, 2}, point{1, 3})
	assert.Contains(t, diff, "-")
	assert.Contains(t, diff, "+")
	assert.Contains(t, diff, "Y")
}

func TestValue_Error(t *testing.T) {
	assert.Equal(t, `error("boom")`, Value(errors.New("boom")))
}
