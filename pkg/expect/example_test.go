package expect_test

import (
	"fmt"

	"digital.vasic.expectations/pkg/expect"
	"digital.vasic.expectations/pkg/should"
)

func ExampleValue() {
	err := expect.Value(1 + 1).
		ToPass(should.Equal(3)).
		Verify()

	fmt.Println(err)
	// Output:
	// Expectation failed (expected == actual)
	// expected: `3`
	//   actual: `2`
}

func ExampleAspectOf() {
	type user struct {
		Name string
		Age  int
	}

	root := expect.Value(user{Name: "ada", Age: 15})
	expect.AspectOf(root, func(u user) int { return u.Age }).
		ToPass(should.BeGreaterThanOrEqual(18))

	fmt.Println(root.Verify())
	// Output:
	//   Expectation failed (a ≥ b)
	//   a: `15`
	//   b: `18`
}
