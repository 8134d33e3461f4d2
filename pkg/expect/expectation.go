package expect

// Expectation is a single checkable condition over a value of
// type T. Implementations must be total over their input and
// must not depend on the outcome of earlier checks.
type Expectation[T any] interface {
	// Check evaluates the expectation against value.
	Check(value T) Result
}

// Func adapts a plain function to the Expectation interface.
type Func[T any] func(value T) Result

// Check calls f(value).
func (f Func[T]) Check(value T) Result {
	return f(value)
}

// Builder is anything expectations on a T can be registered on.
// List, Root and Aspect all satisfy it, which lets projections
// be attached uniformly at any nesting level.
type Builder[T any] interface {
	// Push appends an expectation.
	Push(expectation Expectation[T])
}
