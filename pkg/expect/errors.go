package expect

import "errors"

var (
	// ErrExpectationFailed is wrapped by every *Failure.
	ErrExpectationFailed = errors.New("expectation failed")

	// ErrEvaluated is raised when an expectation is added to a
	// root that has already been evaluated.
	ErrEvaluated = errors.New("expectations already evaluated")
)

// Failure carries the aggregated message of a failed evaluation.
// Roots without a Reporter panic with a *Failure, and Verify
// returns one.
type Failure struct {
	// Subject names the value the expectations were built on.
	Subject string

	// Message is the aggregated, indented failure report.
	Message string
}

// Error returns the aggregated failure message.
func (f *Failure) Error() string {
	return f.Message
}

// Unwrap returns ErrExpectationFailed.
func (f *Failure) Unwrap() error {
	return ErrExpectationFailed
}
