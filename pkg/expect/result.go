package expect

import "fmt"

// Result is the verdict of a single check. It is either a pass
// or a failure carrying a human-readable message.
type Result struct {
	failed  bool
	message string
}

// Pass returns a passing Result.
func Pass() Result {
	return Result{}
}

// Fail returns a failing Result with the given message.
func Fail(message string) Result {
	return Result{failed: true, message: message}
}

// Failf returns a failing Result with a formatted message.
func Failf(format string, args ...any) Result {
	return Fail(fmt.Sprintf(format, args...))
}

// Passed reports whether the check succeeded.
func (r Result) Passed() bool {
	return !r.failed
}

// Message returns the failure message. It is empty for a pass.
func (r Result) Message() string {
	return r.message
}

// String returns "pass" or the failure message.
func (r Result) String() string {
	if r.Passed() {
		return "pass"
	}
	return r.message
}
