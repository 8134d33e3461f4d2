package expect

import (
	"fmt"
	"time"

	"digital.vasic.expectations/pkg/logging"
)

// Reporter is the host test framework. *testing.T, *testing.B
// and every other testing.TB satisfy it.
type Reporter interface {
	Helper()
	Fatal(args ...any)
	Cleanup(func())
}

// Root owns the subject value and the top-level expectation
// list. It is evaluated exactly once: on Check, on Verify, or
// when the test bound through That finishes.
type Root[T any] struct {
	subject      T
	expectations *List[T]
	reporter     Reporter
	config       *config
	evaluated    bool
	verdict      Result
}

// That creates a root for subject bound to reporter. The
// expectations are evaluated when the test finishes, or earlier
// through Check; a failure calls reporter.Fatal with the
// aggregated message.
func That[T any](r Reporter, subject T, opts ...Option) *Root[T] {
	r.Helper()

	root := newRoot(subject, opts)
	root.reporter = r
	r.Cleanup(root.Check)

	return root
}

// Value creates a root for subject that is not bound to a test.
// Check must be called explicitly; a failure panics with a
// *Failure.
func Value[T any](subject T, opts ...Option) *Root[T] {
	return newRoot(subject, opts)
}

func newRoot[T any](subject T, opts []Option) *Root[T] {
	root := &Root[T]{
		subject:      subject,
		expectations: NewList[T](),
		config:       newConfig(subject, opts),
	}
	root.config.log.Debug("root created")
	return root
}

// owner is implemented by builders tied to a root's lifecycle.
// Aspects consult it so that no builder of an evaluated root
// accepts further expectations.
type owner interface {
	ensureOpen()
	logger() logging.Logger
}

// Push appends an expectation. Pushing to an evaluated root
// panics with ErrEvaluated.
func (r *Root[T]) Push(expectation Expectation[T]) {
	r.ensureOpen()
	r.expectations.Push(expectation)
}

func (r *Root[T]) ensureOpen() {
	if !r.evaluated {
		return
	}
	r.config.log.Warn("expectation added after evaluation")
	panic(fmt.Errorf("expect %s: %w", r.config.name, ErrEvaluated))
}

func (r *Root[T]) logger() logging.Logger {
	return r.config.log
}

// ToPass appends an expectation and returns the root.
func (r *Root[T]) ToPass(expectation Expectation[T]) *Root[T] {
	r.Push(expectation)
	return r
}

// Len returns the number of top-level expectations.
func (r *Root[T]) Len() int {
	return r.expectations.Len()
}

// Subject returns the value under test.
func (r *Root[T]) Subject() T {
	return r.subject
}

// Evaluated reports whether the expectations have been checked.
func (r *Root[T]) Evaluated() bool {
	return r.evaluated
}

// Check evaluates the expectations now. Only the first call has
// any effect, including the implicit call at test cleanup.
func (r *Root[T]) Check() {
	if r.evaluated {
		return
	}

	verdict := r.evaluate()
	if verdict.Passed() {
		return
	}

	if r.reporter != nil {
		r.reporter.Helper()
		r.reporter.Fatal(verdict.Message())
		return
	}

	panic(r.failure(verdict))
}

// Verify evaluates the expectations if that has not happened yet
// and returns the verdict as an error: nil on pass, a *Failure
// otherwise. It never aborts the test, and a later Check or the
// cleanup hook will not report the same failure again.
func (r *Root[T]) Verify() error {
	verdict := r.evaluate()
	if verdict.Passed() {
		return nil
	}
	return r.failure(verdict)
}

func (r *Root[T]) evaluate() Result {
	if r.evaluated {
		return r.verdict
	}
	r.evaluated = true

	start := time.Now()
	r.verdict = r.expectations.Check(r.subject)
	r.config.observe(r.expectations.Len(), r.verdict, time.Since(start))

	return r.verdict
}

func (r *Root[T]) failure(verdict Result) *Failure {
	return &Failure{
		Subject: r.config.name,
		Message: verdict.Message(),
	}
}
