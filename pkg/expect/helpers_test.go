package expect

import "fmt"

// Probe is an expectation with a fixed verdict that counts how
// often it was checked.
type Probe struct {
	result Result
	Calls  int
}

func NewProbe(result Result) *Probe {
	return &Probe{result: result}
}

func (p *Probe) Check(_ any) Result {
	p.Calls++
	return p.result
}

// ProbeFor adapts a Probe to any value type.
func ProbeFor[T any](p *Probe) Expectation[T] {
	return Func[T](func(value T) Result {
		return p.Check(value)
	})
}

// FakeReporter records fatal messages and cleanups instead of
// aborting the test.
type FakeReporter struct {
	Fatals   []string
	cleanups []func()
}

func (f *FakeReporter) Helper() {}

func (f *FakeReporter) Fatal(args ...any) {
	f.Fatals = append(f.Fatals, fmt.Sprint(args...))
}

func (f *FakeReporter) Cleanup(fn func()) {
	f.cleanups = append(f.cleanups, fn)
}

// Finish runs registered cleanups in reverse order, like the
// testing package does at the end of a test.
func (f *FakeReporter) Finish() {
	for i := len(f.cleanups) - 1; i >= 0; i-- {
		f.cleanups[i]()
	}
	f.cleanups = nil
}

// Recover runs fn and returns the value it panicked with.
func Recover(fn func()) (recovered any) {
	defer func() {
		recovered = recover()
	}()
	fn()
	return nil
}
