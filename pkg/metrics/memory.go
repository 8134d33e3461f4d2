package metrics

import (
	"sync"
	"time"
)

const (
	// StatusPassed labels passing evaluations.
	StatusPassed = "passed"
	// StatusFailed labels failing evaluations.
	StatusFailed = "failed"
)

// InMemoryRecorder implements Recorder with counters and
// duration samples held in memory. It is safe for concurrent
// use so parallel tests can share one instance.
type InMemoryRecorder struct {
	mu           sync.Mutex
	evaluations  map[string]int
	durations    map[string][]time.Duration
	total        int
	failed       int
	expectations int
}

// NewInMemoryRecorder creates a new InMemoryRecorder.
func NewInMemoryRecorder() *InMemoryRecorder {
	return &InMemoryRecorder{
		evaluations: make(map[string]int),
		durations:   make(map[string][]time.Duration),
	}
}

func (m *InMemoryRecorder) RecordEvaluation(
	subject string,
	passed bool,
	expectations int,
	duration time.Duration,
) {
	m.mu.Lock()
	defer m.mu.Unlock()

	status := StatusFailed
	if passed {
		status = StatusPassed
	} else {
		m.failed++
	}

	m.evaluations[subject+":"+status]++
	m.durations[subject] = append(m.durations[subject], duration)
	m.total++
	m.expectations += expectations
}

// EvaluationCount returns the count for a subject+status
// combination.
func (m *InMemoryRecorder) EvaluationCount(subject, status string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.evaluations[subject+":"+status]
}

// Total returns the number of evaluations recorded.
func (m *InMemoryRecorder) Total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.total
}

// Failed returns the number of failing evaluations recorded.
func (m *InMemoryRecorder) Failed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failed
}

// Expectations returns the number of top-level expectations
// across all recorded evaluations.
func (m *InMemoryRecorder) Expectations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.expectations
}

// Durations returns a copy of the duration samples for subject.
func (m *InMemoryRecorder) Durations(subject string) []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.durations[subject]...)
}
