// Package metrics records evaluation outcomes of expectation
// chains.
package metrics

import "time"

// Recorder defines the interface for recording evaluation
// metrics.
type Recorder interface {
	// RecordEvaluation records one evaluation of a root builder
	// labelled by subject.
	RecordEvaluation(
		subject string,
		passed bool,
		expectations int,
		duration time.Duration,
	)
}

// NoopRecorder is a no-op implementation of Recorder, used when
// metrics collection is disabled.
type NoopRecorder struct{}

func (NoopRecorder) RecordEvaluation(_ string, _ bool, _ int, _ time.Duration) {}
