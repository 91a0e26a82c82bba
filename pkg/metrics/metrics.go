// Package metrics records harness activity: evaluated tests and
// completed submissions.
package metrics

import "time"

// HarnessMetrics defines the interface for recording harness
// metrics.
type HarnessMetrics interface {
	// RecordTest records one evaluated test of the given kind.
	RecordTest(kind string, passed bool)
	// RecordSubmission records a completed submission.
	RecordSubmission(passed, total int, duration time.Duration)
	// IncrementRunTotal increments the total run counter.
	IncrementRunTotal()
}

// NoopMetrics is a no-op implementation of HarnessMetrics
// useful for testing or when metrics collection is disabled.
type NoopMetrics struct{}

func (NoopMetrics) RecordTest(_ string, _ bool)                 {}
func (NoopMetrics) RecordSubmission(_, _ int, _ time.Duration) {}
func (NoopMetrics) IncrementRunTotal()                         {}
