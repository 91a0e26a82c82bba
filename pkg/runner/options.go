package runner

import (
	"time"

	"digital.vasic.harness/pkg/logging"
	"digital.vasic.harness/pkg/metrics"
)

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for run events. The solution
// payload is always redacted before it reaches this logger.
func WithLogger(logger logging.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m metrics.HarnessMetrics) Option {
	return func(r *Runner) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithClock overrides the time source used to stamp
// submissions.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}
