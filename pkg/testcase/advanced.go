package testcase

import (
	"fmt"

	"digital.vasic.harness/pkg/logging"
)

// MinPassingLevel is the lowest complexity level at which an
// advanced case can pass.
const MinPassingLevel = 3

// Advanced extends the basic check with a complexity level. Every
// Run writes one trace line to its tracer before evaluating.
type Advanced struct {
	input    string
	expected string
	level    int
	tracer   logging.Logger
}

// Option configures an Advanced case.
type Option func(*Advanced)

// WithTracer sets the logger that receives the per-run trace
// line. A nil tracer is ignored.
func WithTracer(l logging.Logger) Option {
	return func(a *Advanced) {
		if l != nil {
			a.tracer = l
		}
	}
}

// NewAdvanced creates an advanced case. Without WithTracer the
// trace goes to a console logger on stdout.
func NewAdvanced(
	input, expected string, level int, opts ...Option,
) *Advanced {
	a := &Advanced{
		input:    input,
		expected: expected,
		level:    level,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.tracer == nil {
		a.tracer = logging.NewConsoleLogger(false)
	}
	return a
}

// Kind returns KindAdvanced.
func (a *Advanced) Kind() Kind { return KindAdvanced }

// Input returns the test input.
func (a *Advanced) Input() string { return a.input }

// Expected returns the expected output.
func (a *Advanced) Expected() string { return a.expected }

// ComplexityLevel returns the level given at construction.
func (a *Advanced) ComplexityLevel() int { return a.level }

// Run traces the complexity level, then reports whether
// input == expected and the level is at least MinPassingLevel.
// The trace is written regardless of the outcome.
func (a *Advanced) Run() bool {
	a.trace().Info(
		fmt.Sprintf(
			"Running advanced test with complexity level: %d",
			a.level,
		),
		logging.IntField("complexity_level", a.level),
	)
	return a.input == a.expected && a.level >= MinPassingLevel
}

// trace returns the tracer, discarding output for a zero-value
// case.
func (a *Advanced) trace() logging.Logger {
	if a.tracer == nil {
		return logging.NullLogger{}
	}
	return a.tracer
}

// Clone returns an independent copy. Clones share the tracer.
func (a *Advanced) Clone() Case {
	return &Advanced{
		input:    a.input,
		expected: a.expected,
		level:    a.level,
		tracer:   a.tracer,
	}
}

func (*Advanced) sealed() {}
