// Package runner judges a solution against a task's suite. Each
// test runs exactly once, in suite order, and the outcome is
// collected into a Submission.
package runner

import (
	"time"

	"digital.vasic.harness/pkg/logging"
	"digital.vasic.harness/pkg/metrics"
	"digital.vasic.harness/pkg/submission"
	"digital.vasic.harness/pkg/task"
	"digital.vasic.harness/pkg/testcase"
)

// Runner evaluates test cases and whole tasks. It is synchronous
// and holds no per-run state, so one Runner can be reused.
type Runner struct {
	logger  logging.Logger
	metrics metrics.HarnessMetrics
	now     func() time.Time
}

// New creates a Runner with the supplied options. Without options
// it logs nothing and records no metrics.
func New(opts ...Option) *Runner {
	r := &Runner{
		logger:  logging.NullLogger{},
		metrics: metrics.NoopMetrics{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunTestCase evaluates c once. The solution is accepted but not
// consulted: the outcome depends only on the case's own fields.
// A nil case yields a failed result.
func (r *Runner) RunTestCase(
	_ submission.Solution,
	c testcase.Case,
) submission.Result {
	if c == nil {
		return submission.Result{ActualOutput: submission.OutputFailed}
	}
	passed := c.Run()
	r.metrics.RecordTest(string(c.Kind()), passed)
	return submission.Result{
		Kind:         c.Kind(),
		ActualOutput: submission.Label(passed),
		Passed:       passed,
	}
}

// CheckSolution runs every test of t against sol and returns the
// completed submission. It has no failure path: a task without
// tests yields zero results and zero passed.
func (r *Runner) CheckSolution(
	sol submission.Solution,
	t *task.Task,
) *submission.Submission {
	tests := t.Suite().Tests()
	sub := submission.New(sol, len(tests))
	log := logging.NewRedactingLogger(r.logger, sol.Code()).WithFields(
		logging.StringField("submission_id", sub.ID()),
		logging.StringField("task", taskName(t)),
	)

	r.metrics.IncrementRunTotal()
	start := r.now()
	log.Info("submission_started",
		logging.IntField("tests", len(tests)),
		logging.StringField("solution", sol.Fingerprint()),
		logging.IntField("solution_bytes", sol.Len()),
	)

	totalPassed := 0
	for i, c := range tests {
		result := r.RunTestCase(sol, c)
		result.Number = i + 1
		// i is always within the slots allocated above.
		_ = sub.Record(i, result)
		if result.Passed {
			totalPassed++
		}
		log.Debug("test_completed",
			logging.IntField("number", result.Number),
			logging.StringField("test", testcase.Describe(c)),
			logging.StringField("kind", string(result.Kind)),
			logging.StringField("output", result.ActualOutput),
		)
	}
	sub.SetTotalPassed(totalPassed)

	end := r.now()
	sub.Complete(start, end)
	r.metrics.RecordSubmission(totalPassed, len(tests), sub.Duration())
	log.Info("submission_completed",
		logging.IntField("passed", totalPassed),
		logging.IntField("total", len(tests)),
		logging.DurationMsField("duration", sub.Duration().Milliseconds()),
	)
	return sub
}

func taskName(t *task.Task) string {
	if t.ID() != "" {
		return t.ID()
	}
	return t.Description()
}

var defaultRunner = New()

// RunTestCase evaluates c with a default Runner.
func RunTestCase(
	sol submission.Solution,
	c testcase.Case,
) submission.Result {
	return defaultRunner.RunTestCase(sol, c)
}

// CheckSolution judges sol against t with a default Runner.
func CheckSolution(
	sol submission.Solution,
	t *task.Task,
) *submission.Submission {
	return defaultRunner.CheckSolution(sol, t)
}
