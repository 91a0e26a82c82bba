package report

import (
	"time"

	"digital.vasic.harness/pkg/submission"
	"digital.vasic.harness/pkg/task"
	"digital.vasic.harness/pkg/testcase"
)

// Summary is the reporting view of one judged submission.
type Summary struct {
	SubmissionID  string        `json:"submission_id" yaml:"submission_id"`
	TaskID        string        `json:"task_id,omitempty" yaml:"task_id,omitempty"`
	Task          string        `json:"task" yaml:"task"`
	Solution      string        `json:"solution_fingerprint" yaml:"solution_fingerprint"`
	TotalTests    int           `json:"total_tests" yaml:"total_tests"`
	Passed        int           `json:"passed" yaml:"passed"`
	Failed        int           `json:"failed" yaml:"failed"`
	PassRate      float64       `json:"pass_rate" yaml:"pass_rate"`
	Duration      time.Duration `json:"duration" yaml:"duration"`
	SuitesCreated int64         `json:"total_test_suites_created" yaml:"total_test_suites_created"`
	Tests         []TestLine    `json:"tests" yaml:"tests"`
}

// TestLine summarizes one test.
type TestLine struct {
	Number int           `json:"number" yaml:"number"`
	Kind   testcase.Kind `json:"kind" yaml:"kind"`
	Output string        `json:"output" yaml:"output"`
	Passed bool          `json:"passed" yaml:"passed"`
}

// BuildSummary creates a summary of sub, judged against t.
// suitesCreated is the suite creation count to report, usually
// suite.TotalCreated().
func BuildSummary(
	t *task.Task,
	sub *submission.Submission,
	suitesCreated int64,
) *Summary {
	results := sub.Results()
	s := &Summary{
		SubmissionID:  sub.ID(),
		Solution:      sub.Solution().Fingerprint(),
		TotalTests:    len(results),
		Passed:        sub.TotalPassed(),
		Failed:        len(results) - sub.TotalPassed(),
		Duration:      sub.Duration(),
		SuitesCreated: suitesCreated,
		Tests:         make([]TestLine, 0, len(results)),
	}
	if t != nil {
		s.TaskID = t.ID()
		s.Task = t.Description()
	}
	if s.TotalTests > 0 {
		s.PassRate = float64(s.Passed) / float64(s.TotalTests)
	}

	for i, r := range results {
		s.Tests = append(s.Tests, TestLine{
			Number: i + 1,
			Kind:   r.Kind,
			Output: submission.Label(r.Passed),
			Passed: r.Passed,
		})
	}
	return s
}
