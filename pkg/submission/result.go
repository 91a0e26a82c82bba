package submission

import "digital.vasic.harness/pkg/testcase"

// Actual output labels written by the runner.
const (
	OutputPassed = "Passed"
	OutputFailed = "Failed"
)

// Result is the outcome of one test. The zero value is the
// not-yet-run state: not passed, empty output.
type Result struct {
	// Number is the 1-based test position in the suite.
	Number int `json:"number" yaml:"number"`

	// Kind is the variant of the evaluated case.
	Kind testcase.Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// ActualOutput is the human label for the outcome.
	ActualOutput string `json:"actual_output" yaml:"actual_output"`

	// Passed reports whether the case evaluated to true.
	Passed bool `json:"passed" yaml:"passed"`
}

// Label returns OutputPassed or OutputFailed for passed.
func Label(passed bool) string {
	if passed {
		return OutputPassed
	}
	return OutputFailed
}
