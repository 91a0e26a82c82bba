// Package submission records the outcome of running one solution
// against one task.
package submission

import (
	"fmt"
	"time"

	"digital.vasic.harness/pkg/suite"

	"github.com/google/uuid"
)

// Submission owns a copy of the solution and one Result slot per
// test, allocated up front.
type Submission struct {
	id          string
	solution    Solution
	results     []Result
	totalPassed int
	startedAt   time.Time
	finishedAt  time.Time
}

// New allocates a submission with testCount default results.
// Negative counts are treated as zero.
func New(sol Solution, testCount int) *Submission {
	if testCount < 0 {
		testCount = 0
	}
	return &Submission{
		id:       newID(),
		solution: sol,
		results:  make([]Result, testCount),
	}
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ID returns the submission identifier (a UUIDv7).
func (s *Submission) ID() string { return s.id }

// Solution returns the owned solution copy.
func (s *Submission) Solution() Solution { return s.solution }

// TestCount returns the number of result slots.
func (s *Submission) TestCount() int { return len(s.results) }

// Results returns a copy of the results in test order.
func (s *Submission) Results() []Result {
	out := make([]Result, len(s.results))
	copy(out, s.results)
	return out
}

// Result returns the result at zero-based index i.
func (s *Submission) Result(i int) (Result, error) {
	if err := suite.CheckIndex(i, len(s.results)); err != nil {
		return Result{}, fmt.Errorf("submission result: %w", err)
	}
	return s.results[i], nil
}

// Record stores r at zero-based index i.
func (s *Submission) Record(i int, r Result) error {
	if err := suite.CheckIndex(i, len(s.results)); err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	s.results[i] = r
	return nil
}

// TotalPassed returns the aggregate pass count.
func (s *Submission) TotalPassed() int { return s.totalPassed }

// SetTotalPassed sets the aggregate pass count.
func (s *Submission) SetTotalPassed(n int) { s.totalPassed = n }

// CountPassed recounts passed results.
func (s *Submission) CountPassed() int {
	n := 0
	for _, r := range s.results {
		if r.Passed {
			n++
		}
	}
	return n
}

// AllPassed reports whether every test passed. An empty
// submission has passed everything.
func (s *Submission) AllPassed() bool {
	return s.totalPassed == len(s.results)
}

// Complete records the run window.
func (s *Submission) Complete(started, finished time.Time) {
	s.startedAt = started
	s.finishedAt = finished
}

// StartedAt returns when the run began.
func (s *Submission) StartedAt() time.Time { return s.startedAt }

// FinishedAt returns when the run ended.
func (s *Submission) FinishedAt() time.Time { return s.finishedAt }

// Duration returns the run's wall-clock time, zero until
// Complete is called.
func (s *Submission) Duration() time.Duration {
	if s.finishedAt.IsZero() {
		return 0
	}
	return s.finishedAt.Sub(s.startedAt)
}
