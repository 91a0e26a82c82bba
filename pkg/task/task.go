// Package task pairs a description with the suite a solution is
// judged against.
package task

import (
	"digital.vasic.harness/pkg/suite"
	"digital.vasic.harness/pkg/testcase"
)

// Task is immutable once built. It owns a private copy of the
// suite it was created from.
type Task struct {
	id          string
	description string
	suite       *suite.Suite
}

// New creates a task holding a deep copy of s. A nil s yields an
// empty suite on the default counter.
func New(description string, s *suite.Suite) *Task {
	return NewWithID("", description, s)
}

// NewWithID is like New but also records an identifier, as used
// by task banks.
func NewWithID(id, description string, s *suite.Suite) *Task {
	var owned *suite.Suite
	if s == nil {
		owned = suite.New()
	} else {
		owned = s.Clone()
	}
	return &Task{
		id:          id,
		description: description,
		suite:       owned,
	}
}

// ID returns the task identifier, empty when none was given.
func (t *Task) ID() string { return t.id }

// Description returns the task description.
func (t *Task) Description() string { return t.description }

// Suite returns a read-only view of the owned suite. The view
// cannot be converted back into a *suite.Suite.
func (t *Task) Suite() suite.Reader { return readOnly{s: t.suite} }

// TestCount returns the number of tests in the owned suite.
func (t *Task) TestCount() int { return t.suite.Count() }

// readOnly forwards the Reader methods of a suite and nothing else.
type readOnly struct {
	s *suite.Suite
}

func (r readOnly) Tests() []testcase.Case { return r.s.Tests() }

func (r readOnly) Count() int { return r.s.Count() }

func (r readOnly) At(i int) (testcase.Case, error) { return r.s.At(i) }
