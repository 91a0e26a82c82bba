// Package suite provides an ordered collection of test cases that
// exclusively owns its elements. Copying a suite always clones
// every case, preserving its concrete kind.
package suite

import (
	"fmt"

	"digital.vasic.harness/pkg/testcase"
)

// Reader is a read-only view of a suite.
type Reader interface {
	// Tests returns the cases in insertion order.
	Tests() []testcase.Case

	// Count returns the number of cases.
	Count() int

	// At returns the case at zero-based index i.
	At(i int) (testcase.Case, error)
}

// Suite is an ordered, owning collection of test cases. Test
// numbers are 1-based positions in insertion order.
type Suite struct {
	tests   []testcase.Case
	counter *Counter
}

// Option configures a Suite.
type Option func(*Suite)

// WithCounter makes the suite, and every copy made from it,
// record constructions on c instead of DefaultCounter.
func WithCounter(c *Counter) Option {
	return func(s *Suite) {
		if c != nil {
			s.counter = c
		}
	}
}

// New creates an empty suite and records the construction.
func New(opts ...Option) *Suite {
	s := &Suite{counter: DefaultCounter}
	for _, opt := range opts {
		opt(s)
	}
	s.counter.Inc()
	return s
}

// Add appends c. The suite takes ownership; callers must not
// add the same case to another suite.
func (s *Suite) Add(c testcase.Case) error {
	if c == nil {
		return fmt.Errorf("add test %d: %w", len(s.tests)+1, ErrNilCase)
	}
	s.tests = append(s.tests, c)
	return nil
}

// MustAdd is like Add but panics on a nil case.
func (s *Suite) MustAdd(cases ...testcase.Case) *Suite {
	for _, c := range cases {
		if err := s.Add(c); err != nil {
			panic(err)
		}
	}
	return s
}

// Tests returns the cases in insertion order. The slice is fresh;
// the cases themselves remain owned by the suite.
func (s *Suite) Tests() []testcase.Case {
	out := make([]testcase.Case, len(s.tests))
	copy(out, s.tests)
	return out
}

// Count returns the number of cases.
func (s *Suite) Count() int {
	return len(s.tests)
}

// At returns the case at zero-based index i.
func (s *Suite) At(i int) (testcase.Case, error) {
	if err := CheckIndex(i, len(s.tests)); err != nil {
		return nil, fmt.Errorf("suite test: %w", err)
	}
	return s.tests[i], nil
}

// Counter returns the counter this suite records on.
func (s *Suite) Counter() *Counter {
	return s.counter
}

// Clone returns a deep copy: a new suite holding a clone of every
// case. It counts as a construction.
func (s *Suite) Clone() *Suite {
	c := &Suite{
		tests:   cloneAll(s.tests),
		counter: s.counter,
	}
	c.counter.Inc()
	return c
}

// CopyFrom replaces the suite's cases with clones of other's.
// Copying a suite onto itself does nothing. The receiver keeps
// its counter and no construction is recorded.
func (s *Suite) CopyFrom(other *Suite) {
	if s == other || other == nil {
		return
	}
	s.tests = cloneAll(other.tests)
}

// UnsafeAliasFrom makes the suite share other's case storage
// without cloning.
//
// Deprecated: the two suites then co-own the same cases and the
// same backing array, so an Add on one can overwrite slots seen
// by the other. Use CopyFrom or Clone.
func (s *Suite) UnsafeAliasFrom(other *Suite) {
	if other == nil {
		return
	}
	s.tests = other.tests
}

func cloneAll(src []testcase.Case) []testcase.Case {
	if len(src) == 0 {
		return nil
	}
	out := make([]testcase.Case, len(src))
	for i, c := range src {
		out[i] = c.Clone()
	}
	return out
}
