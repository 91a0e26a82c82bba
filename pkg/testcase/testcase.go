// Package testcase defines the closed set of test-case variants
// a suite can hold. Every variant can evaluate itself and produce
// an independent clone of the same concrete kind.
package testcase

import "fmt"

// Kind tags the concrete variant of a Case.
type Kind string

// Variant tags.
const (
	KindBasic    Kind = "basic"
	KindAdvanced Kind = "advanced"
)

// Case is the capability shared by all variants. The set is
// closed: only this package can implement it.
type Case interface {
	// Kind returns the variant tag.
	Kind() Kind

	// Input returns the test input.
	Input() string

	// Expected returns the expected output.
	Expected() string

	// Run evaluates the case.
	Run() bool

	// Clone returns a new case with identical fields and the
	// same concrete kind. The caller owns the result.
	Clone() Case

	sealed()
}

// Equal reports whether a and b are the same kind with the same
// field values. Two nil cases are equal.
func Equal(a, b Case) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() ||
		a.Input() != b.Input() ||
		a.Expected() != b.Expected() {
		return false
	}
	if aa, ok := a.(*Advanced); ok {
		return aa.level == b.(*Advanced).level
	}
	return true
}

// Describe renders a short one-line description of c.
func Describe(c Case) string {
	switch v := c.(type) {
	case *Advanced:
		return fmt.Sprintf(
			"%s(%q, %q, level=%d)",
			v.Kind(), v.input, v.expected, v.level,
		)
	case *Basic:
		return fmt.Sprintf("%s(%q, %q)", v.Kind(), v.input, v.expected)
	default:
		return "<nil>"
	}
}
