package testcase

// Basic passes when its input equals its expected output.
type Basic struct {
	input    string
	expected string
}

// NewBasic creates a basic case.
func NewBasic(input, expected string) *Basic {
	return &Basic{input: input, expected: expected}
}

// Kind returns KindBasic.
func (b *Basic) Kind() Kind { return KindBasic }

// Input returns the test input.
func (b *Basic) Input() string { return b.input }

// Expected returns the expected output.
func (b *Basic) Expected() string { return b.expected }

// Run reports whether input == expected.
func (b *Basic) Run() bool { return b.input == b.expected }

// Clone returns an independent copy.
func (b *Basic) Clone() Case {
	return NewBasic(b.input, b.expected)
}

func (*Basic) sealed() {}
