package suite

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned by bounds-checked accessors.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNilCase is returned when a nil case is added.
	ErrNilCase = errors.New("nil test case")
)

// CheckIndex returns an error wrapping ErrIndexOutOfRange unless
// 0 <= i < n.
func CheckIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("index %d, length %d: %w", i, n, ErrIndexOutOfRange)
	}
	return nil
}
