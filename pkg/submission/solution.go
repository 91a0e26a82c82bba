package submission

import (
	"crypto/sha256"
	"encoding/hex"
)

// Solution is an opaque candidate payload. It is never parsed or
// executed.
type Solution struct {
	code string
}

// NewSolution wraps code.
func NewSolution(code string) Solution {
	return Solution{code: code}
}

// Code returns the payload.
func (s Solution) Code() string { return s.code }

// Len returns the payload size in bytes.
func (s Solution) Len() int { return len(s.code) }

// Fingerprint returns the first 12 hex digits of the payload's
// SHA-256, suitable for logs.
func (s Solution) Fingerprint() string {
	sum := sha256.Sum256([]byte(s.code))
	return hex.EncodeToString(sum[:])[:12]
}
