// Package validator checks a finished frequency table against the number of
// tokens that went into it.
package validator

import (
	"errors"
	"fmt"
)

// ErrChecksumMismatch is matched by every *ChecksumError.
var ErrChecksumMismatch = errors.New("word total checksum does not reflect the total number of words parsed")

// ChecksumError reports a counted total that differs from the token count.
// Counted < Expected means an increment was dropped; Counted > Expected means one was duplicated.
type ChecksumError struct {
	Counted  int
	Expected int
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("%s: counted %d, expected %d", ErrChecksumMismatch, e.Counted, e.Expected)
}

func (e *ChecksumError) Is(target error) bool {
	return target == ErrChecksumMismatch
}

// Checksum sums counts and compares the total with n.
func Checksum(counts map[string]int, n int) (int, error) {
	sum := 0
	for _, c := range counts {
		sum += c
	}
	if sum != n {
		return sum, &ChecksumError{Counted: sum, Expected: n}
	}
	return sum, nil
}
