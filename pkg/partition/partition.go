// Package partition splits a token sequence of length N into contiguous,
// non-overlapping index ranges, one per worker.
package partition

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyInput     = errors.New("partition: token count must be positive")
	ErrInvalidWorkers = errors.New("partition: worker count must be at least 1")
	ErrTooManyWorkers = errors.New("partition: more workers than tokens")
)

// Scheme selects how the remainder of an uneven split is distributed.
type Scheme int

const (
	// RemainderLast gives every worker N/W tokens and hands the leftover tail to the last worker.
	RemainderLast Scheme = iota
	// Skewed hands the first worker one extra token and the last worker N%W-1 extra tokens.
	Skewed
)

func (s Scheme) String() string {
	switch s {
	case RemainderLast:
		return "remainder-last"
	case Skewed:
		return "skewed"
	default:
		return fmt.Sprintf("scheme(%d)", int(s))
	}
}

// ParseScheme converts a config or flag value into a Scheme.
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "remainder-last", "default":
		return RemainderLast, nil
	case "skewed":
		return Skewed, nil
	default:
		return RemainderLast, fmt.Errorf("unknown partition scheme %q (want remainder-last or skewed)", s)
	}
}

// Range is an inclusive index range [Start, End] into the token sequence.
type Range struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Len returns the number of indices covered by r.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Start, r.End)
}

// Partition computes w ranges covering exactly [0, n-1].
func Partition(n, w int, scheme Scheme) ([]Range, error) {
	if w <= 0 {
		return nil, ErrInvalidWorkers
	}
	if n <= 0 {
		return nil, ErrEmptyInput
	}
	if w > n {
		return nil, fmt.Errorf("%w: %d workers for %d tokens", ErrTooManyWorkers, w, n)
	}

	offset := n / w
	remainder := n % w
	ranges := make([]Range, w)

	if remainder == 0 {
		for i := 0; i < w; i++ {
			ranges[i] = Range{Start: i * offset, End: (i+1)*offset - 1}
		}
		return ranges, nil
	}

	switch scheme {
	case Skewed:
		for i := 0; i < w; i++ {
			start := i * offset
			if i > 0 {
				start++
			}
			end := (i + 1) * offset
			if i == w-1 {
				end = (i+1)*offset + remainder - 1
			}
			ranges[i] = Range{Start: start, End: end}
		}
	default:
		for i := 0; i < w; i++ {
			ranges[i] = Range{Start: i * offset, End: (i+1)*offset - 1}
		}
		ranges[w-1].End = n - 1
	}

	return ranges, nil
}
