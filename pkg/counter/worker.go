package counter

import (
	"fmt"

	"github.com/dtnitsch/word-frequency-analyzer/pkg/accumulator"
	"github.com/dtnitsch/word-frequency-analyzer/pkg/partition"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Descriptor is the immutable assignment handed to one worker at spawn time.
type Descriptor struct {
	Index         int
	Workers       int
	CaseSensitive bool
	Range         partition.Range
}

// WorkerError reports a worker that could not finish its range.
type WorkerError struct {
	Index int
	Range partition.Range
	Err   error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("worker %d %s: %v", e.Index, e.Range, e.Err)
}

func (e *WorkerError) Unwrap() error {
	return e.Err
}

// work increments sink once for every token in d.Range. A panic from the sink
// is returned as a *WorkerError so the coordinator sees it after the barrier.
func work(d Descriptor, tokens []string, sink accumulator.Incrementer) (err error) {
	if d.Range.Start < 0 || d.Range.End >= len(tokens) || d.Range.Start > d.Range.End {
		return &WorkerError{Index: d.Index, Range: d.Range, Err: fmt.Errorf("range outside token sequence of length %d", len(tokens))}
	}

	defer func() {
		if r := recover(); r != nil {
			err = &WorkerError{Index: d.Index, Range: d.Range, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	// Casers are stateful and must not be shared between goroutines.
	var caser cases.Caser
	if !d.CaseSensitive {
		caser = cases.Lower(language.Und)
	}

	for i := d.Range.Start; i <= d.Range.End; i++ {
		key := tokens[i]
		if !d.CaseSensitive {
			key = caser.String(key)
		}
		sink.Increment(key)
	}

	return nil
}
