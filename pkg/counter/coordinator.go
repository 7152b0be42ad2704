// Package counter runs the concurrent partition-and-merge word count: it sizes
// the worker pool, splits the token sequence, fans the ranges out to workers
// that share one frequency table, joins them, and checksums the result.
package counter

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/dtnitsch/word-frequency-analyzer/pkg/accumulator"
	"github.com/dtnitsch/word-frequency-analyzer/pkg/partition"
	"github.com/dtnitsch/word-frequency-analyzer/pkg/validator"
)

const (
	// DefaultMinPerThread is the number of tokens that warrants one more worker.
	DefaultMinPerThread = 30
	// DefaultMaxTokens keeps N representable in a 32-bit count.
	DefaultMaxTokens = math.MaxInt32
	// fallbackParallelism is used when the hardware parallelism is unknown.
	fallbackParallelism = 2
)

var (
	ErrEmptyInput    = errors.New("unable to perform frequency analysis on empty input")
	ErrTooManyTokens = errors.New("number of words is too large for the counting type")
	ErrWorkerFailed  = errors.New("concurrent word count failed")
)

// Options configures a Coordinator. Zero values select the defaults.
type Options struct {
	MinPerThread  int
	Parallelism   func() int
	MaxWorkers    int
	MaxTokens     int
	Scheme        partition.Scheme
	CaseSensitive bool
	Logger        *slog.Logger
}

// Plan is the worker layout computed for a token count.
type Plan struct {
	Tokens int
	// Hardware is the probed parallelism, after the fallback for unknown values.
	Hardware int
	// Cap is the user limit on workers; 0 means none.
	Cap       int
	MaxBySize int
	Workers   int
	Spawned   int
	Ranges    []partition.Range
}

// Result is the frozen outcome of a run.
type Result struct {
	Counts  map[string]int
	Tokens  int
	Counted int
	// Valid is true when Counted equals Tokens.
	Valid         bool
	Workers       int
	Spawned       int
	Ranges        []partition.Range
	CaseSensitive bool
	Scheme        partition.Scheme
	Elapsed       time.Duration
}

type Coordinator struct {
	opts Options

	// wrapSink lets tests interpose on the table a worker writes to.
	wrapSink func(*accumulator.Table) accumulator.Incrementer
}

func New(opts Options) *Coordinator {
	if opts.MinPerThread <= 0 {
		opts.MinPerThread = DefaultMinPerThread
	}
	if opts.Parallelism == nil {
		opts.Parallelism = runtime.NumCPU
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Coordinator{opts: opts}
}

func (c *Coordinator) checkSize(n int) error {
	if n == 0 {
		return ErrEmptyInput
	}
	if n < 0 || n > c.opts.MaxTokens {
		return fmt.Errorf("%w: %d words, limit %d", ErrTooManyTokens, n, c.opts.MaxTokens)
	}
	return nil
}

// Plan sizes the worker pool for n tokens and partitions [0, n-1] among it.
func (c *Coordinator) Plan(n int) (*Plan, error) {
	if err := c.checkSize(n); err != nil {
		return nil, err
	}

	// ceil(n / MinPerThread) without overflowing for large thresholds.
	maxBySize := (n-1)/c.opts.MinPerThread + 1

	hardware := c.opts.Parallelism()
	if hardware <= 0 {
		hardware = fallbackParallelism
	}

	workers := min(hardware, maxBySize)
	if c.opts.MaxWorkers > 0 {
		workers = min(workers, c.opts.MaxWorkers)
	}

	ranges, err := partition.Partition(n, workers, c.opts.Scheme)
	if err != nil {
		return nil, fmt.Errorf("failed to partition %d words among %d workers: %w", n, workers, err)
	}

	return &Plan{
		Tokens:    n,
		Hardware:  hardware,
		Cap:       c.opts.MaxWorkers,
		MaxBySize: maxBySize,
		Workers:   workers,
		Spawned:   workers - 1,
		Ranges:    ranges,
	}, nil
}

func (c *Coordinator) descriptor(i int, plan *Plan) Descriptor {
	return Descriptor{
		Index:         i,
		Workers:       plan.Workers,
		CaseSensitive: c.opts.CaseSensitive,
		Range:         plan.Ranges[i],
	}
}

// Run counts tokens. It spawns Workers-1 goroutines, processes the last range
// on the calling goroutine, and waits for every worker before reading the table.
//
// A worker failure discards the table and returns an error wrapping
// ErrWorkerFailed. A checksum failure returns the Result together with a
// *validator.ChecksumError.
func (c *Coordinator) Run(tokens []string) (*Result, error) {
	logger := c.opts.Logger
	start := time.Now()

	plan, err := c.Plan(len(tokens))
	if err != nil {
		return nil, err
	}
	logger.Info("Starting concurrent count phase",
		"tokens", plan.Tokens,
		"workers", plan.Workers,
		"spawned", plan.Spawned,
		"hardware", plan.Hardware,
		"max_workers", plan.Cap,
		"scheme", c.opts.Scheme.String(),
		"case_sensitive", c.opts.CaseSensitive)

	table := accumulator.New()
	var sink accumulator.Incrementer = table
	if c.wrapSink != nil {
		sink = c.wrapSink(table)
	}

	errs := make([]error, plan.Workers)
	var wg sync.WaitGroup
	for i := 0; i < plan.Spawned; i++ {
		wg.Add(1)
		go func(d Descriptor) {
			defer wg.Done()
			errs[d.Index] = work(d, tokens, sink)
		}(c.descriptor(i, plan))
	}

	last := plan.Workers - 1
	errs[last] = work(c.descriptor(last, plan), tokens, sink)

	wg.Wait()
	logger.Info("All count workers finished", "workers", plan.Workers)

	if err := errors.Join(errs...); err != nil {
		logger.Error("Discarding frequency table after worker failure", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrWorkerFailed, err)
	}

	counts := table.Snapshot()
	counted, sumErr := validator.Checksum(counts, plan.Tokens)

	res := &Result{
		Counts:        counts,
		Tokens:        plan.Tokens,
		Counted:       counted,
		Valid:         sumErr == nil,
		Workers:       plan.Workers,
		Spawned:       plan.Spawned,
		Ranges:        plan.Ranges,
		CaseSensitive: c.opts.CaseSensitive,
		Scheme:        c.opts.Scheme,
		Elapsed:       time.Since(start),
	}

	if sumErr != nil {
		logger.Error("Checksum validation failed", "counted", counted, "expected", plan.Tokens)
		return res, sumErr
	}

	logger.Info("Checksum validation passed", "counted", counted, "unique_words", len(counts), "elapsed", res.Elapsed)
	return res, nil
}
