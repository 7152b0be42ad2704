// Package accumulator holds the frequency table shared by counting workers.
package accumulator

import "sync"

// Incrementer records one occurrence of key.
type Incrementer interface {
	Increment(key string)
}

// Table maps a normalized token to its occurrence count. A single mutex guards
// the whole map; each Increment holds it for exactly one key update.
type Table struct {
	mu     sync.Mutex
	counts map[string]int
}

// New returns an empty Table.
func New() *Table {
	return &Table{
		counts: make(map[string]int),
	}
}

// Increment adds one to the count for key, inserting it if absent.
func (t *Table) Increment(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.counts[key]++
}

// Snapshot returns a copy of the counts.
func (t *Table) Snapshot() map[string]int {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}
