package accumulator

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	t.Run("new table is empty", func(t *testing.T) {
		table := New()

		assert.Empty(t, table.Snapshot())
	})

	t.Run("increment inserts then adds", func(t *testing.T) {
		table := New()
		table.Increment("the")
		table.Increment("quick")
		table.Increment("the")

		assert.Equal(t, map[string]int{"the": 2, "quick": 1}, table.Snapshot())
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		table := New()
		table.Increment("word")

		snap := table.Snapshot()
		snap["word"] = 100
		snap["other"] = 1

		assert.Equal(t, map[string]int{"word": 1}, table.Snapshot())
	})
}

func TestTableConcurrentIncrements(t *testing.T) {
	const (
		goroutines = 16
		perRoutine = 1000
	)

	table := New()
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perRoutine; i++ {
				table.Increment("shared")
				table.Increment(fmt.Sprintf("key-%d", i%10))
			}
		}(g)
	}
	wg.Wait()

	snap := table.Snapshot()
	require.Equal(t, goroutines*perRoutine, snap["shared"], "lost update on shared key")
	for i := 0; i < 10; i++ {
		assert.Equal(t, goroutines*perRoutine/10, snap[fmt.Sprintf("key-%d", i)])
	}
	assert.Len(t, snap, 11)
}
