package ledger

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLedgerIncrementDecrement(t *testing.T) {
	ctx := context.Background()
	l := NewMemory()

	require.NoError(t, l.Increment(ctx, 1, 100))
	require.NoError(t, l.Increment(ctx, 1, 101))

	count, err := l.CurrentLoad(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, l.Decrement(ctx, 1, 100))
	count, err = l.CurrentLoad(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryLedgerAbsentStaffIsZero(t *testing.T) {
	ctx := context.Background()
	l := NewMemory()

	count, err := l.CurrentLoad(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	record, err := l.Record(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), record.StaffID)
	assert.Equal(t, 0, record.OpenCount)
	assert.Empty(t, record.OpenTickets)
}

func TestMemoryLedgerDecrementClampsAtZero(t *testing.T) {
	ctx := context.Background()
	l := NewMemory()

	require.NoError(t, l.Decrement(ctx, 1, 100))

	require.NoError(t, l.Increment(ctx, 1, 100))
	require.NoError(t, l.Decrement(ctx, 1, 100))
	require.NoError(t, l.Decrement(ctx, 1, 100))

	count, err := l.CurrentLoad(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMemoryLedgerConcurrentIncrements(t *testing.T) {
	ctx := context.Background()
	l := NewMemory()

	const goroutines = 64
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(ticketID int64) {
			defer wg.Done()
			_ = l.Increment(ctx, 1, ticketID)
		}(int64(i))
	}
	wg.Wait()

	count, err := l.CurrentLoad(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, goroutines, count)
}

func TestMemoryLedgerConcurrentMixedOps(t *testing.T) {
	ctx := context.Background()
	l := NewMemory()

	const pairs = 32
	var wg sync.WaitGroup
	wg.Add(pairs * 2)
	for i := 0; i < pairs; i++ {
		ticketID := int64(i)
		go func() {
			defer wg.Done()
			_ = l.Increment(ctx, 1, ticketID)
		}()
		go func() {
			defer wg.Done()
			_ = l.Decrement(ctx, 2, ticketID)
		}()
	}
	wg.Wait()

	count, err := l.CurrentLoad(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, pairs, count)

	count, err = l.CurrentLoad(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMemoryLedgerRecordSortsTickets(t *testing.T) {
	ctx := context.Background()
	l := NewMemory()

	require.NoError(t, l.Increment(ctx, 1, 300))
	require.NoError(t, l.Increment(ctx, 1, 100))
	require.NoError(t, l.Increment(ctx, 1, 200))

	record, err := l.Record(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, record.OpenCount)
	assert.Equal(t, []int64{100, 200, 300}, record.OpenTickets)
}

func TestMemoryLedgerLoads(t *testing.T) {
	ctx := context.Background()
	l := NewMemory()

	require.NoError(t, l.Increment(ctx, 1, 100))
	require.NoError(t, l.Increment(ctx, 1, 101))
	require.NoError(t, l.Increment(ctx, 3, 102))

	loads, err := l.Loads(ctx, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{1: 2, 2: 0, 3: 1}, loads)
}
