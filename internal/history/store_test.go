package history_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"daytime/internal/history"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AppendAndRecent(t *testing.T) {
	store := history.NewStore(10)
	ctx := context.Background()

	at := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	entries := []history.Entry{
		{Expr: "12:00 + 2h", Output: "14:00:00.0", At: at},
		{Expr: "23:59:59 + 2s", Output: "0:00:01.0 (next day)", At: at.Add(time.Second)},
		{Expr: "17:00 - 8:30", Output: "8h30m0s", At: at.Add(2 * time.Second)},
	}
	for _, e := range entries {
		require.NoError(t, store.Append(ctx, e))
	}

	recent, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)

	// Newest first.
	assert.Equal(t, "17:00 - 8:30", recent[0].Expr)
	assert.Equal(t, "23:59:59 + 2s", recent[1].Expr)
	assert.Equal(t, "12:00 + 2h", recent[2].Expr)
}

func TestStore_Recent_LimitsCount(t *testing.T) {
	store := history.NewStore(10)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_ = store.Append(ctx, history.Entry{Expr: fmt.Sprintf("expr%d", i)})
	}

	recent, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "expr4", recent[0].Expr)
	assert.Equal(t, "expr3", recent[1].Expr)
}

func TestStore_Recent_Empty(t *testing.T) {
	store := history.NewStore(10)

	recent, err := store.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestStore_EvictsOldestAtCapacity(t *testing.T) {
	store := history.NewStore(3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_ = store.Append(ctx, history.Entry{Expr: fmt.Sprintf("expr%d", i)})
	}

	assert.Equal(t, 3, store.Len())

	recent, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "expr4", recent[0].Expr)
	assert.Equal(t, "expr3", recent[1].Expr)
	assert.Equal(t, "expr2", recent[2].Expr)
}

func TestStore_Clear(t *testing.T) {
	store := history.NewStore(10)
	ctx := context.Background()

	_ = store.Append(ctx, history.Entry{Expr: "12:00 + 2h"})
	_ = store.Append(ctx, history.Entry{Expr: "17:00 - 8:30"})
	require.Equal(t, 2, store.Len())

	require.NoError(t, store.Clear(ctx))

	assert.Equal(t, 0, store.Len())
	recent, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestStore_DefaultCapacity(t *testing.T) {
	store := history.NewStore(0)
	ctx := context.Background()

	for i := 0; i < history.DefaultCapacity+10; i++ {
		_ = store.Append(ctx, history.Entry{Expr: fmt.Sprintf("expr%d", i)})
	}

	assert.Equal(t, history.DefaultCapacity, store.Len())
}

func TestStore_ConcurrentAppend(t *testing.T) {
	store := history.NewStore(1000)
	ctx := context.Background()

	const numGoroutines = 10
	const appendsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < appendsPerGoroutine; j++ {
				err := store.Append(ctx, history.Entry{Expr: fmt.Sprintf("g%d-%d", id, j)})
				assert.NoError(t, err)
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, numGoroutines*appendsPerGoroutine, store.Len())
}

func TestStore_RespectsContextCancellation(t *testing.T) {
	store := history.NewStore(10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	err := store.Append(ctx, history.Entry{Expr: "12:00 + 2h"})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = store.Recent(ctx, 5)
	assert.ErrorIs(t, err, context.Canceled)

	err = store.Clear(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
