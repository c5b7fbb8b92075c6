package store

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"veritas-core/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiterDailyReset(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)
	m := NewMemoryLimiter()
	m.now = func() time.Time { return now }

	for range 5 {
		ok, err := m.CheckLimit(ctx, "u1", 5)
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, m.Increment(ctx, "u1", 1))
	}

	ok, err := m.CheckLimit(ctx, "u1", 5)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, _ = m.CheckLimit(ctx, "u1", entity.Unlimited)
	assert.True(t, ok)

	now = now.Add(2 * time.Hour)
	usage, err := m.Usage(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, usage)

	ok, _ = m.CheckLimit(ctx, "u1", 5)
	assert.True(t, ok)
}

func TestMemoryLimiterReserveIsAtomic(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryLimiter()

	var granted atomic.Int32
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := m.Reserve(ctx, "u1", 5)
			assert.NoError(t, err)
			if ok {
				granted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 5, granted.Load())
	usage, err := m.Usage(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 5, usage)
}

func TestMemoryLimiterRefund(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryLimiter()

	ok, err := m.Reserve(ctx, "u1", 1)
	require.NoError(t, err)
	require.True(t, ok)
	ok, _ = m.Reserve(ctx, "u1", 1)
	assert.False(t, ok)

	require.NoError(t, m.Increment(ctx, "u1", -1))
	ok, _ = m.Reserve(ctx, "u1", 1)
	assert.True(t, ok)

	require.NoError(t, m.Increment(ctx, "u1", -5))
	usage, _ := m.Usage(ctx, "u1")
	assert.Zero(t, usage)

	ok, _ = m.Reserve(ctx, "u1", entity.Unlimited)
	assert.True(t, ok)
}
