package internal

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutex(t *testing.T) {
	ctx := context.Background()

	t.Run("free lock is taken without suspension", func(t *testing.T) {
		m := NewMutex()
		require.NoError(t, m.Acquire(ctx))
		m.Release()
	})

	t.Run("hand-off to a blocked acquirer", func(t *testing.T) {
		m := NewMutex()
		require.NoError(t, m.Acquire(ctx))

		acquired := make(chan struct{})
		var wg sync.WaitGroup
		wg.Go(func() {
			assert.NoError(t, m.Acquire(ctx))
			close(acquired)
			m.Release()
		})

		select {
		case <-acquired:
			t.Fatal("acquire resolved while the lock was held")
		case <-time.After(20 * time.Millisecond):
		}

		m.Release()
		wg.Wait()
	})

	t.Run("mutual exclusion under contention", func(t *testing.T) {
		const n = 64
		m := NewMutex()

		counter := 0
		var wg sync.WaitGroup
		for range n {
			wg.Go(func() {
				if !assert.NoError(t, m.Acquire(ctx)) {
					return
				}
				counter++
				m.Release()
			})
		}
		wg.Wait()
		assert.Equal(t, n, counter)
	})

	t.Run("fifo hand-off order", func(t *testing.T) {
		m := NewMutex()
		require.NoError(t, m.Acquire(ctx))

		var order []int
		var wg sync.WaitGroup
		for i := 1; i <= 3; i++ {
			wg.Go(func() {
				assert.NoError(t, m.Acquire(ctx))
				order = append(order, i)
				m.Release()
			})
			// Let each waiter enqueue before spawning the next.
			time.Sleep(10 * time.Millisecond)
		}

		m.Release()
		wg.Wait()
		assert.Equal(t, []int{1, 2, 3}, order)
	})

	t.Run("cancelled waiter does not deadlock later acquirers", func(t *testing.T) {
		m := NewMutex()
		require.NoError(t, m.Acquire(ctx))

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		assert.ErrorIs(t, m.Acquire(cancelled), context.Canceled)

		m.Release()
		require.NoError(t, m.Acquire(ctx))
		m.Release()
	})

	t.Run("with exclusive releases on every path", func(t *testing.T) {
		m := NewMutex()

		boom := errors.New("boom")
		err := m.WithExclusive(ctx, func() error { return boom })
		assert.ErrorIs(t, err, boom)

		assert.Panics(t, func() {
			_ = m.WithExclusive(ctx, func() error { panic("inside") })
		})

		// The lock is free again after both failures.
		require.NoError(t, m.Acquire(ctx))
		m.Release()
	})

	t.Run("with exclusive propagates a cancelled acquire", func(t *testing.T) {
		m := NewMutex()
		require.NoError(t, m.Acquire(ctx))

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		ran := false
		err := m.WithExclusive(cancelled, func() error {
			ran = true
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, ran)
		m.Release()
	})

	t.Run("release without holding panics", func(t *testing.T) {
		m := NewMutex()
		assert.Panics(t, func() { m.Release() })
	})

	t.Run("release by a non-holder panics", func(t *testing.T) {
		m := NewMutex()
		require.NoError(t, m.Acquire(ctx))
		defer m.Release()

		var wg sync.WaitGroup
		wg.Go(func() {
			assert.Panics(t, func() { m.Release() })
		})
		wg.Wait()
	})
}
