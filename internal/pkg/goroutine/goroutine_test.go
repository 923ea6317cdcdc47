package goroutine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Go(t *testing.T) {
	t.Parallel()

	m := NewManager(4)

	var ran atomic.Int32
	for range 3 {
		require.True(t, m.Go(context.Background(), "count", func(context.Context) error {
			ran.Add(1)
			return nil
		}))
	}

	require.NoError(t, m.Wait())
	assert.Equal(t, int32(3), ran.Load())
}

func TestManager_Errors(t *testing.T) {
	t.Parallel()

	m := NewManager(2)
	errBoom := errors.New("boom")

	m.Go(context.Background(), "fails", func(context.Context) error { return errBoom })
	m.Go(context.Background(), "panics", func(context.Context) error { panic("bad") })

	err := m.Wait()
	require.ErrorIs(t, err, errBoom)
	require.ErrorIs(t, err, ErrPanic)
	assert.Contains(t, err.Error(), "fails: boom")
}

func TestManager_Limit(t *testing.T) {
	t.Parallel()

	m := NewManager(1)
	release := make(chan struct{})

	require.True(t, m.Go(context.Background(), "blocker", func(context.Context) error {
		<-release
		return nil
	}))
	assert.False(t, m.Go(context.Background(), "overflow", func(context.Context) error { return nil }))

	close(release)
	require.NoError(t, m.Close())
}

func TestManager_ClosedAndCanceled(t *testing.T) {
	t.Parallel()

	m := NewManager(0)
	require.NoError(t, m.Wait())
	assert.False(t, m.Go(context.Background(), "late", func(context.Context) error { return nil }))

	var nilManager *Manager
	assert.False(t, nilManager.Go(context.Background(), "nil", nil))
	require.NoError(t, nilManager.Wait())

	m2 := NewManager(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	m2.Go(ctx, "canceled", func(context.Context) error {
		called = true
		return errors.New("should not run")
	})
	require.NoError(t, m2.Wait())
	assert.False(t, called)
}
