package anycow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azizi-X/anycow"
)

func TestWatchReceivesReplacements(t *testing.T) {
	c := anycow.NewUpdatable(0)

	ch := c.Watch()
	require.NotNil(t, ch)

	require.NoError(t, c.TryReplace(1))
	require.NoError(t, c.TryReplace(2))

	assert.Equal(t, 1, <-ch)
	assert.Equal(t, 2, <-ch)
}

func TestWatchOnLazy(t *testing.T) {
	c := anycow.NewLazy(func() int { return 0 })

	ch := c.Watch()
	require.NotNil(t, ch)

	require.NoError(t, c.TryReplace(7))
	assert.Equal(t, 7, <-ch)
}

func TestWatchWrongVariant(t *testing.T) {
	assert.Nil(t, anycow.NewOwned(1).Watch())

	v := 1
	assert.Nil(t, anycow.NewBorrowed(&v).Watch())
	assert.Nil(t, anycow.NewShared(&v).Watch())
}

func TestUnwatchClosesChannel(t *testing.T) {
	c := anycow.NewUpdatable(0)
	ch := c.Watch()

	c.Unwatch(ch)

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel must be closed")
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}

	// Replacing after unwatch must not panic or block.
	require.NoError(t, c.TryReplace(5))
}

func TestSlowWatcherDoesNotBlockReplace(t *testing.T) {
	c := anycow.NewUpdatable(0)
	_ = c.Watch() // never drained

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_ = c.TryReplace(i)
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("TryReplace blocked on a slow watcher")
	}
	assert.Equal(t, 99, c.Borrow().Val())
}
