package input

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannel_DeliversInOrder(t *testing.T) {
	c := NewChannel(3)
	ctx := context.Background()

	require.NoError(t, c.Send(ctx, "one"))
	require.NoError(t, c.Send(ctx, "two"))
	require.NoError(t, c.Send(ctx, "three"))

	for _, want := range []string{"one", "two", "three"} {
		got, err := c.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestChannel_CloseDrainsThenEOF(t *testing.T) {
	c := NewChannel(2)
	ctx := context.Background()
	require.NoError(t, c.Send(ctx, "last"))
	c.Close()
	c.Close()

	got, err := c.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = c.Next(ctx)
	assert.ErrorIs(t, err, io.EOF)

	assert.ErrorIs(t, c.Send(ctx, "late"), ErrClosed)
}

func TestChannel_NextReturnsOnCancel(t *testing.T) {
	c := NewChannel(0)
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		_, err := c.Next(ctx)
		errCh <- err
	}()

	cancel()
	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Next did not return after cancel")
	}
}

func TestChannel_SendBlocksUntilRead(t *testing.T) {
	c := NewChannel(0)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Send(ctx, "nobody reads")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
