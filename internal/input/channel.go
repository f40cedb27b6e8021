package input

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/footprint-tools/parallax/internal/dispatchers"
)

// ErrClosed is returned by Send after Close.
var ErrClosed = errors.New("input: channel closed")

// Channel is an input source fed by the embedding program.
// After Close, lines already sent are still delivered, then Next
// reports io.EOF.
type Channel struct {
	lines chan string
	done  chan struct{}
	once  sync.Once
}

// NewChannel returns a channel source buffering up to size lines.
func NewChannel(size int) *Channel {
	if size < 0 {
		size = 0
	}
	return &Channel{
		lines: make(chan string, size),
		done:  make(chan struct{}),
	}
}

// Send queues a line, blocking while the buffer is full.
func (c *Channel) Send(ctx context.Context, line string) error {
	select {
	case <-c.done:
		return ErrClosed
	default:
	}

	select {
	case c.lines <- line:
		return nil
	case <-c.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close ends the stream. It is safe to call more than once.
func (c *Channel) Close() {
	c.once.Do(func() { close(c.done) })
}

func (c *Channel) Next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line := <-c.lines:
		return line, nil
	case <-c.done:
		select {
		case line := <-c.lines:
			return line, nil
		default:
			return "", io.EOF
		}
	}
}

var _ dispatchers.InputSource = (*Channel)(nil)
