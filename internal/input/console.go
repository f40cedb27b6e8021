package input

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/cancelreader"
	"golang.org/x/term"

	"github.com/footprint-tools/parallax/internal/dispatchers"
)

// cancelable is the part of cancelreader.CancelReader the console uses.
type cancelable interface {
	io.Reader
	Cancel() bool
	Close() error
}

// Console reads newline-terminated lines from an io.Reader, stdin by
// default. A read blocked in Next is abandoned when the context is
// cancelled. For files, pipes and terminals this interrupts the underlying
// read; any other reader is only checked between reads.
//
// Cancelling a read invalidates the reader it was issued on, so the next
// call to Next opens a fresh one on the same source. Bytes of a partial
// line read before the cancellation are kept.
type Console struct {
	src io.Reader

	// mu serializes Next; curMu guards cur and closed so Close can cancel
	// a read that Next is blocked in.
	mu      sync.Mutex
	buf     *bufio.Reader
	stale   bool
	pending string

	curMu     sync.Mutex
	cur       cancelable
	closed    bool
	curClosed bool
}

// NewConsole returns a console over r. A nil r means os.Stdin.
func NewConsole(r io.Reader) (*Console, error) {
	if r == nil {
		r = os.Stdin
	}
	c := &Console{src: r}
	cur, err := openCancelable(r)
	if err != nil {
		return nil, err
	}
	c.cur = cur
	c.buf = bufio.NewReader(readerFunc(c.read))
	return c, nil
}

func openCancelable(r io.Reader) (cancelable, error) {
	cr, err := cancelreader.NewReader(r)
	if err == nil {
		return cr, nil
	}
	// regular files cannot be polled
	if _, ok := r.(*os.File); ok {
		return plainReader{r}, nil
	}
	return nil, err
}

// read is only called from Next, with c.mu held.
func (c *Console) read(p []byte) (int, error) {
	return c.current().Read(p)
}

func (c *Console) current() cancelable {
	c.curMu.Lock()
	defer c.curMu.Unlock()
	return c.cur
}

// Next returns the next line without its line terminator.
func (c *Console) Next(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer func() {
		c.mu.Unlock()
		c.releaseIfClosed()
	}()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.curMu.Lock()
	if c.closed {
		c.curMu.Unlock()
		return "", io.EOF
	}
	if c.stale {
		_ = c.cur.Close()
		cur, err := openCancelable(c.src)
		if err != nil {
			c.curMu.Unlock()
			return "", err
		}
		c.cur = cur
		c.stale = false
	}
	cur := c.cur
	c.curMu.Unlock()

	stop := context.AfterFunc(ctx, func() { cur.Cancel() })
	line, err := c.buf.ReadString('\n')
	if !stop() {
		c.stale = true
	}

	line = c.pending + line
	c.pending = ""

	switch {
	case errors.Is(err, cancelreader.ErrCanceled):
		c.pending = line
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		// cancelled by Close
		return "", io.EOF
	case errors.Is(err, io.EOF):
		if line == "" {
			return "", io.EOF
		}
		// last line without a terminator
		return trimEOL(line), nil
	case err != nil:
		return "", err
	}

	return trimEOL(line), nil
}

// IsTerminal reports whether the console reads from a terminal.
func (c *Console) IsTerminal() bool {
	f, ok := c.src.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Close unblocks a pending Next, which then reports io.EOF, and releases
// the poller. It does not close the underlying reader.
func (c *Console) Close() error {
	c.curMu.Lock()
	if c.closed {
		c.curMu.Unlock()
		return nil
	}
	c.closed = true
	cur := c.cur
	c.curMu.Unlock()

	cur.Cancel()

	// a Next blocked in a read releases the poller when it returns
	if c.mu.TryLock() {
		c.mu.Unlock()
		return c.releaseIfClosed()
	}
	return nil
}

func (c *Console) releaseIfClosed() error {
	c.curMu.Lock()
	defer c.curMu.Unlock()
	if !c.closed || c.curClosed {
		return nil
	}
	c.curClosed = true
	return c.cur.Close()
}

func trimEOL(s string) string {
	return strings.TrimSuffix(strings.TrimSuffix(s, "\n"), "\r")
}

type readerFunc func(p []byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) {
	return f(p)
}

// plainReader is used where polling is unavailable; Cancel has no effect.
type plainReader struct {
	io.Reader
}

func (plainReader) Cancel() bool { return false }
func (plainReader) Close() error { return nil }

var _ dispatchers.InputSource = (*Console)(nil)
