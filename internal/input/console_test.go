package input

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, c *Console) []string {
	t.Helper()
	var lines []string
	for {
		line, err := c.Next(context.Background())
		if err == io.EOF {
			return lines
		}
		require.NoError(t, err)
		lines = append(lines, line)
	}
}

func TestConsole_ReadsLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"unix endings", "help\necho hi\n", []string{"help", "echo hi"}},
		{"windows endings", "help\r\necho hi\r\n", []string{"help", "echo hi"}},
		{"missing final newline", "help\nquit", []string{"help", "quit"}},
		{"blank lines kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewConsole(strings.NewReader(tt.input))
			require.NoError(t, err)
			defer func() { _ = c.Close() }()

			assert.Equal(t, tt.want, readAll(t, c))
		})
	}
}

func TestConsole_RegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(path, []byte("version\nhelp\n"), 0600))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	c, err := NewConsole(f)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Equal(t, []string{"version", "help"}, readAll(t, c))
	assert.False(t, c.IsTerminal())
}

func TestConsole_CancelledContext(t *testing.T) {
	c, err := NewConsole(strings.NewReader("help\n"))
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	line, err := c.Next(context.Background())
	require.NoError(t, err, "a cancelled call must not poison later reads")
	assert.Equal(t, "help", line)
}

func TestConsole_InterruptsBlockedPipeRead(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer func() { _ = r.Close() }()
	defer func() { _ = w.Close() }()

	c, err := NewConsole(r)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := c.Next(ctx)
		errCh <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Next did not return after cancel")
	}

	// the console re-arms on the same pipe
	_, err = w.WriteString("after\n")
	require.NoError(t, err)
	line, err := c.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "after", line)
}

func TestConsole_CloseUnblocksNext(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer func() { _ = r.Close() }()
	defer func() { _ = w.Close() }()

	c, err := NewConsole(r)
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() {
		_, err := c.Next(context.Background())
		errCh <- err
	}()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, c.Close())

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, io.EOF)
	case <-time.After(2 * time.Second):
		t.Fatal("Next did not return after Close")
	}

	_, err = c.Next(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}
