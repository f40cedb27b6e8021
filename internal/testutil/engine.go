package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/parallax/internal/dispatchers"
	"github.com/footprint-tools/parallax/internal/input"
)

// Harness bundles an engine with a channel input and a recording output.
type Harness struct {
	Engine *dispatchers.Engine
	Input  *input.Channel
	Output *RecordingOutput
}

// NewHarness builds an engine on a channel input, a recording output and
// the simple parser. A nil executor means dispatchers.ExecutorFunc running
// tasks inline. The engine is interrupted and awaited when the test ends.
func NewHarness(t *testing.T, executor dispatchers.Executor, opts ...dispatchers.Option) *Harness {
	t.Helper()

	if executor == nil {
		executor = dispatchers.ExecutorFunc(func(task dispatchers.Task) { _ = task() })
	}

	h := &Harness{
		Input:  input.NewChannel(16),
		Output: NewRecordingOutput(),
	}
	engine, err := dispatchers.New(h.Input, h.Output, dispatchers.SimpleParser{}, executor, opts...)
	require.NoError(t, err)
	h.Engine = engine

	t.Cleanup(func() {
		engine.Interrupt()
		engine.Wait()
	})
	return h
}

// Send pushes a line to the engine's input.
func (h *Harness) Send(t *testing.T, line string) {
	t.Helper()
	require.NoError(t, h.Input.Send(t.Context(), line))
}

// Eventually waits up to a second for cond.
func Eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	require.Eventually(t, cond, time.Second, 5*time.Millisecond, msg)
}
