package testutil

import (
	"sync"

	"github.com/footprint-tools/parallax/internal/dispatchers"
)

// RecordingCommand records the arguments of every invocation.
type RecordingCommand struct {
	name string
	err  error

	mu    sync.Mutex
	calls [][]string
	ids   []string
}

// NewRecordingCommand returns a command named name that succeeds.
func NewRecordingCommand(name string) *RecordingCommand {
	return &RecordingCommand{name: name}
}

// NewFailingCommand returns a recording command whose Execute returns err.
func NewFailingCommand(name string, err error) *RecordingCommand {
	return &RecordingCommand{name: name, err: err}
}

func (c *RecordingCommand) Name() string { return c.name }

func (c *RecordingCommand) Execute(ctx *dispatchers.InvocationContext) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, ctx.Arguments())
	c.ids = append(c.ids, ctx.ID().String())
	return c.err
}

// Calls returns the arguments of each invocation in order.
func (c *RecordingCommand) Calls() [][]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]string(nil), c.calls...)
}

// Count returns the number of invocations.
func (c *RecordingCommand) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

// InvocationIDs returns the invocation ID of each call.
func (c *RecordingCommand) InvocationIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.ids...)
}

// BlockingCommand blocks in Execute until released.
type BlockingCommand struct {
	name    string
	started chan struct{}
	release chan struct{}
	once    sync.Once
	relOnce sync.Once
}

// NewBlockingCommand returns a command named name. Started is closed when
// the first invocation begins; every invocation waits for Release.
func NewBlockingCommand(name string) *BlockingCommand {
	return &BlockingCommand{
		name:    name,
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (c *BlockingCommand) Name() string { return c.name }

func (c *BlockingCommand) Execute(_ *dispatchers.InvocationContext) error {
	c.once.Do(func() { close(c.started) })
	<-c.release
	return nil
}

// Started is closed once Execute has been entered.
func (c *BlockingCommand) Started() <-chan struct{} {
	return c.started
}

// Release lets every current and future invocation return.
func (c *BlockingCommand) Release() {
	c.relOnce.Do(func() { close(c.release) })
}
