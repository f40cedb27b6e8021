package dispatchers

import (
	"github.com/google/uuid"

	"github.com/footprint-tools/parallax/internal/domain"
)

// InvocationContext is handed to Command.Execute. It is built fresh for every
// dispatch and is only valid until Execute returns.
type InvocationContext struct {
	engine *Engine
	result ParseResult
	id     uuid.UUID

	// locked is true when the dispatch holds the registry lock for the whole
	// of Execute (LockPolicyHold).
	locked bool
}

// NewInvocationContext builds a context that does not hold the registry lock.
// The engine builds its own contexts; this is for invoking a command directly.
func NewInvocationContext(engine *Engine, result ParseResult) *InvocationContext {
	return newInvocationContext(engine, result, false)
}

func newInvocationContext(engine *Engine, result ParseResult, locked bool) *InvocationContext {
	return &InvocationContext{
		engine: engine,
		result: result,
		id:     uuid.New(),
		locked: locked,
	}
}

// Engine returns the engine that dispatched the command.
func (c *InvocationContext) Engine() *Engine {
	return c.engine
}

// ParseResult returns the parsed input line.
func (c *InvocationContext) ParseResult() ParseResult {
	return c.result
}

// CommandName returns the name as typed by the user.
func (c *InvocationContext) CommandName() string {
	return c.result.Name()
}

// Arguments returns a copy of the parsed arguments.
func (c *InvocationContext) Arguments() []string {
	return c.result.Arguments()
}

// ID identifies this invocation in logs.
func (c *InvocationContext) ID() uuid.UUID {
	return c.id
}

// Output returns the engine's output sink.
func (c *InvocationContext) Output() OutputSink {
	return c.engine.output
}

// Logger returns the engine's logger.
func (c *InvocationContext) Logger() domain.Logger {
	return c.engine.logger
}

// Commands returns a snapshot of the registry. Safe to call from Execute
// under either lock policy.
func (c *InvocationContext) Commands() []Command {
	if c.locked {
		return c.engine.commands.snapshot()
	}
	return c.engine.Commands()
}

// Lookup finds a registered command by case-insensitive name. Safe to call
// from Execute under either lock policy.
func (c *InvocationContext) Lookup(name string) (Command, bool) {
	if c.locked {
		return c.engine.commands.lookup(name)
	}
	return c.engine.Lookup(name)
}
