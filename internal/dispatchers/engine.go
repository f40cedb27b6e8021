package dispatchers

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/footprint-tools/parallax/internal/domain"
	"github.com/footprint-tools/parallax/internal/log"
)

const defaultSuggestionsCount = 3

// Engine owns a command registry and a reader loop.
//
// The registry, lookups and dispatch share one non-reentrant mutex. Under
// LockPolicyHold a command's Execute runs with that mutex held, so a command
// must not call ProcessCommand, Register, Unregister, UnregisterName, Lookup,
// Commands or Len on its own engine from Execute; it reads the registry
// through InvocationContext.Commands and InvocationContext.Lookup instead.
// Interrupt does not take the registry lock and is always safe.
type Engine struct {
	input       InputSource
	output      OutputSink
	parser      Parser
	executor    Executor
	logger      domain.Logger
	policy      LockPolicy
	suggestions int

	mu       sync.Mutex
	commands registry

	lifeMu sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(logger domain.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLockPolicy selects whether Execute runs under the registry lock.
func WithLockPolicy(policy LockPolicy) Option {
	return func(e *Engine) {
		e.policy = policy
	}
}

// WithSuggestions sets how many similar command names are appended to a
// "Command not found" message. Zero disables suggestions.
func WithSuggestions(n int) Option {
	return func(e *Engine) {
		if n < 0 {
			n = 0
		}
		e.suggestions = n
	}
}

// New creates a stopped engine. Every collaborator is required.
func New(input InputSource, output OutputSink, parser Parser, executor Executor, opts ...Option) (*Engine, error) {
	switch {
	case input == nil:
		return nil, ErrNilInputSource
	case output == nil:
		return nil, ErrNilOutputSink
	case parser == nil:
		return nil, ErrNilParser
	case executor == nil:
		return nil, ErrNilExecutor
	}

	e := &Engine{
		input:       input,
		output:      output,
		parser:      parser,
		executor:    executor,
		logger:      log.NopLogger{},
		policy:      LockPolicyHold,
		suggestions: defaultSuggestionsCount,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Output returns the engine's output sink.
func (e *Engine) Output() OutputSink {
	return e.output
}

// Parser returns the engine's command parser.
func (e *Engine) Parser() Parser {
	return e.parser
}

// Executor returns the engine's execution strategy.
func (e *Engine) Executor() Executor {
	return e.executor
}

// LockPolicy returns the dispatch lock policy.
func (e *Engine) LockPolicy() LockPolicy {
	return e.policy
}

// Start launches the reader loop. It returns ErrAlreadyRunning if a reader
// started by an earlier call has been neither interrupted nor finished.
// After Interrupt, Start may be called again; the new reader waits for the
// old one to exit before it reads.
func (e *Engine) Start() error {
	e.lifeMu.Lock()
	defer e.lifeMu.Unlock()

	if e.cancel != nil && !isClosed(e.done) {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(context.Background())
	prev := e.done
	done := make(chan struct{})
	e.cancel = cancel
	e.done = done

	go e.readLoop(ctx, cancel, prev, done)
	return nil
}

// Interrupt stops the reader loop and unblocks a pending read. Work already
// handed to the executor is not cancelled. Calling Interrupt on a stopped
// engine does nothing.
func (e *Engine) Interrupt() {
	e.lifeMu.Lock()
	defer e.lifeMu.Unlock()

	if e.cancel == nil {
		return
	}
	e.cancel()
	e.cancel = nil
	e.logger.Debug("dispatchers: interrupt requested")
}

// Running reports whether the reader loop is active.
func (e *Engine) Running() bool {
	e.lifeMu.Lock()
	defer e.lifeMu.Unlock()
	return e.cancel != nil && !isClosed(e.done)
}

// Done returns a channel closed when the most recently started reader exits.
// For an engine that was never started the channel is already closed.
func (e *Engine) Done() <-chan struct{} {
	e.lifeMu.Lock()
	defer e.lifeMu.Unlock()
	if e.done == nil {
		return closedChan
	}
	return e.done
}

// Wait blocks until the reader loop exits.
func (e *Engine) Wait() {
	<-e.Done()
}

func (e *Engine) readLoop(ctx context.Context, cancel context.CancelFunc, prev <-chan struct{}, done chan struct{}) {
	defer close(done)
	defer cancel()

	if prev != nil {
		select {
		case <-prev:
		case <-ctx.Done():
			return
		}
	}

	e.logger.Debug("dispatchers: reader started")
	for {
		if ctx.Err() != nil {
			e.logger.Debug("dispatchers: reader stopped")
			return
		}

		line, err := e.input.Next(ctx)
		if ctx.Err() != nil {
			e.logger.Debug("dispatchers: reader stopped")
			return
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				e.logger.Info("dispatchers: input closed, reader stopped")
			} else {
				e.logger.Error("dispatchers: input source failed: %v", err)
			}
			return
		}
		if line == "" {
			continue
		}

		e.submit(line)
	}
}

func (e *Engine) submit(line string) {
	e.logger.Debug("dispatchers: submitting %q", line)
	e.executor.Execute(func() error {
		if err := e.ProcessCommand(line); err != nil {
			return &DispatchError{Line: line, Err: err}
		}
		return nil
	})
}

var closedChan = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

func isClosed(ch <-chan struct{}) bool {
	if ch == nil {
		return true
	}
	select {
	case <-ch:
		return true
	default:
		return false
	}
}
