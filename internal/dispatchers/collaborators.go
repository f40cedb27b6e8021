package dispatchers

import "context"

// InputSource produces raw input lines for the reader loop.
type InputSource interface {
	// Next blocks until a line is available. An empty line with a nil error
	// means "nothing yet" and is skipped. Next must return promptly once ctx
	// is cancelled.
	Next(ctx context.Context) (string, error)
}

// OutputSink receives user-facing messages.
type OutputSink interface {
	Info(message string)
	Error(message string)
}

// Task is one unit of dispatch work.
type Task func() error

// Executor runs tasks. Implementations may run them inline, on a new
// goroutine or on a pool; the engine never assumes synchronous completion.
type Executor interface {
	Execute(task Task)
}

// InputFunc adapts a function to InputSource.
type InputFunc func(ctx context.Context) (string, error)

func (f InputFunc) Next(ctx context.Context) (string, error) {
	return f(ctx)
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(task Task)

func (f ExecutorFunc) Execute(task Task) {
	f(task)
}
