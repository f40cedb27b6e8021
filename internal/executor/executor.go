// Package executor provides execution strategies for dispatch tasks.
//
// Every executor recovers panics at the task boundary (unless disabled) and
// hands task errors to an ErrorHandler; nothing here terminates the process.
package executor

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/footprint-tools/parallax/internal/dispatchers"
	"github.com/footprint-tools/parallax/internal/domain"
	"github.com/footprint-tools/parallax/internal/log"
)

// ErrExecutorClosed is reported when a task is submitted after Close.
var ErrExecutorClosed = errors.New("executor: closed")

// ErrorHandler receives the error of every failed task.
type ErrorHandler func(error)

// PanicError wraps a value recovered from a panicking task.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("executor: task panicked: %v", e.Value)
}

type options struct {
	logger    domain.Logger
	onError   ErrorHandler
	recover   bool
	queueSize int
}

// Option configures an executor.
type Option func(*options)

// WithLogger sets the logger used by the default error handler.
func WithLogger(logger domain.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithErrorHandler replaces the default handler, which logs at error level.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *options) {
		o.onError = h
	}
}

// WithPanicRecovery toggles recovering panics into *PanicError. On by default.
func WithPanicRecovery(enabled bool) Option {
	return func(o *options) {
		o.recover = enabled
	}
}

// WithQueueSize sets how many tasks a Pool buffers before Execute blocks.
func WithQueueSize(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.queueSize = n
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:    log.NopLogger{},
		recover:   true,
		queueSize: 64,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.onError == nil {
		logger := o.logger
		o.onError = func(err error) {
			var pe *PanicError
			if errors.As(err, &pe) {
				logger.Error("%v\n%s", pe, pe.Stack)
				return
			}
			logger.Error("%v", err)
		}
	}
	return o
}

// run executes task and reports its failure.
func (o options) run(task dispatchers.Task) {
	if task == nil {
		return
	}
	if err := o.call(task); err != nil {
		o.onError(err)
	}
}

func (o options) call(task dispatchers.Task) (err error) {
	if o.recover {
		defer func() {
			if v := recover(); v != nil {
				err = &PanicError{Value: v, Stack: debug.Stack()}
			}
		}()
	}
	return task()
}
