package executor

import "github.com/footprint-tools/parallax/internal/dispatchers"

// Inline runs each task on the calling goroutine. With the engine's reader
// loop this means no line is read until the previous command returns.
type Inline struct {
	opts options
}

// NewInline creates an Inline executor.
func NewInline(opts ...Option) *Inline {
	return &Inline{opts: newOptions(opts)}
}

func (x *Inline) Execute(task dispatchers.Task) {
	x.opts.run(task)
}

var _ dispatchers.Executor = (*Inline)(nil)
