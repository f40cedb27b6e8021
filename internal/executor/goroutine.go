package executor

import (
	"sync"

	"github.com/footprint-tools/parallax/internal/dispatchers"
)

// Goroutine runs every task on its own goroutine.
type Goroutine struct {
	opts options
	wg   sync.WaitGroup
}

// NewGoroutine creates a Goroutine executor.
func NewGoroutine(opts ...Option) *Goroutine {
	return &Goroutine{opts: newOptions(opts)}
}

func (x *Goroutine) Execute(task dispatchers.Task) {
	if task == nil {
		return
	}
	x.wg.Add(1)
	go func() {
		defer x.wg.Done()
		x.opts.run(task)
	}()
}

// Wait blocks until every started task has returned.
func (x *Goroutine) Wait() {
	x.wg.Wait()
}

var _ dispatchers.Executor = (*Goroutine)(nil)
