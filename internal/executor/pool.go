package executor

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/footprint-tools/parallax/internal/dispatchers"
)

// Pool runs tasks on a fixed set of workers that drain a FIFO queue.
// A pool of one worker executes tasks strictly in submission order.
type Pool struct {
	opts    options
	workers int
	queue   chan dispatchers.Task
	group   errgroup.Group

	mu     sync.RWMutex
	closed bool
	once   sync.Once
}

// NewPool starts a pool with n workers (at least one).
func NewPool(n int, opts ...Option) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{
		opts:    newOptions(opts),
		workers: n,
	}
	p.queue = make(chan dispatchers.Task, p.opts.queueSize)

	for i := 0; i < n; i++ {
		p.group.Go(func() error {
			for task := range p.queue {
				p.opts.run(task)
			}
			return nil
		})
	}
	return p
}

// NewSingle starts a pool with one worker.
func NewSingle(opts ...Option) *Pool {
	return NewPool(1, opts...)
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Execute queues task. It blocks while the queue is full. After Close the
// task is dropped and ErrExecutorClosed goes to the error handler.
func (p *Pool) Execute(task dispatchers.Task) {
	if task == nil {
		return
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		p.opts.onError(ErrExecutorClosed)
		return
	}
	p.queue <- task
}

// Close stops accepting tasks, lets the workers drain the queue and waits
// for them to exit. It is safe to call more than once.
func (p *Pool) Close() error {
	p.once.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.queue)
		p.mu.Unlock()
	})
	return p.group.Wait()
}

var _ dispatchers.Executor = (*Pool)(nil)
