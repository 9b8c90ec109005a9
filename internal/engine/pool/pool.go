// Package pool implements the fixed worker pool that runs scheduled
// generation tasks in parallel.
package pool

import (
	"runtime"
	"sync"

	"go.trai.ch/loom/internal/core/ports"
)

// Pool runs tasks on a fixed set of worker goroutines. The queue is
// unbounded so a worker that fans out more work never blocks on its own
// pool. There is no ordering guarantee among tasks.
type Pool struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []ports.Task
	closed bool
	wg     sync.WaitGroup
}

// New creates a pool with the given number of workers. A non-positive
// count defaults to the number of CPUs.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := &Pool{}
	p.cond = sync.NewCond(&p.mu)
	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed {
			p.cond.Wait()
		}
		if len(p.queue) == 0 {
			p.mu.Unlock()
			return
		}
		task := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()

		task()
	}
}

// PostTask enqueues a task for some worker. It returns false only when the
// pool has already been closed; once a task is accepted it always runs to
// completion, there is no cancellation.
func (p *Pool) PostTask(task ports.Task) bool {
	if task == nil {
		return false
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false
	}
	p.queue = append(p.queue, task)
	p.mu.Unlock()
	p.cond.Signal()
	return true
}

// Close stops accepting tasks, drains the queue, and joins the workers.
// Idempotent.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.wg.Wait()
		return nil
	}
	p.closed = true
	p.mu.Unlock()
	p.cond.Broadcast()
	p.wg.Wait()
	return nil
}
