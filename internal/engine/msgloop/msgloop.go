// Package msgloop implements the single-threaded cooperative event loop
// the scheduler posts its main-thread continuations onto.
package msgloop

import (
	"sync"

	"go.trai.ch/loom/internal/core/ports"
)

// Loop is a FIFO task loop. Tasks run strictly in posting order on the
// goroutine that calls Run, never concurrently with each other.
type Loop struct {
	mu    sync.Mutex
	cond  *sync.Cond
	queue []ports.Task
}

// New creates an empty loop.
func New() *Loop {
	l := &Loop{}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// Run executes posted tasks on the calling goroutine until a quit request
// posted by PostQuit is reached. Tasks posted after the quit request stay
// queued and are not executed.
func (l *Loop) Run() {
	for {
		l.mu.Lock()
		for len(l.queue) == 0 {
			l.cond.Wait()
		}
		task := l.queue[0]
		l.queue = l.queue[1:]
		l.mu.Unlock()

		// A nil entry is the quit marker.
		if task == nil {
			return
		}
		task()
	}
}

// PostTask schedules a task to run on the loop's goroutine, preserving
// post order. Callable from any goroutine. Nil tasks are ignored.
func (l *Loop) PostTask(task ports.Task) {
	if task == nil {
		return
	}
	l.post(task)
}

// PostQuit asks the loop to stop once it reaches this point in the queue.
// Multiple quit requests are harmless.
func (l *Loop) PostQuit() {
	l.post(nil)
}

func (l *Loop) post(task ports.Task) {
	l.mu.Lock()
	l.queue = append(l.queue, task)
	l.mu.Unlock()
	l.cond.Signal()
}
