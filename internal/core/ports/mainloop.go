// Package ports defines the core interfaces for the application.
package ports

// Task is an opaque, owned unit of work with no return value. Ownership
// transfers to whichever executor runs it; it is executed exactly once.
type Task func()

// MainLoop is a single-threaded cooperative event loop.
//
// Tasks posted to it execute strictly in posting order on the loop's own
// goroutine, never concurrently with each other.
//
//go:generate go run go.uber.org/mock/mockgen -source=mainloop.go -destination=mocks/mock_mainloop.go -package=mocks
type MainLoop interface {
	// Run executes posted tasks on the calling goroutine until PostQuit.
	Run()

	// PostTask schedules a task to run later on the loop's goroutine,
	// preserving post order. Callable from any goroutine.
	PostTask(task Task)

	// PostQuit asks the loop to stop after the tasks posted before it.
	PostQuit()
}
