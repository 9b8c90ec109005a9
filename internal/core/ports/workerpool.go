package ports

// WorkerPool runs tasks fully in parallel with no ordering guarantee among
// pool tasks or relative to main-loop tasks.
//
//go:generate go run go.uber.org/mock/mockgen -source=workerpool.go -destination=mocks/mock_workerpool.go -package=mocks
type WorkerPool interface {
	// PostTask attempts to run the task on some worker goroutine. It
	// returns false only on a catastrophic inability to schedule, such as
	// posting to a pool that has already been closed.
	PostTask(task Task) bool
}
