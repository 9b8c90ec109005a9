// Package scheduler implements the concurrency core of build-graph
// generation: it dispatches work to the worker pool, tracks outstanding
// work so it knows exactly when generation has finished, latches the first
// fatal error, and accumulates cross-cutting metadata produced concurrently
// by many workers.
package scheduler

import (
	"fmt"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/loom/internal/core/domain"
	"go.trai.ch/loom/internal/core/ports"
	"go.trai.ch/loom/internal/ui/output"
	"go.trai.ch/loom/internal/ui/style"
)

// unknownInput associates a referenced-but-unaccounted-for generated file
// with the target that referenced it. Multiple targets may reference the
// same file; every association is retained.
type unknownInput struct {
	file   domain.SourceFile
	target *domain.Target
}

// Scheduler coordinates a generation run. One instance exists per run and
// is passed explicitly to every worker task that must report back to it.
//
// It moves through three states: running (accepts work, errors, metadata),
// failed (first FailWithError; still accepts metadata and completions but
// ignores further errors), and shut down (after Run's loop exits; error
// reports are ignored, metadata accessors remain valid for harvesting).
type Scheduler struct {
	loop ports.MainLoop
	pool ports.WorkerPool
	out  *termenv.Output

	// workCount tracks total outstanding work, including main-thread
	// continuations; its zero transition ends the run. poolWorkCount
	// tracks pool tasks only; its zero transition wakes WaitForPoolTasks.
	// They are never merged: shutdown must be able to wait for pool-only
	// completion even while main-thread continuations are still pending.
	workCount     WorkCounter
	poolWorkCount WorkCounter

	poolMu   sync.Mutex
	poolCond *sync.Cond

	mu             sync.Mutex
	failed         bool
	shutdown       bool
	suppressStdout bool
	err            error

	genDeps            []domain.SourceFile
	writtenFiles       []domain.SourceFile
	unknownInputs      []unknownInput
	runtimeDepsTargets []*domain.Target
}

// New creates a Scheduler driving the given loop and pool. Output defaults
// to stdout when out is nil.
func New(loop ports.MainLoop, pool ports.WorkerPool, out *termenv.Output) *Scheduler {
	if out == nil {
		out = output.New(os.Stdout)
	}
	s := &Scheduler{
		loop: loop,
		pool: pool,
		out:  out,
	}
	s.poolCond = sync.NewCond(&s.poolMu)
	return s
}

// Run executes the main loop until generation completes or fails, then
// returns whether the run succeeded. It blocks the calling goroutine for
// the whole run.
func (s *Scheduler) Run() bool {
	s.loop.Run()

	s.mu.Lock()
	failed := s.failed
	s.shutdown = true
	s.mu.Unlock()

	// Not while holding mu: workers may need it to report metadata, and
	// blocking them here would deadlock.
	s.WaitForPoolTasks()

	return !failed
}

// ScheduleWork fans a task out to the worker pool. The task runs on an
// arbitrary worker goroutine with no ordering guarantee relative to other
// scheduled work.
//
// A pool that cannot accept the task is a fatal configuration error:
// outstanding-work accounting would be permanently wrong, so this panics
// rather than returning.
func (s *Scheduler) ScheduleWork(task ports.Task) {
	s.workCount.Increment()
	s.poolWorkCount.Increment()

	posted := s.pool.PostTask(func() {
		task()
		s.decrementWorkCount()
		if s.poolWorkCount.Decrement() {
			s.poolMu.Lock()
			s.poolCond.Broadcast()
			s.poolMu.Unlock()
		}
	})
	if !posted {
		panic("scheduler: worker pool rejected task, work accounting is lost")
	}
}

// IncrementWorkCount registers a unit of outstanding work that will
// complete outside the pool, such as a main-thread continuation.
func (s *Scheduler) IncrementWorkCount() {
	s.workCount.Increment()
}

// DecrementWorkCount retires a unit registered with IncrementWorkCount.
func (s *Scheduler) DecrementWorkCount() {
	s.decrementWorkCount()
}

func (s *Scheduler) decrementWorkCount() {
	if s.workCount.Decrement() {
		s.loop.PostTask(s.onComplete)
	}
}

// onComplete runs on the main thread, exactly when the total work count
// transitions to zero.
func (s *Scheduler) onComplete() {
	s.loop.PostQuit()
}

// FailWithError latches the first fatal error and converts it into an
// orderly shutdown. Once a failure is latched or shutdown has begun, later
// reports are silently ignored.
func (s *Scheduler) FailWithError(err error) {
	s.mu.Lock()
	if s.failed || s.shutdown {
		s.mu.Unlock()
		return
	}
	s.failed = true
	s.err = err
	s.mu.Unlock()

	s.loop.PostTask(func() { s.failWithErrorOnMainThread(err) })
}

func (s *Scheduler) failWithErrorOnMainThread(err error) {
	s.mu.Lock()
	suppress := s.suppressStdout
	s.mu.Unlock()

	if !suppress {
		// zerr prints the full report with metadata under %+v.
		_, _ = fmt.Fprintf(s.out, "%+v\n", err)
	}
	s.loop.PostQuit()
}

// IsFailed reports whether a fatal error has been latched.
func (s *Scheduler) IsFailed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failed
}

// Err returns the latched first error, or nil if the run has not failed.
func (s *Scheduler) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Log prints a verb and message from the main thread. Lines from
// concurrent workers are serialized whole through the loop, never torn.
func (s *Scheduler) Log(verb, msg string) {
	s.loop.PostTask(func() { s.logOnMainThread(verb, msg) })
}

func (s *Scheduler) logOnMainThread(verb, msg string) {
	styled := s.out.String(verb).Foreground(termenv.RGBColor(string(style.Yellow)))
	_, _ = fmt.Fprintln(s.out, styled.String()+" "+msg)
}

// AddGenDependency records a file read while evaluating a build
// description, needed later to emit the regeneration dependency list.
func (s *Scheduler) AddGenDependency(file domain.SourceFile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.genDeps = append(s.genDeps, file)
}

// GetGenDependencies returns the recorded generation-time dependencies.
func (s *Scheduler) GetGenDependencies() []domain.SourceFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.SourceFile, len(s.genDeps))
	copy(out, s.genDeps)
	return out
}

// AddWrittenFile records a file the generator itself wrote as a side
// effect. Written files exonerate matching unknown generated inputs.
func (s *Scheduler) AddWrittenFile(file domain.SourceFile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writtenFiles = append(s.writtenFiles, file)
}

// AddUnknownGeneratedInput records that target references file as an input
// that is neither declared source nor known to be generated by any target.
func (s *Scheduler) AddUnknownGeneratedInput(target *domain.Target, file domain.SourceFile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unknownInputs = append(s.unknownInputs, unknownInput{file: file, target: target})
}

// AddWriteRuntimeDepsTarget registers a target requiring the deferred
// runtime-deps output step. The Scheduler holds a non-owning reference;
// the build graph outlives the run.
func (s *Scheduler) AddWriteRuntimeDepsTarget(target *domain.Target) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runtimeDepsTargets = append(s.runtimeDepsTargets, target)
}

// GetWriteRuntimeDepsTargets returns the registered runtime-deps targets
// in registration order.
func (s *Scheduler) GetWriteRuntimeDepsTargets() []*domain.Target {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Target, len(s.runtimeDepsTargets))
	copy(out, s.runtimeDepsTargets)
	return out
}

// IsFileGeneratedByWriteRuntimeDeps reports whether file is the designated
// runtime-deps output of some registered target.
func (s *Scheduler) IsFileGeneratedByWriteRuntimeDeps(file domain.OutputFile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	// The target list is expected to be small, so a linear scan is fine.
	for _, target := range s.runtimeDepsTargets {
		if file == target.RuntimeDepsOutput {
			return true
		}
	}
	return false
}

// GetUnknownGeneratedInputs returns the recorded associations from
// unrecognized generated files to the targets referencing them, minus any
// file that also appears in the written-files list. Files the generator
// wrote itself are valid build-step inputs and are filtered out here, not
// stored filtered.
func (s *Scheduler) GetUnknownGeneratedInputs() map[domain.SourceFile][]*domain.Target {
	s.mu.Lock()
	defer s.mu.Unlock()

	written := make(map[domain.SourceFile]struct{}, len(s.writtenFiles))
	for _, file := range s.writtenFiles {
		written[file] = struct{}{}
	}

	filtered := make(map[domain.SourceFile][]*domain.Target)
	for _, in := range s.unknownInputs {
		if _, ok := written[in.file]; ok {
			continue
		}
		filtered[in.file] = append(filtered[in.file], in.target)
	}
	return filtered
}

// ClearUnknownGeneratedInputsAndWrittenFiles resets both collections so
// the caller can rerun the check after re-evaluating.
func (s *Scheduler) ClearUnknownGeneratedInputsAndWrittenFiles() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unknownInputs = nil
	s.writtenFiles = nil
}

// SuppressStdoutForTesting controls whether failWithErrorOnMainThread
// prints the error.
func (s *Scheduler) SuppressStdoutForTesting(suppress bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suppressStdout = suppress
}

// WaitForPoolTasks blocks until every task dispatched to the pool has
// finished. Must not be called with mu held.
func (s *Scheduler) WaitForPoolTasks() {
	s.poolMu.Lock()
	for !s.poolWorkCount.IsZero() {
		s.poolCond.Wait()
	}
	s.poolMu.Unlock()
}

// Close drains outstanding pool tasks before the Scheduler is released.
// Pool tasks capture the Scheduler, so it must not be torn down while any
// are still in flight.
func (s *Scheduler) Close() error {
	s.WaitForPoolTasks()
	return nil
}
