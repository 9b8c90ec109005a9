// Package app implements the application layer for loom: it wires the
// main loop, worker pool, and scheduler together for one generation run
// and harvests the run's results.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/loom/internal/core/domain"
	"go.trai.ch/loom/internal/core/ports"
	"go.trai.ch/loom/internal/engine/graph"
	"go.trai.ch/loom/internal/engine/msgloop"
	"go.trai.ch/loom/internal/engine/pool"
	"go.trai.ch/loom/internal/engine/scheduler"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// PlanFilename is the build plan file written into the build directory.
const PlanFilename = "build.plan"

// App orchestrates build-graph generation.
type App struct {
	loader    ports.ConfigLoader
	writer    ports.AtomicWriter
	logger    ports.Logger
	telemetry ports.Telemetry

	out     *termenv.Output
	verbose bool
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	writer ports.AtomicWriter,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		loader:    loader,
		writer:    writer,
		logger:    log,
		telemetry: telemetry,
	}
}

// WithOutput redirects the scheduler's main-thread output. This is
// primarily used for testing.
func (a *App) WithOutput(out *termenv.Output) *App {
	a.out = out
	return a
}

// WithVerbose enables per-build-file progress logging.
func (a *App) WithVerbose(verbose bool) *App {
	a.verbose = verbose
	return a
}

// Gen runs a full build-graph generation in dir: it evaluates every
// configured build description file on the worker pool, waits for the run
// verdict, writes the deferred runtime-deps outputs and the build plan,
// and finally checks that every generated input is accounted for.
func (a *App) Gen(ctx context.Context, dir string) error {
	settings, err := a.loader.Load(dir)
	if err != nil {
		return err
	}

	loop := msgloop.New()
	workers := pool.New(settings.Parallelism)
	defer func() { _ = workers.Close() }()

	sched := scheduler.New(loop, workers, a.out)
	defer func() { _ = sched.Close() }()

	g := graph.New()

	// Hold one work-count unit across the fan-out: without it, an early
	// file finishing before the next ScheduleWork call would drop the
	// count to zero and end the run with files still unscheduled.
	sched.IncrementWorkCount()
	for _, file := range settings.BuildFiles {
		a.scheduleBuildFile(ctx, sched, g, dir, file)
	}
	sched.DecrementWorkCount()

	if ok := sched.Run(); !ok {
		if err := sched.Err(); err != nil {
			return zerr.Wrap(err, domain.ErrGenerationFailed.Error())
		}
		return domain.ErrGenerationFailed
	}

	if err := a.writeRuntimeDepsFiles(ctx, sched, g, dir); err != nil {
		return err
	}
	if err := a.writePlan(sched, g, dir, settings); err != nil {
		return err
	}
	if err := a.checkGeneratedInputs(sched, g); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("generated %d targets from %d build files",
		g.Len(), len(settings.BuildFiles)))
	return nil
}

// scheduleBuildFile fans the evaluation of one build description file out
// to the worker pool. Evaluation errors are reported to the scheduler,
// which latches the first one and shuts the run down.
func (a *App) scheduleBuildFile(
	ctx context.Context,
	sched *scheduler.Scheduler,
	g *graph.Graph,
	dir string,
	file domain.SourceFile,
) {
	sched.ScheduleWork(func() {
		_, vertex := a.telemetry.Record(ctx, "load "+file.String())
		err := a.evalBuildFile(sched, g, dir, file)
		vertex.Complete(err)

		if err != nil {
			sched.FailWithError(err)
			return
		}
		if a.verbose {
			sched.Log("loaded", file.String())
		}
	})
}

func (a *App) evalBuildFile(
	sched *scheduler.Scheduler,
	g *graph.Graph,
	dir string,
	file domain.SourceFile,
) error {
	// The build file itself is a regeneration dependency, whether or not
	// it parses.
	sched.AddGenDependency(file)

	data, err := os.ReadFile(filepath.Join(dir, file.String())) //nolint:gosec // paths come from the user's config
	if err != nil {
		return zerr.With(
			zerr.Wrap(err, domain.ErrBuildFileReadFailed.Error()),
			"file", file.String(),
		)
	}

	targets, err := graph.ParseBuildFile(data, file)
	if err != nil {
		return err
	}

	for _, t := range targets {
		if err := g.Add(t); err != nil {
			return err
		}
		if t.WritesRuntimeDeps() {
			sched.AddWriteRuntimeDepsTarget(t)
		}
	}
	return nil
}

// writeRuntimeDepsFiles performs the deferred late-stage step for every
// registered runtime-deps target. Each written file is recorded with the
// scheduler so it exonerates matching unknown generated inputs.
func (a *App) writeRuntimeDepsFiles(
	ctx context.Context,
	sched *scheduler.Scheduler,
	g *graph.Graph,
	dir string,
) error {
	targets := sched.GetWriteRuntimeDepsTargets()
	if len(targets) == 0 {
		return nil
	}

	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())

	for _, t := range targets {
		eg.Go(func() error {
			var sb strings.Builder
			for _, dep := range g.RuntimeDepsOf(t) {
				sb.WriteString(dep.String())
				sb.WriteByte('\n')
			}

			path := filepath.Join(dir, t.RuntimeDepsOutput.String())
			if _, err := a.writer.WriteFileIfChanged(path, []byte(sb.String())); err != nil {
				return zerr.With(
					zerr.Wrap(err, domain.ErrRuntimeDepsWriteFailed.Error()),
					"file", t.RuntimeDepsOutput.String(),
				)
			}

			sched.AddWrittenFile(domain.SourceFile(t.RuntimeDepsOutput))
			return nil
		})
	}

	return eg.Wait()
}

// writePlan persists the build plan and its regeneration depfile.
func (a *App) writePlan(
	sched *scheduler.Scheduler,
	g *graph.Graph,
	dir string,
	settings *domain.Settings,
) error {
	planRel := filepath.Join(settings.BuildDir, PlanFilename)
	planPath := filepath.Join(dir, planRel)

	if _, err := a.writer.WriteFileIfChanged(planPath, []byte(renderPlan(g))); err != nil {
		return zerr.Wrap(err, domain.ErrPlanWriteFailed.Error())
	}
	sched.AddWrittenFile(domain.SourceFile(planRel))

	depfile := renderDepfile(planRel, sched.GetGenDependencies())
	if _, err := a.writer.WriteFileIfChanged(planPath+".d", []byte(depfile)); err != nil {
		return zerr.Wrap(err, domain.ErrDepfileWriteFailed.Error())
	}
	return nil
}

// checkGeneratedInputs verifies that every input expected to be generated
// is produced by some build step or was written by the generator itself.
func (a *App) checkGeneratedInputs(sched *scheduler.Scheduler, g *graph.Graph) error {
	for _, t := range g.Targets() {
		for _, in := range t.Inputs {
			if g.GeneratesFile(in) {
				continue
			}
			if sched.IsFileGeneratedByWriteRuntimeDeps(domain.OutputFile(in)) {
				continue
			}
			sched.AddUnknownGeneratedInput(t, in)
		}
	}

	unknown := sched.GetUnknownGeneratedInputs()
	if len(unknown) == 0 {
		return nil
	}

	files := make([]string, 0, len(unknown))
	for f := range unknown {
		files = append(files, f.String())
	}
	sort.Strings(files)

	details := make([]string, 0, len(files))
	for _, f := range files {
		labels := make([]string, 0, len(unknown[domain.SourceFile(f)]))
		for _, t := range unknown[domain.SourceFile(f)] {
			labels = append(labels, t.Label)
		}
		details = append(details, f+" referenced by "+strings.Join(labels, ", "))
	}

	return zerr.With(domain.ErrUnknownGeneratedInputs, "inputs", strings.Join(details, "; "))
}
