package app

import (
	"sort"
	"strings"

	"go.trai.ch/loom/internal/core/domain"
	"go.trai.ch/loom/internal/engine/graph"
)

// renderPlan serializes the collected graph into the build plan format
// consumed by the downstream build executor. Targets are emitted sorted by
// label so the output is byte-stable across runs.
func renderPlan(g *graph.Graph) string {
	var sb strings.Builder
	sb.WriteString("# Generated by loom. Do not edit.\n")

	for _, t := range g.Targets() {
		sb.WriteString("\nstep " + t.Label + "\n")
		for _, s := range t.Sources {
			sb.WriteString("  source " + s.String() + "\n")
		}
		for _, in := range t.Inputs {
			sb.WriteString("  input " + in.String() + "\n")
		}
		for _, out := range t.Outputs {
			sb.WriteString("  output " + out.String() + "\n")
		}
		for _, dep := range t.Deps {
			sb.WriteString("  dep " + dep + "\n")
		}
		if t.WritesRuntimeDeps() {
			sb.WriteString("  runtime_deps_output " + t.RuntimeDepsOutput.String() + "\n")
		}
	}

	return sb.String()
}

// renderDepfile serializes the regeneration dependency list in Makefile
// depfile syntax: rerunning the generator depends on every build file that
// was read. Entries are sorted and deduplicated.
func renderDepfile(planRel string, deps []domain.SourceFile) string {
	seen := make(map[string]struct{}, len(deps))
	paths := make([]string, 0, len(deps))
	for _, dep := range deps {
		if _, ok := seen[dep.String()]; ok {
			continue
		}
		seen[dep.String()] = struct{}{}
		paths = append(paths, dep.String())
	}
	sort.Strings(paths)

	var sb strings.Builder
	sb.WriteString(planRel + ":")
	for _, p := range paths {
		sb.WriteString(" " + p)
	}
	sb.WriteByte('\n')
	return sb.String()
}
