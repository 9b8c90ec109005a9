package graph

import (
	"sort"
	"sync"

	"go.trai.ch/loom/internal/core/domain"
	"go.trai.ch/zerr"
)

// Graph is the registry of targets collected during a generation run.
// Evaluation tasks on many workers add to it concurrently; it owns the
// targets and outlives the scheduler that holds references into it.
type Graph struct {
	mu      sync.RWMutex
	targets map[string]*domain.Target
	order   []string
	outputs map[string]struct{}
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		targets: make(map[string]*domain.Target),
		outputs: make(map[string]struct{}),
	}
}

// Add registers a target. Duplicate labels are an error.
func (g *Graph) Add(t *domain.Target) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.targets[t.Label]; ok {
		return zerr.With(domain.ErrDuplicateTarget, "label", t.Label)
	}
	g.targets[t.Label] = t
	g.order = append(g.order, t.Label)
	for _, out := range t.Outputs {
		g.outputs[out.String()] = struct{}{}
	}
	return nil
}

// Get returns the target with the given label.
func (g *Graph) Get(label string) (*domain.Target, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	t, ok := g.targets[label]
	return t, ok
}

// Targets returns all targets sorted by label for stable output.
func (g *Graph) Targets() []*domain.Target {
	g.mu.RLock()
	defer g.mu.RUnlock()

	labels := make([]string, len(g.order))
	copy(labels, g.order)
	sort.Strings(labels)

	out := make([]*domain.Target, 0, len(labels))
	for _, label := range labels {
		out = append(out, g.targets[label])
	}
	return out
}

// Len returns the number of registered targets.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.targets)
}

// GeneratesFile reports whether some registered target declares file among
// its outputs.
func (g *Graph) GeneratesFile(file domain.SourceFile) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.outputs[file.String()]
	return ok
}

// RuntimeDepsOf returns the outputs of the target and of its transitive
// dependencies, sorted. Dependencies on unregistered labels are skipped;
// they surface elsewhere as unknown-input diagnostics.
func (g *Graph) RuntimeDepsOf(t *domain.Target) []domain.OutputFile {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := map[string]bool{t.Label: true}
	queue := []*domain.Target{t}
	var deps []domain.OutputFile

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		deps = append(deps, current.Outputs...)

		for _, label := range current.Deps {
			if seen[label] {
				continue
			}
			seen[label] = true
			if dep, ok := g.targets[label]; ok {
				queue = append(queue, dep)
			}
		}
	}

	sort.Slice(deps, func(i, j int) bool { return deps[i] < deps[j] })
	return deps
}
