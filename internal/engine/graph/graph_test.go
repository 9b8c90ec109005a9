package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/loom/internal/core/domain"
	"go.trai.ch/loom/internal/engine/graph"
)

func target(label string, outputs []string, deps ...string) *domain.Target {
	t := &domain.Target{Label: label, Deps: deps}
	for _, out := range outputs {
		t.Outputs = append(t.Outputs, domain.OutputFile(out))
	}
	return t
}

func TestGraph_AddAndGet(t *testing.T) {
	g := graph.New()

	tA := target("//app:a", []string{"out/a.o"})
	require.NoError(t, g.Add(tA))
	require.Equal(t, 1, g.Len())

	got, ok := g.Get("//app:a")
	require.True(t, ok)
	require.Same(t, tA, got)

	_, ok = g.Get("//app:missing")
	require.False(t, ok)
}

func TestGraph_DuplicateLabel(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.Add(target("//app:a", nil)))

	err := g.Add(target("//app:a", nil))
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrDuplicateTarget.Error())
}

func TestGraph_TargetsSortedByLabel(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.Add(target("//z:last", nil)))
	require.NoError(t, g.Add(target("//a:first", nil)))
	require.NoError(t, g.Add(target("//m:middle", nil)))

	var labels []string
	for _, tgt := range g.Targets() {
		labels = append(labels, tgt.Label)
	}
	require.Equal(t, []string{"//a:first", "//m:middle", "//z:last"}, labels)
}

func TestGraph_GeneratesFile(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.Add(target("//app:a", []string{"out/a.o", "out/a.h"})))

	require.True(t, g.GeneratesFile("out/a.o"))
	require.True(t, g.GeneratesFile("out/a.h"))
	require.False(t, g.GeneratesFile("out/b.o"))
}

func TestGraph_RuntimeDepsOf(t *testing.T) {
	g := graph.New()

	// Diamond: a -> b, a -> c, b -> d, c -> d. d's output must appear once.
	tA := target("//app:a", []string{"out/a.bin"}, "//lib:b", "//lib:c")
	require.NoError(t, g.Add(tA))
	require.NoError(t, g.Add(target("//lib:b", []string{"out/b.so"}, "//lib:d")))
	require.NoError(t, g.Add(target("//lib:c", []string{"out/c.so"}, "//lib:d")))
	require.NoError(t, g.Add(target("//lib:d", []string{"out/d.so"})))

	deps := g.RuntimeDepsOf(tA)
	require.Equal(t, []domain.OutputFile{
		"out/a.bin", "out/b.so", "out/c.so", "out/d.so",
	}, deps)
}

func TestGraph_RuntimeDepsOfSkipsUnknownDeps(t *testing.T) {
	g := graph.New()
	tA := target("//app:a", []string{"out/a.bin"}, "//lib:missing")
	require.NoError(t, g.Add(tA))

	require.Equal(t, []domain.OutputFile{"out/a.bin"}, g.RuntimeDepsOf(tA))
}

func TestGraph_RuntimeDepsOfHandlesCycles(t *testing.T) {
	g := graph.New()
	tA := target("//app:a", []string{"out/a.bin"}, "//app:b")
	require.NoError(t, g.Add(tA))
	require.NoError(t, g.Add(target("//app:b", []string{"out/b.so"}, "//app:a")))

	require.Equal(t, []domain.OutputFile{"out/a.bin", "out/b.so"}, g.RuntimeDepsOf(tA))
}
