package app_test

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/loom/internal/adapters/config"
	"go.trai.ch/loom/internal/adapters/fs"
	"go.trai.ch/loom/internal/adapters/telemetry"
	"go.trai.ch/loom/internal/app"
	"go.trai.ch/loom/internal/core/domain"
	"go.trai.ch/loom/internal/core/ports/mocks"
	"go.trai.ch/loom/internal/ui/output"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T) (*app.App, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	a := app.New(config.NewLoader(), fs.NewWriter(), logger, telemetry.NewNoOp()).
		WithOutput(output.New(io.Discard))
	return a, logger
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

const testConfig = `
buildDir: out
parallelism: 4
buildFiles:
  - BUILD.yaml
  - lib/BUILD.yaml
`

const appBuildFile = `
targets:
  - label: //app:main
    sources:
      - app/main.c
    outputs:
      - out/main.bin
    deps:
      - //lib:util
    runtimeDepsOutput: out/main.runtime_deps
`

const libBuildFile = `
targets:
  - label: //lib:util
    sources:
      - lib/util.c
    outputs:
      - out/util.o
`

func TestApp_Gen(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.DefaultFilename, testConfig)
	writeFile(t, dir, "BUILD.yaml", appBuildFile)
	writeFile(t, dir, "lib/BUILD.yaml", libBuildFile)

	a, logger := newTestApp(t)
	logger.EXPECT().Info(gomock.Any()).Times(1)

	require.NoError(t, a.Gen(t.Context(), dir))

	plan := readFile(t, dir, "out/build.plan")
	require.Equal(t, `# Generated by loom. Do not edit.

step //app:main
  source app/main.c
  output out/main.bin
  dep //lib:util
  runtime_deps_output out/main.runtime_deps

step //lib:util
  source lib/util.c
  output out/util.o
`, plan)

	depfile := readFile(t, dir, "out/build.plan.d")
	require.Equal(t, "out/build.plan: BUILD.yaml lib/BUILD.yaml\n", depfile)

	runtimeDeps := readFile(t, dir, "out/main.runtime_deps")
	require.Equal(t, "out/main.bin\nout/util.o\n", runtimeDeps)
}

func TestApp_Gen_UnknownGeneratedInput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.DefaultFilename, `
buildFiles:
  - BUILD.yaml
`)
	writeFile(t, dir, "BUILD.yaml", `
targets:
  - label: //app:main
    sources:
      - app/main.c
    inputs:
      - gen/missing.h
    outputs:
      - out/main.bin
`)

	a, _ := newTestApp(t)

	err := a.Gen(t.Context(), dir)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrUnknownGeneratedInputs.Error())
}

// TestApp_Gen_InputGeneratedByTarget verifies an input produced by some
// build step is accounted for.
func TestApp_Gen_InputGeneratedByTarget(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.DefaultFilename, testConfig)
	writeFile(t, dir, "BUILD.yaml", `
targets:
  - label: //app:main
    sources:
      - app/main.c
    inputs:
      - out/util.o
    outputs:
      - out/main.bin
`)
	writeFile(t, dir, "lib/BUILD.yaml", libBuildFile)

	a, logger := newTestApp(t)
	logger.EXPECT().Info(gomock.Any()).Times(1)

	require.NoError(t, a.Gen(t.Context(), dir))
}

// TestApp_Gen_InputExoneratedByRuntimeDeps verifies an input matching a
// runtime-deps output the generator wrote itself does not count as unknown.
func TestApp_Gen_InputExoneratedByRuntimeDeps(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.DefaultFilename, testConfig)
	writeFile(t, dir, "BUILD.yaml", appBuildFile)
	writeFile(t, dir, "lib/BUILD.yaml", `
targets:
  - label: //lib:util
    sources:
      - lib/util.c
    inputs:
      - out/main.runtime_deps
    outputs:
      - out/util.o
`)

	a, logger := newTestApp(t)
	logger.EXPECT().Info(gomock.Any()).Times(1)

	require.NoError(t, a.Gen(t.Context(), dir))
}

func TestApp_Gen_MissingConfig(t *testing.T) {
	a, _ := newTestApp(t)

	err := a.Gen(t.Context(), t.TempDir())
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}

func TestApp_Gen_MissingBuildFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.DefaultFilename, `
buildFiles:
  - BUILD.yaml
`)

	a, _ := newTestApp(t)

	err := a.Gen(t.Context(), dir)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrGenerationFailed.Error())
}

func TestApp_Gen_ParseFailureFailsRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.DefaultFilename, `
buildFiles:
  - BUILD.yaml
`)
	writeFile(t, dir, "BUILD.yaml", "targets: [unclosed")

	a, _ := newTestApp(t)

	err := a.Gen(t.Context(), dir)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrGenerationFailed.Error())
}

// TestApp_Gen_FailureAmongManyFiles verifies a single bad file fails the
// run no matter how the evaluation tasks interleave with the scheduling
// loop: quick early files finishing first must not end the run early.
func TestApp_Gen_FailureAmongManyFiles(t *testing.T) {
	dir := t.TempDir()

	var sb strings.Builder
	sb.WriteString("buildFiles:\n")
	for i := range 8 {
		name := fmt.Sprintf("pkg%d/BUILD.yaml", i)
		sb.WriteString("  - " + name + "\n")
		writeFile(t, dir, name, fmt.Sprintf(`
targets:
  - label: //pkg%d:lib
    sources:
      - pkg%d/lib.c
    outputs:
      - out/pkg%d.o
`, i, i, i))
	}
	sb.WriteString("  - broken/BUILD.yaml\n")
	writeFile(t, dir, "broken/BUILD.yaml", "targets: [unclosed")
	writeFile(t, dir, config.DefaultFilename, sb.String())

	a, _ := newTestApp(t)

	err := a.Gen(t.Context(), dir)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrGenerationFailed.Error())
}

func TestApp_Gen_DuplicateTargetAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.DefaultFilename, testConfig)
	writeFile(t, dir, "BUILD.yaml", libBuildFile)
	writeFile(t, dir, "lib/BUILD.yaml", libBuildFile)

	a, _ := newTestApp(t)

	err := a.Gen(t.Context(), dir)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrGenerationFailed.Error())
}

func TestApp_Gen_VerboseLogsLoadedFiles(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	dir := t.TempDir()
	writeFile(t, dir, config.DefaultFilename, testConfig)
	writeFile(t, dir, "BUILD.yaml", appBuildFile)
	writeFile(t, dir, "lib/BUILD.yaml", libBuildFile)

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).Times(1)

	var buf bytes.Buffer
	a := app.New(config.NewLoader(), fs.NewWriter(), logger, telemetry.NewNoOp()).
		WithOutput(output.New(&buf)).
		WithVerbose(true)

	require.NoError(t, a.Gen(t.Context(), dir))
	require.Contains(t, buf.String(), "loaded BUILD.yaml")
	require.Contains(t, buf.String(), "loaded lib/BUILD.yaml")
}

// TestApp_Gen_SecondRunRewritesNothing verifies regeneration over an
// unchanged project leaves identical output files in place.
func TestApp_Gen_SecondRunRewritesNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.DefaultFilename, testConfig)
	writeFile(t, dir, "BUILD.yaml", appBuildFile)
	writeFile(t, dir, "lib/BUILD.yaml", libBuildFile)

	a, logger := newTestApp(t)
	logger.EXPECT().Info(gomock.Any()).Times(2)

	require.NoError(t, a.Gen(t.Context(), dir))
	before, err := os.Stat(filepath.Join(dir, "out", "build.plan"))
	require.NoError(t, err)

	require.NoError(t, a.Gen(t.Context(), dir))
	after, err := os.Stat(filepath.Join(dir, "out", "build.plan"))
	require.NoError(t, err)
	require.Equal(t, before.ModTime(), after.ModTime())
}
