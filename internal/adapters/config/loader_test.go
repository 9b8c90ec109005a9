package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/loom/internal/adapters/config"
	"go.trai.ch/loom/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, config.DefaultFilename), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
version: "1"
buildDir: build
parallelism: 8
buildFiles:
  - BUILD.yaml
  - app/BUILD.yaml
`)

	settings, err := config.NewLoader().Load(dir)
	require.NoError(t, err)
	require.Equal(t, "build", settings.BuildDir)
	require.Equal(t, 8, settings.Parallelism)
	require.Equal(t,
		[]domain.SourceFile{"BUILD.yaml", "app/BUILD.yaml"},
		settings.BuildFiles,
	)
}

func TestLoader_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
buildFiles:
  - BUILD.yaml
`)

	settings, err := config.NewLoader().Load(dir)
	require.NoError(t, err)
	require.Equal(t, "out", settings.BuildDir)
	require.Zero(t, settings.Parallelism)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := config.NewLoader().Load(t.TempDir())
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}

func TestLoader_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "buildFiles: [unclosed")

	_, err := config.NewLoader().Load(dir)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestLoader_NoBuildFiles(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `buildDir: out`)

	_, err := config.NewLoader().Load(dir)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrNoBuildFiles.Error())
}
