// Package config provides the configuration loader for loom.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/loom/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file loom looks for.
const DefaultFilename = "loom.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// NewLoader creates a loader reading the default configuration file.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: DefaultFilename}
}

// Load reads the configuration from the given working directory.
func (l *FileConfigLoader) Load(cwd string) (*domain.Settings, error) {
	return Load(filepath.Join(cwd, l.Filename))
}

// loomfile represents the structure of the loom.yaml configuration file.
type loomfile struct {
	Version     string   `yaml:"version"`
	BuildDir    string   `yaml:"buildDir"`
	Parallelism int      `yaml:"parallelism"`
	BuildFiles  []string `yaml:"buildFiles"`
}

// Load reads a configuration file from the given path.
func Load(path string) (*domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var lf loomfile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if len(lf.BuildFiles) == 0 {
		return nil, zerr.With(domain.ErrNoBuildFiles, "path", path)
	}

	settings := &domain.Settings{
		BuildDir:    lf.BuildDir,
		Parallelism: lf.Parallelism,
		BuildFiles:  make([]domain.SourceFile, len(lf.BuildFiles)),
	}
	if settings.BuildDir == "" {
		settings.BuildDir = "out"
	}
	for i, f := range lf.BuildFiles {
		settings.BuildFiles[i] = domain.SourceFile(f)
	}

	return settings, nil
}
