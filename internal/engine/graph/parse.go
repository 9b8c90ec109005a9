// Package graph holds the build-graph target registry and the build
// description parser feeding it.
package graph

import (
	"go.trai.ch/loom/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// buildfile represents the structure of a build description file.
type buildfile struct {
	Targets []targetDTO `yaml:"targets"`
}

// targetDTO represents a single target declaration.
type targetDTO struct {
	Label             string   `yaml:"label"`
	Sources           []string `yaml:"sources"`
	Inputs            []string `yaml:"inputs"`
	Outputs           []string `yaml:"outputs"`
	Deps              []string `yaml:"deps"`
	RuntimeDepsOutput string   `yaml:"runtimeDepsOutput"`
}

// ParseBuildFile parses the contents of a build description file into
// targets. file is used only for error attribution.
func ParseBuildFile(data []byte, file domain.SourceFile) ([]*domain.Target, error) {
	var bf buildfile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrBuildFileParseFailed.Error()),
			"file", file.String(),
		)
	}

	targets := make([]*domain.Target, 0, len(bf.Targets))
	for _, dto := range bf.Targets {
		if dto.Label == "" {
			return nil, zerr.With(domain.ErrMissingTargetLabel, "file", file.String())
		}

		t := &domain.Target{
			Label:             dto.Label,
			Deps:              dto.Deps,
			RuntimeDepsOutput: domain.OutputFile(dto.RuntimeDepsOutput),
		}
		for _, s := range dto.Sources {
			t.Sources = append(t.Sources, domain.SourceFile(s))
		}
		for _, in := range dto.Inputs {
			t.Inputs = append(t.Inputs, domain.SourceFile(in))
		}
		for _, out := range dto.Outputs {
			t.Outputs = append(t.Outputs, domain.OutputFile(out))
		}
		targets = append(targets, t)
	}

	return targets, nil
}
