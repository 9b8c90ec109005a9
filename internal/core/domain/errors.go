package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the loom.yaml file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the loom.yaml file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoBuildFiles is returned when the configuration lists no build files.
	ErrNoBuildFiles = zerr.New("no build files configured")

	// ErrBuildFileReadFailed is returned when a build description file cannot be read.
	ErrBuildFileReadFailed = zerr.New("failed to read build file")

	// ErrBuildFileParseFailed is returned when a build description file cannot be parsed.
	ErrBuildFileParseFailed = zerr.New("failed to parse build file")

	// ErrMissingTargetLabel is returned when a build file declares a target without a label.
	ErrMissingTargetLabel = zerr.New("target is missing a label")

	// ErrDuplicateTarget is returned when two targets share a label.
	ErrDuplicateTarget = zerr.New("duplicate target label")

	// ErrUnknownGeneratedInputs is returned when targets reference generated
	// files no build step produces.
	ErrUnknownGeneratedInputs = zerr.New("inputs have no matching build step")

	// ErrPlanWriteFailed is returned when the build plan cannot be persisted.
	ErrPlanWriteFailed = zerr.New("failed to write build plan")

	// ErrDepfileWriteFailed is returned when the regeneration depfile cannot be persisted.
	ErrDepfileWriteFailed = zerr.New("failed to write regeneration depfile")

	// ErrRuntimeDepsWriteFailed is returned when a runtime-deps output cannot be persisted.
	ErrRuntimeDepsWriteFailed = zerr.New("failed to write runtime deps file")

	// ErrGenerationFailed is returned when the generation run finished with a failure.
	ErrGenerationFailed = zerr.New("build graph generation failed")
)
