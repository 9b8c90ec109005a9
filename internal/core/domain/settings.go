package domain

// Settings holds the generator configuration loaded from loom.yaml.
type Settings struct {
	// BuildDir is the directory, relative to the project root, that
	// generated files are written into.
	BuildDir string

	// Parallelism is the worker pool size. Zero means one worker per CPU.
	Parallelism int

	// BuildFiles are the build description files to evaluate, relative to
	// the project root.
	BuildFiles []SourceFile
}
