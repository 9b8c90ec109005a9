package domain

// Target is a build-graph node declared by a build description file.
//
// Targets are owned by the graph that collects them; the generation
// machinery only ever holds non-owning references. The graph outlives the
// whole generation run, so those references stay valid for its duration.
type Target struct {
	// Label uniquely identifies the target within the graph.
	Label string

	// Sources are checked-in files the target reads.
	Sources []SourceFile

	// Inputs are files the target reads that are expected to be produced
	// by some other build step rather than existing as source.
	Inputs []SourceFile

	// Outputs are the files the target's build step produces.
	Outputs []OutputFile

	// Deps are labels of targets this target depends on.
	Deps []string

	// RuntimeDepsOutput, when non-empty, is the file the generator must
	// write this target's transitive runtime dependency list to as a
	// deferred late-stage step.
	RuntimeDepsOutput OutputFile
}

// WritesRuntimeDeps reports whether the target requires the deferred
// runtime-deps output step.
func (t *Target) WritesRuntimeDeps() bool {
	return t.RuntimeDepsOutput != ""
}
