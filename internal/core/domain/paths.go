// Package domain holds the core value types for build-graph generation.
package domain

// SourceFile is a project-relative path to a file referenced by a build
// description. It has value equality and a total order, so it can be used
// as a map key and sorted for stable output.
type SourceFile string

// String returns the path as a plain string.
func (f SourceFile) String() string { return string(f) }

// OutputFile is a project-relative path naming a file some build step
// produces.
type OutputFile string

// String returns the path as a plain string.
func (f OutputFile) String() string { return string(f) }
