// Package build carries release metadata stamped at link time.
package build

// Version is the loom release version, overridden via -ldflags.
var Version = "dev"
