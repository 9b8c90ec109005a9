// Package telemetry provides recorders for generation-run progress.
package telemetry

import (
	"context"

	"go.trai.ch/loom/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new NoOp recorder.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &NoOpVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Write discards p and reports it written.
func (v *NoOpVertex) Write(p []byte) (n int, err error) {
	return len(p), nil
}

// Complete does nothing.
func (v *NoOpVertex) Complete(_ error) {}
