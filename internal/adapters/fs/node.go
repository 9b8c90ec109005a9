package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/loom/internal/core/ports"
)

// WriterNodeID is the unique identifier for the atomic writer Graft node.
const WriterNodeID graft.ID = "adapter.fs.writer"

func init() {
	graft.Register(graft.Node[ports.AtomicWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.AtomicWriter, error) {
			return NewWriter(), nil
		},
	})
}
