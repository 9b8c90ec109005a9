package app

import "go.trai.ch/loom/internal/core/ports"

// Components bundles the resolved application objects the CLI needs.
type Components struct {
	App    *App
	Logger ports.Logger
}
