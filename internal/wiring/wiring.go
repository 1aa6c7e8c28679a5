// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rebind/internal/adapters/config"
	_ "go.trai.ch/rebind/internal/adapters/logger"
	_ "go.trai.ch/rebind/internal/adapters/manifest"
	_ "go.trai.ch/rebind/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/rebind/internal/app"
	_ "go.trai.ch/rebind/internal/engine/registry"
)
