// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rig/internal/adapters/config"
	_ "go.trai.ch/rig/internal/adapters/console"
	_ "go.trai.ch/rig/internal/adapters/fs"
	_ "go.trai.ch/rig/internal/adapters/git"
	_ "go.trai.ch/rig/internal/adapters/linear"
	_ "go.trai.ch/rig/internal/adapters/logger"
	_ "go.trai.ch/rig/internal/adapters/shell"
	_ "go.trai.ch/rig/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/rig/internal/app"
)
