// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cairn/internal/adapters/cas"
	_ "go.trai.ch/cairn/internal/adapters/config"
	_ "go.trai.ch/cairn/internal/adapters/environment"
	_ "go.trai.ch/cairn/internal/adapters/fs"
	_ "go.trai.ch/cairn/internal/adapters/logger"
	_ "go.trai.ch/cairn/internal/adapters/scanner"
	_ "go.trai.ch/cairn/internal/adapters/shell"
	_ "go.trai.ch/cairn/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/cairn/internal/adapters/toolchain"
	// Register app and engine nodes.
	_ "go.trai.ch/cairn/internal/app"
	_ "go.trai.ch/cairn/internal/engine/runner"
	_ "go.trai.ch/cairn/internal/engine/scancache"
	_ "go.trai.ch/cairn/internal/engine/scheduler"
	_ "go.trai.ch/cairn/internal/tui"
)
