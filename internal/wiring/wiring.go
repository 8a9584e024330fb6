// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/deparse/internal/adapters/cache"
	_ "go.trai.ch/deparse/internal/adapters/cas"
	_ "go.trai.ch/deparse/internal/adapters/config"
	_ "go.trai.ch/deparse/internal/adapters/fs"
	_ "go.trai.ch/deparse/internal/adapters/logger"
	_ "go.trai.ch/deparse/internal/adapters/manifest"
	_ "go.trai.ch/deparse/internal/adapters/output"
	_ "go.trai.ch/deparse/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/deparse/internal/adapters/yarnlock"
	// Register app nodes.
	_ "go.trai.ch/deparse/internal/app"
)
