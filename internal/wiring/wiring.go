// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/illBeRoy/advent-2022/internal/adapters/cache"
	_ "github.com/illBeRoy/advent-2022/internal/adapters/config"
	_ "github.com/illBeRoy/advent-2022/internal/adapters/fs"
	_ "github.com/illBeRoy/advent-2022/internal/adapters/logger"
	// Register app, engine and solver nodes.
	_ "github.com/illBeRoy/advent-2022/internal/app"
	_ "github.com/illBeRoy/advent-2022/internal/days"
	_ "github.com/illBeRoy/advent-2022/internal/engine/runner"
)
