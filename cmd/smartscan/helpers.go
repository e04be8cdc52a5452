package main

import (
	"github.com/spf13/viper"

	"github.com/SanthoshArigela/smartscan/internal/engine"
)

// initEngine builds an engine from configuration, falling back to the
// long-standing default thresholds.
func initEngine() *engine.Engine {
	cfg := engine.DefaultConfig()

	viper.SetDefault("engine.acceptance_floor", cfg.AcceptanceFloor)
	viper.SetDefault("engine.confidence_floor", cfg.ConfidenceFloor)

	cfg.AcceptanceFloor = viper.GetInt("engine.acceptance_floor")
	cfg.ConfidenceFloor = viper.GetInt("engine.confidence_floor")

	return engine.New(cfg)
}
