package meter

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/meterkit/probe"
	"github.com/aalemi-dev/meterkit/session"
	"github.com/aalemi-dev/meterkit/sink"
)

// FXModule defines the Fx module for the meter package.
// This module integrates the meter factory into an Fx-based application.
//
// The module provides:
// 1. *Factory for minting meters throughout the application
//
// Usage:
//
//	app := fx.New(
//	    sink.FXModule,
//	    probe.FXModule,
//	    meter.FXModule,
//	    fx.Provide(sink.FromEnv, probe.FromEnv, meter.FromEnv),
//	    // other modules...
//	)
//
// Dependencies required by this module:
// - A meter.Config instance must be available in the dependency injection container
// - A sink.Sink instance must be available in the dependency injection container
// - A probe.Probe instance must be available in the dependency injection container
var FXModule = fx.Module("meter",
	fx.Provide(
		func(cfg Config, s sink.Sink, p probe.Probe) *Factory {
			return NewFactory(cfg, s, p, session.DefaultRegistry())
		},
	),
)
