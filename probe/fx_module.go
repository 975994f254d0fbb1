package probe

import "go.uber.org/fx"

// FXModule defines the Fx module for the probe package.
// This module integrates the runtime probe into an Fx-based application.
//
// The module provides:
// 1. *RuntimeProbe (concrete type) for direct use
// 2. Probe interface for dependency injection
//
// Usage:
//
//	app := fx.New(
//	    probe.FXModule,
//	    fx.Provide(probe.FromEnv),
//	    // other modules...
//	)
//
// Dependencies required by this module:
// - A probe.Config instance must be available in the dependency injection container
var FXModule = fx.Module("probe",
	fx.Provide(
		NewRuntimeProbe, // Provides *RuntimeProbe
		// Also provide the Probe interface
		fx.Annotate(
			func(p *RuntimeProbe) Probe { return p },
			fx.As(new(Probe)),
		),
	),
)
