package sink

import (
	"context"

	"go.uber.org/fx"
)

// FXModule defines the Fx module for the sink package.
// This module integrates the Zap-backed sink into an Fx-based application
// by providing the sink factory and registering its lifecycle hooks.
//
// The module provides:
// 1. *ZapSink (concrete type) for direct use
// 2. Sink interface for dependency injection
// 3. Lifecycle management that flushes buffered lines on shutdown
//
// Usage:
//
//	app := fx.New(
//	    sink.FXModule,
//	    fx.Provide(sink.FromEnv),
//	    // other modules...
//	)
//
// Dependencies required by this module:
// - A sink.Config instance must be available in the dependency injection container
var FXModule = fx.Module("sink",
	fx.Provide(
		NewZapSink, // Provides *ZapSink
		// Also provide the Sink interface
		fx.Annotate(
			func(z *ZapSink) Sink { return z },
			fx.As(new(Sink)),
		),
	),
	fx.Invoke(RegisterSinkLifecycle),
)

// RegisterSinkLifecycle flushes the underlying Zap logger when the
// application stops, so no buffered instrumentation lines are lost.
func RegisterSinkLifecycle(lc fx.Lifecycle, z *ZapSink) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return z.Sync()
		},
	})
}
