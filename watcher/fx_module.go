package watcher

import (
	"context"

	"go.uber.org/fx"
)

// FXModule defines the Fx module for the watcher package.
// This module integrates the periodic watcher into an Fx-based application
// by providing the watcher factory and registering its lifecycle hooks.
//
// The module provides:
// 1. *Watcher for direct use
// 2. Lifecycle management that starts ticking on application start and
// cancels the schedule on shutdown
//
// Usage:
//
//	app := fx.New(
//	    sink.FXModule,
//	    probe.FXModule,
//	    watcher.FXModule,
//	    fx.Provide(sink.FromEnv, probe.FromEnv, watcher.FromEnv),
//	    // other modules...
//	)
//
// Dependencies required by this module:
// - A watcher.Config instance must be available in the dependency injection container
// - A sink.Sink instance must be available in the dependency injection container
// - A probe.Probe instance must be available in the dependency injection container
var FXModule = fx.Module("watcher",
	fx.Provide(
		NewWatcher, // Provides *Watcher
	),
	fx.Invoke(RegisterWatcherLifecycle),
)

// RegisterWatcherLifecycle ties the tick schedule to the application
// lifecycle.
func RegisterWatcherLifecycle(lc fx.Lifecycle, w *Watcher) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			w.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			w.Stop()
			return nil
		},
	})
}
