// Package probe supplies process resource status on demand: heap memory,
// system load, garbage collection statistics and live thread (goroutine)
// counts, captured into immutable snapshots.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" design pattern:
//   - Probe interface: Defines the contract for resource introspection
//   - RuntimeProbe struct: Concrete implementation over the Go runtime and gopsutil
//   - Snapshot struct: Immutable capture of resource status at one instant
//   - FX module provides both *RuntimeProbe and the Probe interface
//
// A probe must tolerate unavailable data sources: every accessor returns
// zero values instead of failing, so instrumentation never destabilizes the
// host application because a platform API is missing.
//
// # Usage
//
//	p := probe.NewRuntimeProbe(probe.Config{
//		UseSystemMemory: true,
//		UseSystemLoad:   true,
//	})
//	snap := probe.Collect(p)
//	// snap.HeapUsed, snap.SystemLoad, ...
//
// Snapshots know how to render themselves onto the wire protocol and back;
// see Snapshot.WriteProperties and Snapshot.ReadProperty.
package probe
