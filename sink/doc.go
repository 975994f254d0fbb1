// Package sink defines the logging sink contract through which all meterkit
// instrumentation is emitted, along with a production implementation built
// on Uber's Zap logger.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" design pattern:
//   - Sink interface: Defines the contract for severity-gated emission
//   - ZapSink struct: Concrete implementation backed by go.uber.org/zap
//   - NewZapSink constructor: Returns *ZapSink (concrete type)
//   - FX module provides both *ZapSink and the Sink interface
//
// # Severity Model
//
// Severities are totally ordered:
//
//	Trace < Debug < Info < Warn < Error
//
// Instrumentation code checks Enabled before building expensive payloads
// (snapshots, encoded lines) but never decides policy beyond that: the sink
// owns the level threshold and the destination.
//
// The Trace severity has no direct equivalent in Zap. ZapSink maps it to a
// level below zap's DebugLevel, so encoded machine-parsable lines can be
// switched on independently of human-readable debug output.
//
// # Direct Usage
//
//	s := sink.NewZapSink(sink.Config{
//		Level: sink.Debug,
//		Name:  "orders",
//	})
//	defer s.Sync()
//
//	if s.Enabled(sink.Info) {
//		s.Log(sink.Info, "", "operation finished")
//	}
//
// # Testing
//
// Capture records every emitted line in memory and NoOp discards
// everything; both implement Sink and are used throughout this repository's
// tests.
package sink
