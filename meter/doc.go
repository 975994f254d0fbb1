// Package meter tracks the lifecycle of application operations: creation,
// start, progress and one terminal outcome (ok, rejected or failed), with
// timestamps, iteration counts, caller-supplied context and resource
// snapshots attached along the way.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" design pattern:
//   - Factory struct: Binds a sink, a probe and an ordinal registry; mints meters
//   - Meter struct: The state machine controller for one operation
//   - Record struct: The measured data, with its wire codec
//   - FX module provides *Factory from the container's Sink, Probe and Config
//
// The state machine is
//
//	CREATED -> STARTED -> (PROGRESSING)* -> {OK | REJECTED | FAILED} -> CLOSED
//
// Misuse (double start, terminal before start, double terminal, non-forward
// iteration) never panics and never returns an error: it is diagnosed
// through the sink at error severity with the offending call site, and the
// method applies a documented recovery rule so the record always ends in a
// terminal state.
//
// # Nesting
//
// The active meter travels inside a context.Context: Start returns a
// derived context carrying the meter, and a meter started under that
// context records the enclosing operation as its parent. Meters themselves
// are confined to one goroutine; pass the context, not the meter.
//
// # Usage
//
//	m := factory.Meter("db").M("refresh accounts").Iterations(len(batch))
//	ctx = m.Start(ctx)
//	defer m.Close()
//	for _, row := range batch {
//		if err := refresh(ctx, row); err != nil {
//			m.Fail(err)
//			return err
//		}
//		m.Inc().Progress()
//	}
//	m.OK()
package meter
