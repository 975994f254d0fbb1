// Package watcher periodically samples process resource status and emits
// it through the sink: one readable line at info severity and one encoded
// line at trace severity per tick, tagged with the process session token.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" design pattern:
//   - Watcher struct: One background goroutine on a delay/period schedule
//   - Status struct: One emitted sample, with its wire codec
//   - Collector struct: Prometheus bridge over the latest sample
//   - FX module ties Start/Stop to the application lifecycle
//
// Start is idempotent while running and Stop cancels without waiting for
// an in-flight tick; a stopped watcher can be started again. One
// process-wide watcher is the normal arrangement, but independent
// instances bound to arbitrary sinks are fine, which is how the tests run.
//
// # Usage
//
//	w := watcher.NewWatcher(watcher.FromEnv(), s, p)
//	w.Start()
//	defer w.Stop()
//
//	// optional Prometheus bridge
//	prometheus.MustRegister(watcher.NewCollector(w))
package watcher
