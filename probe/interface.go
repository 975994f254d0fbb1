package probe

import "time"

// MemoryStatus describes heap memory at one instant, in bytes.
type MemoryStatus struct {
	// Used is the heap memory currently holding live or not yet
	// collected allocations.
	Used uint64
	// Committed is the heap memory obtained from the operating system.
	Committed uint64
	// Max is the total memory available to the process, or zero when
	// unknown.
	Max uint64
}

// GCStatus describes cumulative garbage collection work since process
// start.
type GCStatus struct {
	// Count is the number of completed collection runs.
	Count uint64
	// TotalTime is the cumulative stop-the-world pause time.
	TotalTime time.Duration
}

// Probe supplies resource status on demand. Implementations must tolerate
// unavailable data sources by returning zero values and must be safe for
// concurrent use: both operation trackers and the periodic watcher call
// them from their own goroutines.
//
// This interface is implemented by *RuntimeProbe and NoOp.
type Probe interface {
	// Memory returns current heap usage.
	Memory() MemoryStatus

	// Load returns the recent system load average, or zero when the
	// platform does not expose one.
	Load() float64

	// GC returns cumulative garbage collection statistics.
	GC() GCStatus

	// Threads returns the number of live threads of execution
	// (goroutines).
	Threads() int
}
