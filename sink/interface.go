package sink

// Severity grades emitted lines. Values are totally ordered: a sink
// configured at a given severity accepts that severity and everything
// above it.
type Severity int8

const (
	// Trace carries encoded machine-parsable event lines.
	Trace Severity = iota - 1
	// Debug carries verbose human-readable lines, such as operation starts.
	Debug
	// Info carries regular human-readable lines: progress, success, watcher status.
	Info
	// Warn carries lines about degraded but successful outcomes, such as slow operations.
	Warn
	// Error carries failures, usage inconsistencies and internal faults.
	Error
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case Trace:
		return "trace"
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Sink accepts severity-tagged message lines from the instrumentation
// engine. Implementations must be safe for concurrent use and must not
// block beyond buffered writes; lifecycle methods of the engine call Log
// on the application's own goroutines.
//
// This interface is implemented by *ZapSink, NoOp and *Capture.
type Sink interface {
	// Enabled reports whether lines at the given severity would be
	// emitted. Callers use it to skip building expensive payloads.
	Enabled(s Severity) bool

	// Log emits one line. The tag classifies the line kind (for example
	// "START", "OK", "INCONSISTENT_START", "BUG") and may be empty;
	// policy beyond the severity threshold is the sink's business.
	Log(s Severity, tag, msg string)
}
