package sink

// NoOp is a sink that reports every severity as disabled and discards all
// lines. Useful as a default value and for benchmarks.
type NoOp struct{}

// Enabled always returns false.
func (NoOp) Enabled(Severity) bool { return false }

// Log does nothing.
func (NoOp) Log(Severity, string, string) {}

// NewNoOp creates a NoOp sink.
func NewNoOp() Sink {
	return NoOp{}
}
