package probe

// NoOp is a probe that reports nothing. It serves tests and deployments
// where resource figures on instrumentation lines are unwanted.
type NoOp struct{}

// Memory returns a zero MemoryStatus.
func (NoOp) Memory() MemoryStatus { return MemoryStatus{} }

// Load returns zero.
func (NoOp) Load() float64 { return 0 }

// GC returns a zero GCStatus.
func (NoOp) GC() GCStatus { return GCStatus{} }

// Threads returns zero.
func (NoOp) Threads() int { return 0 }

// NewNoOp creates a probe that reports nothing.
func NewNoOp() Probe { return NoOp{} }
