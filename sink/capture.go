package sink

import "sync"

// Entry is one line recorded by a Capture sink.
type Entry struct {
	Severity Severity
	Tag      string
	Message  string
}

// Capture is a sink that records every emitted line in memory. It is
// intended for tests that assert on the instrumentation output.
//
// Capture is safe for concurrent use.
type Capture struct {
	// Level is the minimum severity reported as enabled.
	Level Severity

	mu      sync.Mutex
	entries []Entry
}

// NewCapture creates a capture sink accepting the given severity and above.
func NewCapture(level Severity) *Capture {
	return &Capture{Level: level}
}

// Enabled reports whether the severity meets the configured level.
func (c *Capture) Enabled(s Severity) bool {
	return s >= c.Level
}

// Log records the line when its severity is enabled.
func (c *Capture) Log(s Severity, tag, msg string) {
	if !c.Enabled(s) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, Entry{Severity: s, Tag: tag, Message: msg})
}

// Entries returns a copy of everything recorded so far.
func (c *Capture) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// ByTag returns the recorded entries carrying the given tag.
func (c *Capture) ByTag(tag string) []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []Entry
	for _, e := range c.entries {
		if e.Tag == tag {
			out = append(out, e)
		}
	}
	return out
}

// Reset discards all recorded entries.
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}
