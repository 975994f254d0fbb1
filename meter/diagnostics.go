package meter

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/aalemi-dev/meterkit/sink"
)

// Tags attached to emitted lines, one per transition kind plus the
// diagnostic channels.
const (
	tagStart    = "START"
	tagProgress = "PROGRESS"
	tagOK       = "OK"
	tagSlowOK   = "SLOW_OK"
	tagBad      = "REJECT"
	tagSlowBad  = "SLOW_REJECT"
	tagFail     = "FAIL"
	tagIllegal  = "ILLEGAL"
	tagBug      = "BUG"
	tagLeak     = "LEAK"
)

const pkgPrefix = "github.com/aalemi-dev/meterkit/meter."

// inconsistent reports a usage inconsistency at error severity with the
// offending call site. The caller then applies its documented recovery
// rule; inconsistencies never panic and never abort the transition.
func (m *Meter) inconsistent(op, detail string) {
	if !m.sink.Enabled(sink.Error) {
		return
	}
	m.sink.Log(sink.Error, tagIllegal,
		fmt.Sprintf("%s: %s on %s at %s", op, detail, m.rec.FullID(), callSite()))
}

// guard converts a panic inside a lifecycle method into an error-severity
// report. Instrumentation must never destabilize the host application, so
// internal faults are swallowed after being logged.
func (m *Meter) guard() {
	if r := recover(); r != nil {
		m.sink.Log(sink.Error, tagBug,
			fmt.Sprintf("internal fault on %s: %v", m.rec.FullID(), r))
	}
}

// callSite returns the file:line of the nearest caller outside this
// package.
func callSite() string {
	var pcs [8]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if f.Function != "" && !strings.HasPrefix(f.Function, pkgPrefix) {
			return f.File + ":" + strconv.Itoa(f.Line)
		}
		if !more {
			return "unknown"
		}
	}
}

// goid returns the current goroutine's numeric identity, parsed from the
// stack header. Used only to flag cross-goroutine misuse on diagnostics.
func goid() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := strings.TrimPrefix(string(buf[:n]), "goroutine ")
	if i := strings.IndexByte(s, ' '); i > 0 {
		if id, err := strconv.ParseInt(s[:i], 10, 64); err == nil {
			return id
		}
	}
	return 0
}

// reasonOf derives the rejection reason text from an arbitrary cause.
func reasonOf(cause any) string {
	switch c := cause.(type) {
	case nil:
		return ""
	case string:
		return c
	case error:
		return c.Error()
	case fmt.Stringer:
		return c.String()
	default:
		return fmt.Sprint(c)
	}
}
