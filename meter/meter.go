package meter

import (
	"context"
	"fmt"
	"time"

	"github.com/aalemi-dev/meterkit/probe"
	"github.com/aalemi-dev/meterkit/sink"
	"github.com/aalemi-dev/meterkit/wire"
)

// Meter drives one operation through its lifecycle and emits readable and
// encoded lines at each transition. Obtain meters from a Factory.
//
// A meter is confined to one goroutine. The context returned by Start is
// what crosses API boundaries; the meter itself stays with its creator.
type Meter struct {
	factory *Factory
	sink    sink.Sink
	probe   probe.Probe
	cfg     Config

	rec Record

	lastProgressAt   int64
	lastProgressIter int64

	leak *leakState
}

// Record returns a copy of the meter's current measured data.
func (m *Meter) Record() Record {
	return m.rec
}

// M sets the operation description.
func (m *Meter) M(description string) *Meter {
	defer m.guard()
	if m.configurable("describe") {
		m.rec.Description = description
	}
	return m
}

// Mf sets the operation description from a format string.
func (m *Meter) Mf(format string, args ...any) *Meter {
	defer m.guard()
	if m.configurable("describe") {
		m.rec.Description = fmt.Sprintf(format, args...)
	}
	return m
}

// Limit sets the slowness threshold: a successful operation that ran
// longer is reported at warn severity instead of info.
func (m *Meter) Limit(d time.Duration) *Meter {
	defer m.guard()
	if d <= 0 {
		m.inconsistent("limit", "time limit must be positive")
		return m
	}
	if m.configurable("limit") {
		m.rec.TimeLimit = d
	}
	return m
}

// Iterations declares how many iterations the operation expects, for
// progress reporting.
func (m *Meter) Iterations(n int64) *Meter {
	defer m.guard()
	if n <= 0 {
		m.inconsistent("iterations", "expected iterations must be positive")
		return m
	}
	if m.configurable("iterations") {
		m.rec.ExpectedIterations = n
	}
	return m
}

// Ctx adds a marker context key with no value.
func (m *Meter) Ctx(key string) *Meter {
	defer m.guard()
	if m.configurable("context") {
		m.ctxPut(key, nil)
	}
	return m
}

// CtxStr adds a string context entry.
func (m *Meter) CtxStr(key, value string) *Meter {
	defer m.guard()
	if m.configurable("context") {
		m.ctxPut(key, &value)
	}
	return m
}

// CtxInt adds an integer context entry.
func (m *Meter) CtxInt(key string, value int64) *Meter {
	return m.CtxStr(key, fmt.Sprintf("%d", value))
}

// CtxBool adds a boolean context entry.
func (m *Meter) CtxBool(key string, value bool) *Meter {
	return m.CtxStr(key, fmt.Sprintf("%t", value))
}

// CtxFloat adds a float context entry.
func (m *Meter) CtxFloat(key string, value float64) *Meter {
	return m.CtxStr(key, fmt.Sprintf("%g", value))
}

// Unctx removes a context entry.
func (m *Meter) Unctx(key string) *Meter {
	defer m.guard()
	if m.configurable("context") {
		delete(m.rec.Context, key)
	}
	return m
}

// Start marks the operation as running and returns a context carrying this
// meter, so operations started under it record this one as their parent.
// When the given context holds an active meter, it becomes this one's
// parent; when it holds a sampled OpenTelemetry span, the trace and span
// ids are merged into the record context.
//
// A second Start is diagnosed and ignored: the original start time is
// kept and execution continues.
func (m *Meter) Start(ctx context.Context) context.Context {
	defer m.guard()
	if ctx == nil {
		ctx = context.Background()
	}
	if m.rec.StartedAt != 0 {
		m.inconsistent("start", "meter already started")
		return NewContext(ctx, m)
	}
	if p := FromContext(ctx); p != nil && p != m {
		m.rec.Parent = p.rec.FullID()
	}
	if traceID, spanID := spanContext(ctx); traceID != "" {
		m.ctxPut("trace_id", &traceID)
		m.ctxPut("span_id", &spanID)
	}
	m.rec.StartedAt = now()
	m.rec.StartGoroutine = goid()
	m.lastProgressAt = m.rec.StartedAt
	m.emit(sink.Debug, tagStart, "STARTED")
	return NewContext(ctx, m)
}

// Inc advances the iteration count by one.
func (m *Meter) Inc() *Meter {
	return m.IncBy(1)
}

// IncBy advances the iteration count by n, which must be positive.
func (m *Meter) IncBy(n int64) *Meter {
	defer m.guard()
	if n <= 0 {
		m.inconsistent("incBy", "increment must be positive")
		return m
	}
	if m.rec.StoppedAt != 0 {
		m.inconsistent("incBy", "meter already stopped")
		return m
	}
	m.rec.Iteration += n
	return m
}

// IncTo sets the iteration count to n, which must be positive. A value not
// ahead of the current count is diagnosed as a non-forward iteration and
// applied anyway, so the record reflects the caller's last word.
func (m *Meter) IncTo(n int64) *Meter {
	defer m.guard()
	if n <= 0 {
		m.inconsistent("incTo", "iteration must be positive")
		return m
	}
	if m.rec.StoppedAt != 0 {
		m.inconsistent("incTo", "meter already stopped")
		return m
	}
	if n <= m.rec.Iteration {
		m.inconsistent("incTo", fmt.Sprintf("non-forward iteration %d, current %d", n, m.rec.Iteration))
	}
	m.rec.Iteration = n
	return m
}

// Progress emits a status line for a long-running operation. Emissions are
// throttled: nothing is logged unless the iteration advanced since the
// last emission and the configured progress period elapsed, so calling
// Progress on every loop iteration is safe.
func (m *Meter) Progress() *Meter {
	defer m.guard()
	if m.rec.StartedAt == 0 {
		m.inconsistent("progress", "meter not started")
		return m
	}
	if m.rec.StoppedAt != 0 {
		m.inconsistent("progress", "meter already stopped")
		return m
	}
	if m.rec.Iteration <= m.lastProgressIter {
		return m
	}
	t := now()
	if t-m.lastProgressAt < int64(m.cfg.ProgressPeriod) {
		return m
	}
	m.lastProgressAt = t
	m.lastProgressIter = m.rec.Iteration
	m.emit(sink.Debug, tagProgress, "PROGRESS")
	return m
}

// OK marks the operation successful. Slow completions (execution time over
// the configured limit) are reported at warn severity.
func (m *Meter) OK() {
	defer m.guard()
	m.terminate(OK, "", "", "")
}

// Bad marks the operation rejected for an anticipated reason: input the
// operation refuses, a business rule, an expected conflict. The reason is
// the cause's textual form.
func (m *Meter) Bad(cause any) {
	defer m.guard()
	if cause == nil {
		m.inconsistent("bad", "missing rejection cause")
	}
	m.terminate(Rejected, reasonOf(cause), "", "")
}

// Fail marks the operation failed with the given error. A nil error is
// itself a usage inconsistency; the operation still terminates as failed.
func (m *Meter) Fail(err error) {
	defer m.guard()
	if err == nil {
		m.inconsistent("fail", "missing error")
		m.terminate(Failed, "", "unknown", "")
		return
	}
	m.terminate(Failed, "", fmt.Sprintf("%T", err), err.Error())
}

// Close is the safety net for scoped use: a meter that reaches Close
// without a terminal call is diagnosed and forced to failed, so abandoned
// operations are never silently lost. After a terminal call Close is a
// no-op, making `defer m.Close()` always safe.
func (m *Meter) Close() {
	defer m.guard()
	if m.rec.StoppedAt != 0 {
		return
	}
	m.inconsistent("close", "meter closed without a terminal call")
	m.terminate(Failed, "", "abandoned", "operation closed without a terminal call")
}

// Sub creates a child meter in the same category whose name is this
// meter's name joined with name, with a copy of the current context. The
// child is independent and not started.
func (m *Meter) Sub(name string) *Meter {
	defer m.guard()
	joined := name
	if m.rec.Name != "" {
		joined = m.rec.Name + "/" + name
	}
	child := m.factory.Named(m.rec.Category, joined)
	if len(m.rec.Context) > 0 {
		child.rec.Context = make(wire.Map, len(m.rec.Context))
		for k, v := range m.rec.Context {
			child.rec.Context[k] = v
		}
	}
	return child
}

// Run executes fn inside this meter's lifecycle: Start before, OK on nil
// return, Fail on error or panic. Panics are re-raised after being
// recorded.
func (m *Meter) Run(ctx context.Context, fn func(context.Context) error) error {
	ctx = m.Start(ctx)
	defer m.Close()
	defer func() {
		if r := recover(); r != nil {
			m.Fail(fmt.Errorf("panic: %v", r))
			panic(r)
		}
	}()
	if err := fn(ctx); err != nil {
		m.Fail(err)
		return err
	}
	m.OK()
	return nil
}

// Call is Run for functions that return a value.
func Call[T any](ctx context.Context, m *Meter, fn func(context.Context) (T, error)) (T, error) {
	ctx = m.Start(ctx)
	defer m.Close()
	defer func() {
		if r := recover(); r != nil {
			m.Fail(fmt.Errorf("panic: %v", r))
			panic(r)
		}
	}()
	v, err := fn(ctx)
	if err != nil {
		m.Fail(err)
		return v, err
	}
	m.OK()
	return v, nil
}

// terminate applies a terminal outcome. Last call wins: a second terminal
// call is diagnosed but still applied, so the record always reflects the
// caller's final word and always ends terminal.
func (m *Meter) terminate(out Outcome, reason, kind, message string) {
	if m.rec.StoppedAt != 0 {
		m.inconsistent("stop", "meter already stopped, overwriting outcome")
	} else if m.rec.StartedAt == 0 {
		m.inconsistent("stop", "meter stopped before start")
	}
	m.rec.StoppedAt = now()
	m.rec.StopGoroutine = goid()
	if m.rec.StartGoroutine != 0 && m.rec.StopGoroutine != m.rec.StartGoroutine {
		m.inconsistent("stop", "meter stopped on a different goroutine")
	}
	m.rec.Outcome = out
	m.rec.RejectReason = reason
	m.rec.FailKind = kind
	m.rec.FailMessage = message
	if m.leak != nil {
		m.leak.terminated.Store(true)
	}
	switch out {
	case Rejected:
		if m.rec.IsSlow() {
			m.emit(sink.Warn, tagSlowBad, "REJECT (slow)")
		} else {
			m.emit(sink.Info, tagBad, "REJECT")
		}
	case Failed:
		m.emit(sink.Error, tagFail, "FAIL")
	default:
		if m.rec.IsSlow() {
			m.emit(sink.Warn, tagSlowOK, "OK (slow)")
		} else {
			m.emit(sink.Info, tagOK, "OK")
		}
	}
}

// configurable reports whether configuration calls still apply, diagnosing
// attempts after a terminal transition.
func (m *Meter) configurable(op string) bool {
	if m.rec.StoppedAt != 0 {
		m.inconsistent(op, "meter already stopped")
		return false
	}
	return true
}

func (m *Meter) ctxPut(key string, value *string) {
	if m.rec.Context == nil {
		m.rec.Context = wire.Map{}
	}
	m.rec.Context[key] = value
}

// emit logs the transition: the encoded line at trace severity, the
// readable line at the transition's severity. A fresh snapshot is captured
// only when the encoded stream is on, keeping the cheap path cheap.
func (m *Meter) emit(sev sink.Severity, tag, status string) {
	if m.sink.Enabled(sink.Trace) {
		m.rec.Snapshot = probe.Collect(m.probe)
		m.sink.Log(sink.Trace, tag, m.rec.WriteTo())
	}
	if m.sink.Enabled(sev) {
		m.sink.Log(sev, tag, m.rec.Readable(m.cfg, status))
	}
}
