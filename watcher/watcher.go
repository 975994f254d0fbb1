package watcher

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aalemi-dev/meterkit/probe"
	"github.com/aalemi-dev/meterkit/session"
	"github.com/aalemi-dev/meterkit/sink"
	"github.com/aalemi-dev/meterkit/wire"
)

// Marker identifies watcher status messages on the wire.
const Marker byte = 'W'

const (
	propSession  = "s"
	propPosition = "ep"
)

const tagWatch = "WATCH"

// Status is one emitted sample: the session it belongs to, its position in
// the tick sequence and the captured snapshot.
type Status struct {
	SessionID string
	Position  int64
	Snapshot  probe.Snapshot
}

// WriteTo renders the status as one encoded line.
func (st *Status) WriteTo() string {
	w := wire.NewWriter(Marker)
	if st.SessionID != "" {
		w.Property(propSession, st.SessionID)
	}
	if st.Position != 0 {
		w.PropertyInt(propPosition, st.Position)
	}
	st.Snapshot.WriteProperties(w)
	return w.String()
}

// ReadStatus decodes an encoded watcher line. The line may carry
// surrounding free text; only the bracketed message is parsed.
func ReadStatus(line string) (*Status, error) {
	payload, ok := wire.Extract(Marker, line)
	if !ok {
		return nil, fmt.Errorf("%w: no watcher message in line", wire.ErrMalformedInput)
	}
	st := &Status{}
	r := wire.NewReader(payload)
	for r.HasMore() {
		name, err := r.PropertyName()
		if err != nil {
			return nil, err
		}
		switch name {
		case propSession:
			if st.SessionID, err = r.String(); err != nil {
				return nil, err
			}
		case propPosition:
			if st.Position, err = r.Int64(); err != nil {
				return nil, err
			}
		default:
			handled, err := st.Snapshot.ReadProperty(r, name)
			if err != nil {
				return nil, err
			}
			if !handled {
				return nil, fmt.Errorf("%w: %q", wire.ErrUnknownProperty, name)
			}
		}
	}
	return st, nil
}

// Watcher emits resource status on a fixed schedule from one background
// goroutine, kept apart from request-processing goroutines. All methods
// are safe for concurrent use.
type Watcher struct {
	sink  sink.Sink
	probe probe.Probe
	cfg   Config

	mu   sync.Mutex
	stop chan struct{} // non-nil while running

	ticks atomic.Int64
	last  atomic.Pointer[probe.Snapshot]
}

// NewWatcher creates a watcher bound to the given sink and probe. The
// watcher does not tick until Start. Non-positive durations fall back to
// the defaults: time.NewTicker rejects them, and a schedule that cannot
// run must degrade rather than take the host process down.
func NewWatcher(cfg Config, s sink.Sink, p probe.Probe) *Watcher {
	if s == nil {
		s = sink.NewNoOp()
	}
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultDelay
	}
	if cfg.Period <= 0 {
		cfg.Period = DefaultPeriod
	}
	return &Watcher{sink: s, probe: p, cfg: cfg}
}

// Start launches the tick schedule: one tick after the configured delay,
// then one per period. Calling Start while running is a no-op, so at most
// one tick sequence exists at a time.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stop != nil {
		return
	}
	stop := make(chan struct{})
	w.stop = stop
	go w.run(stop)
}

// Stop cancels the schedule without waiting for an in-flight tick.
// Stopping a stopped watcher is a no-op; Start afterwards resumes ticking
// with the full initial delay.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stop == nil {
		return
	}
	close(w.stop)
	w.stop = nil
}

// Running reports whether a tick sequence is active.
func (w *Watcher) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stop != nil
}

// Ticks returns how many samples this watcher has emitted.
func (w *Watcher) Ticks() int64 {
	return w.ticks.Load()
}

// Last returns the most recently captured snapshot, or nil before the
// first tick.
func (w *Watcher) Last() *probe.Snapshot {
	return w.last.Load()
}

// Poll captures and emits one sample immediately, outside the schedule.
func (w *Watcher) Poll() {
	w.tick()
}

func (w *Watcher) run(stop chan struct{}) {
	timer := time.NewTimer(w.cfg.Delay)
	defer timer.Stop()
	select {
	case <-stop:
		return
	case <-timer.C:
	}
	w.tick()

	ticker := time.NewTicker(w.cfg.Period)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			w.tick()
		}
	}
}

// tick captures, stores and emits one sample. Faults inside probing or
// formatting are reported and swallowed so the schedule keeps running.
func (w *Watcher) tick() {
	defer func() {
		if r := recover(); r != nil {
			w.sink.Log(sink.Error, "BUG", fmt.Sprintf("internal fault in watcher: %v", r))
		}
	}()

	snap := probe.Collect(w.probe)
	w.last.Store(&snap)
	st := &Status{
		SessionID: session.ID(),
		Position:  w.ticks.Add(1),
		Snapshot:  snap,
	}

	if w.sink.Enabled(sink.Trace) {
		w.sink.Log(sink.Trace, tagWatch, st.WriteTo())
	}
	if w.sink.Enabled(sink.Info) {
		var sb strings.Builder
		snap.Readable(&sb)
		if sb.Len() == 0 {
			sb.WriteString("no resource data")
		}
		w.sink.Log(sink.Info, tagWatch, sb.String())
	}
}
