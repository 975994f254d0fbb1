package meter

import (
	"runtime"
	"sync/atomic"

	"github.com/aalemi-dev/meterkit/probe"
	"github.com/aalemi-dev/meterkit/session"
	"github.com/aalemi-dev/meterkit/sink"
)

// Factory mints meters bound to one sink, probe and ordinal registry.
// Factories are safe for concurrent use; the meters they mint are not.
type Factory struct {
	sink     sink.Sink
	probe    probe.Probe
	registry *session.Registry
	cfg      Config
}

// NewFactory creates a meter factory.
//
// Parameters:
//   - cfg: Configuration applied to every minted meter.
//   - s: Sink receiving readable and encoded lines. A nil sink is replaced
//     by the no-op sink.
//   - p: Probe supplying resource snapshots. May be nil to skip snapshots.
//   - reg: Ordinal registry. A nil registry uses the process-wide default,
//     so independent factories of one process share ordinal sequences.
//
// Returns:
//   - *Factory: A ready factory. Creation never fails.
func NewFactory(cfg Config, s sink.Sink, p probe.Probe, reg *session.Registry) *Factory {
	if s == nil {
		s = sink.NewNoOp()
	}
	if reg == nil {
		reg = session.DefaultRegistry()
	}
	return &Factory{sink: s, probe: p, registry: reg, cfg: cfg}
}

// Meter mints a meter for an unnamed operation of the category.
func (f *Factory) Meter(category string) *Meter {
	return f.Named(category, "")
}

// Named mints a meter for a named operation. The registry assigns the next
// ordinal for the category[/name] key and the creation timestamp is taken
// immediately, so queueing delay before Start shows up as waiting time.
func (f *Factory) Named(category, name string) *Meter {
	m := &Meter{
		factory: f,
		sink:    f.sink,
		probe:   f.probe,
		cfg:     f.cfg,
		rec: Record{
			SessionID: session.ID(),
			Category:  category,
			Name:      name,
			Position:  f.registry.Next(session.Key(category, name)),
			CreatedAt: now(),
		},
	}
	if f.cfg.LeakDetection {
		m.armLeakDetection()
	}
	return m
}

// leakState outlives its meter so the cleanup can run after collection. It
// must not reference the meter, or the meter would never be collected.
type leakState struct {
	terminated atomic.Bool
	id         string
	sink       sink.Sink
}

// armLeakDetection flags meters reclaimed by the garbage collector without
// a terminal call. Advisory only: cleanups are not guaranteed to run, and
// the forced terminal rules already keep records correct.
func (m *Meter) armLeakDetection() {
	ls := &leakState{id: m.rec.FullID(), sink: m.sink}
	m.leak = ls
	runtime.AddCleanup(m, func(ls *leakState) {
		if !ls.terminated.Load() {
			ls.sink.Log(sink.Error, tagLeak,
				"meter "+ls.id+" reclaimed without a terminal call")
		}
	}, ls)
}
