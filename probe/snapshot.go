package probe

import (
	"strconv"
	"strings"
	"time"

	"github.com/aalemi-dev/meterkit/units"
	"github.com/aalemi-dev/meterkit/wire"
)

// Wire property names for snapshot fields.
const (
	propMemory      = "m"  // used|committed|max
	propLoad        = "ld" //
	propClasses     = "cl" // loaded|unloaded
	propGC          = "gc" // count|total time ns
	propCompileTime = "ct" //
	propThreads     = "th" //
)

// Snapshot is an immutable capture of process resource status at one
// instant. Absent fields are zero when the probe cannot supply them; zero
// fields are omitted from the wire representation.
type Snapshot struct {
	// Heap memory in bytes.
	HeapUsed      uint64
	HeapCommitted uint64
	HeapMax       uint64

	// SystemLoad is the recent load average.
	SystemLoad float64

	// Code loading counters. The Go runtime does not unload code, so
	// these stay zero unless a foreign emitter filled them in.
	ClassesLoaded   int64
	ClassesUnloaded int64

	// Garbage collection since process start.
	GCCount     uint64
	GCTotalTime time.Duration

	// CompileTime is cumulative just-in-time compilation time; zero on
	// runtimes that compile ahead of time.
	CompileTime time.Duration

	// Threads is the live goroutine count.
	Threads int
}

// Collect captures a fresh snapshot from the probe. A nil probe yields the
// zero snapshot.
func Collect(p Probe) Snapshot {
	if p == nil {
		return Snapshot{}
	}
	mem := p.Memory()
	gc := p.GC()
	return Snapshot{
		HeapUsed:      mem.Used,
		HeapCommitted: mem.Committed,
		HeapMax:       mem.Max,
		SystemLoad:    p.Load(),
		GCCount:       gc.Count,
		GCTotalTime:   gc.TotalTime,
		Threads:       p.Threads(),
	}
}

// IsZero reports whether the snapshot carries no data at all.
func (s Snapshot) IsZero() bool {
	return s == Snapshot{}
}

// WriteProperties renders the snapshot's non-zero fields onto a wire
// message.
func (s Snapshot) WriteProperties(w *wire.Writer) {
	if s.HeapUsed != 0 || s.HeapCommitted != 0 || s.HeapMax != 0 {
		w.PropertyUint(propMemory, s.HeapUsed, s.HeapCommitted, s.HeapMax)
	}
	if s.SystemLoad != 0 {
		w.PropertyFloat(propLoad, s.SystemLoad)
	}
	if s.ClassesLoaded != 0 || s.ClassesUnloaded != 0 {
		w.PropertyInt(propClasses, s.ClassesLoaded, s.ClassesUnloaded)
	}
	if s.GCCount != 0 || s.GCTotalTime != 0 {
		w.PropertyUint(propGC, s.GCCount, uint64(s.GCTotalTime))
	}
	if s.CompileTime != 0 {
		w.PropertyInt(propCompileTime, int64(s.CompileTime))
	}
	if s.Threads != 0 {
		w.PropertyInt(propThreads, int64(s.Threads))
	}
}

// ReadProperty consumes one snapshot property from the reader. It returns
// false when the name does not belong to the snapshot, leaving the reader
// untouched, so record decoders can chain their own properties first.
func (s *Snapshot) ReadProperty(r *wire.Reader, name string) (bool, error) {
	switch name {
	case propMemory:
		var err error
		if s.HeapUsed, err = r.Uint64(); err != nil {
			return true, err
		}
		if s.HeapCommitted, err = r.Uint64(); err != nil {
			return true, err
		}
		s.HeapMax, err = r.Uint64()
		return true, err
	case propLoad:
		v, err := r.Float64()
		s.SystemLoad = v
		return true, err
	case propClasses:
		var err error
		if s.ClassesLoaded, err = r.Int64(); err != nil {
			return true, err
		}
		s.ClassesUnloaded, err = r.Int64()
		return true, err
	case propGC:
		var err error
		if s.GCCount, err = r.Uint64(); err != nil {
			return true, err
		}
		total, err := r.Uint64()
		s.GCTotalTime = time.Duration(total)
		return true, err
	case propCompileTime:
		v, err := r.Int64()
		s.CompileTime = time.Duration(v)
		return true, err
	case propThreads:
		v, err := r.Int64()
		s.Threads = int(v)
		return true, err
	}
	return false, nil
}

// Readable appends a short human-oriented rendering of the snapshot, e.g.
// "memory: 12.5MB/64.0MB; load: 0.42; gc: 7; threads: 12".
func (s Snapshot) Readable(sb *strings.Builder) {
	first := true
	sep := func() {
		if !first {
			sb.WriteString("; ")
		}
		first = false
	}
	if s.HeapUsed != 0 || s.HeapCommitted != 0 {
		sep()
		sb.WriteString("memory: ")
		sb.WriteString(units.Bytes(s.HeapUsed))
		if s.HeapCommitted != 0 {
			sb.WriteByte('/')
			sb.WriteString(units.Bytes(s.HeapCommitted))
		}
	}
	if s.SystemLoad != 0 {
		sep()
		sb.WriteString("load: ")
		sb.WriteString(strconv.FormatFloat(s.SystemLoad, 'f', 2, 64))
	}
	if s.GCCount != 0 {
		sep()
		sb.WriteString("gc: ")
		sb.WriteString(units.Iterations(int64(s.GCCount)))
		if s.GCTotalTime != 0 {
			sb.WriteByte('/')
			sb.WriteString(units.Duration(s.GCTotalTime))
		}
	}
	if s.Threads != 0 {
		sep()
		sb.WriteString("threads: ")
		sb.WriteString(units.Iterations(int64(s.Threads)))
	}
}
