package probe

import (
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/load"
	"github.com/shirou/gopsutil/mem"
)

// RuntimeProbe reads resource status from the Go runtime, supplemented by
// gopsutil for system-level figures the runtime does not expose.
type RuntimeProbe struct {
	cfg Config

	// Total physical memory does not change; query it once.
	totalOnce sync.Once
	totalMem  uint64
}

// NewRuntimeProbe creates a probe over the Go runtime and, per the
// configuration, the operating system.
//
// Parameters:
//   - cfg: Configuration controlling which system-level sources are queried.
//
// Returns:
//   - *RuntimeProbe: A ready probe. Creation never fails; unavailable
//     sources degrade to zero values at read time.
func NewRuntimeProbe(cfg Config) *RuntimeProbe {
	return &RuntimeProbe{cfg: cfg}
}

// Memory returns current heap usage. Used is the live heap allocation,
// Committed is the heap memory obtained from the operating system, Max is
// total physical memory when system queries are enabled.
func (p *RuntimeProbe) Memory() MemoryStatus {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	st := MemoryStatus{
		Used:      ms.HeapAlloc,
		Committed: ms.HeapSys,
	}
	if p.cfg.UseSystemMemory {
		st.Max = p.total()
	}
	return st
}

func (p *RuntimeProbe) total() uint64 {
	p.totalOnce.Do(func() {
		if vm, err := mem.VirtualMemory(); err == nil {
			p.totalMem = vm.Total
		}
	})
	return p.totalMem
}

// Load returns the one-minute system load average, or zero when disabled or
// unavailable on this platform.
func (p *RuntimeProbe) Load() float64 {
	if !p.cfg.UseSystemLoad {
		return 0
	}
	avg, err := load.Avg()
	if err != nil {
		return 0
	}
	return avg.Load1
}

// GC returns cumulative garbage collection statistics: completed cycle
// count and total stop-the-world pause time.
func (p *RuntimeProbe) GC() GCStatus {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return GCStatus{
		Count:     uint64(ms.NumGC),
		TotalTime: time.Duration(ms.PauseTotalNs),
	}
}

// Threads returns the live goroutine count.
func (p *RuntimeProbe) Threads() int {
	return runtime.NumGoroutine()
}
