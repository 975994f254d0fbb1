package report

import (
	"fmt"
	"net"
	"os"
	"os/user"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"

	"github.com/aalemi-dev/meterkit/session"
	"github.com/aalemi-dev/meterkit/sink"
	"github.com/aalemi-dev/meterkit/units"
)

const tagReport = "REPORT"

// Reporter prints environment sections through a sink.
type Reporter struct {
	sink sink.Sink
	cfg  Config
}

// NewReporter creates a reporter over the given sink.
func NewReporter(cfg Config, s sink.Sink) *Reporter {
	if s == nil {
		s = sink.NewNoOp()
	}
	return &Reporter{sink: s, cfg: cfg}
}

// Report prints every enabled section at info severity, one line each.
// Sections whose data source is unavailable print what they can; Report
// never fails.
func (r *Reporter) Report() {
	if !r.sink.Enabled(sink.Info) {
		return
	}
	if r.cfg.OS {
		r.emit("os", r.osSection())
	}
	if r.cfg.Runtime {
		r.emit("runtime", r.runtimeSection())
	}
	if r.cfg.Memory {
		r.emit("memory", r.memorySection())
	}
	if r.cfg.User {
		r.emit("user", r.userSection())
	}
	if r.cfg.Host {
		r.emit("host", r.hostSection())
	}
	if r.cfg.Network {
		r.emit("network", r.networkSection())
	}
}

func (r *Reporter) emit(section, body string) {
	r.sink.Log(sink.Info, tagReport, section+": "+body)
}

func (r *Reporter) osSection() string {
	info, err := host.Info()
	if err != nil {
		return fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("%s %s (%s, kernel %s)",
		info.Platform, info.PlatformVersion, runtime.GOARCH, info.KernelVersion)
}

func (r *Reporter) runtimeSection() string {
	return fmt.Sprintf("%s (%s); cpus: %d; maxprocs: %d; pid: %d; session: %s",
		runtime.Version(), runtime.Compiler,
		runtime.NumCPU(), runtime.GOMAXPROCS(0), os.Getpid(), session.ID())
}

func (r *Reporter) memorySection() string {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	body := fmt.Sprintf("heap: %s used, %s committed",
		units.Bytes(ms.HeapAlloc), units.Bytes(ms.HeapSys))
	if vm, err := mem.VirtualMemory(); err == nil {
		body += fmt.Sprintf("; system: %s of %s used (%.0f%%)",
			units.Bytes(vm.Used), units.Bytes(vm.Total), vm.UsedPercent)
	}
	return body
}

func (r *Reporter) userSection() string {
	u, err := user.Current()
	if err != nil {
		return "unknown"
	}
	return fmt.Sprintf("%s (uid %s, home %s)", u.Username, u.Uid, u.HomeDir)
}

func (r *Reporter) hostSection() string {
	name, err := os.Hostname()
	if err != nil {
		name = "unknown"
	}
	if info, err := host.Info(); err == nil {
		return fmt.Sprintf("%s; up %s", name, units.Duration(secondsToDuration(info.Uptime)))
	}
	return name
}

func (r *Reporter) networkSection() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "unknown"
	}
	var parts []string
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil || len(addrs) == 0 {
			continue
		}
		strs := make([]string, len(addrs))
		for i, a := range addrs {
			strs[i] = a.String()
		}
		parts = append(parts, iface.Name+" "+strings.Join(strs, " "))
	}
	if len(parts) == 0 {
		return "no active interfaces"
	}
	return strings.Join(parts, "; ")
}

func secondsToDuration(s uint64) time.Duration {
	return time.Duration(s) * time.Second
}
