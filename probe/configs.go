package probe

import "github.com/aalemi-dev/meterkit/config"

// Environment keys resolved by FromEnv.
const (
	// EnvSystemMemory enables querying the operating system for total
	// memory, used as the heap ceiling. Defaults to true.
	EnvSystemMemory = "METERKIT_PROBE_SYSTEM_MEMORY"
	// EnvSystemLoad enables querying the operating system load average.
	// Defaults to true.
	EnvSystemLoad = "METERKIT_PROBE_SYSTEM_LOAD"
)

// Config defines the configuration for the runtime probe.
type Config struct {
	// UseSystemMemory queries the operating system for total physical
	// memory and reports it as MemoryStatus.Max. When false, Max is zero.
	UseSystemMemory bool

	// UseSystemLoad queries the operating system for the one-minute load
	// average. When false, Load always returns zero. Disabling this avoids
	// a syscall per collection on platforms where it is expensive.
	UseSystemLoad bool
}

// FromEnv builds a Config from the process environment, applying defaults
// for unset keys.
func FromEnv() Config {
	return Config{
		UseSystemMemory: config.Bool(EnvSystemMemory, true),
		UseSystemLoad:   config.Bool(EnvSystemLoad, true),
	}
}
