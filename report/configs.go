package report

import "github.com/aalemi-dev/meterkit/config"

// Environment keys resolved by FromEnv. Each toggles one section and
// defaults to true.
const (
	EnvOS      = "METERKIT_REPORT_OS"
	EnvRuntime = "METERKIT_REPORT_RUNTIME"
	EnvMemory  = "METERKIT_REPORT_MEMORY"
	EnvUser    = "METERKIT_REPORT_USER"
	EnvHost    = "METERKIT_REPORT_HOST"
	EnvNetwork = "METERKIT_REPORT_NETWORK"
)

// Config selects which sections Report prints.
type Config struct {
	OS      bool
	Runtime bool
	Memory  bool
	User    bool
	Host    bool
	Network bool
}

// FromEnv builds a Config from the process environment, applying defaults
// for unset keys.
func FromEnv() Config {
	return Config{
		OS:      config.Bool(EnvOS, true),
		Runtime: config.Bool(EnvRuntime, true),
		Memory:  config.Bool(EnvMemory, true),
		User:    config.Bool(EnvUser, true),
		Host:    config.Bool(EnvHost, true),
		Network: config.Bool(EnvNetwork, true),
	}
}
