package sink

import "github.com/aalemi-dev/meterkit/config"

// Environment keys resolved by FromEnv.
const (
	// EnvLevel selects the minimum severity, one of "trace", "debug",
	// "info", "warn", "error". Defaults to "info".
	EnvLevel = "METERKIT_SINK_LEVEL"
	// EnvName sets the logger name attached to every line. Defaults to
	// "meterkit".
	EnvName = "METERKIT_SINK_NAME"
)

// Config defines the configuration for the Zap-backed sink.
type Config struct {
	// Level is the minimum severity that will be emitted. Lines below
	// this severity are dropped by Enabled/Log. Encoded event lines are
	// emitted at Trace, so a Level of Trace turns on the machine-parsable
	// stream.
	Level Severity

	// Name identifies the logger, typically the subsystem or service
	// using the instrumentation. It becomes the zap logger name.
	Name string
}

// FromEnv builds a Config from the process environment, applying defaults
// for unset keys.
func FromEnv() Config {
	return Config{
		Level: ParseSeverity(config.String(EnvLevel, "info")),
		Name:  config.String(EnvName, "meterkit"),
	}
}

// ParseSeverity converts a severity name to its value. Unknown names map
// to Info.
func ParseSeverity(name string) Severity {
	switch name {
	case "trace":
		return Trace
	case "debug":
		return Debug
	case "info":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}
