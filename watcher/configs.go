package watcher

import (
	"time"

	"github.com/aalemi-dev/meterkit/config"
)

// Environment keys resolved by FromEnv.
const (
	// EnvDelay is the wait before the first tick, a duration such as
	// "60s". Defaults to 1m.
	EnvDelay = "METERKIT_WATCHER_DELAY"
	// EnvPeriod is the spacing between ticks, a duration such as "10m".
	// Defaults to 10m.
	EnvPeriod = "METERKIT_WATCHER_PERIOD"
)

// Defaults applied by FromEnv and by NewWatcher when a Config carries a
// non-positive duration.
const (
	DefaultDelay  = time.Minute
	DefaultPeriod = 10 * time.Minute
)

// Config defines the configuration for the periodic watcher.
type Config struct {
	// Delay is the wait between Start and the first tick.
	Delay time.Duration

	// Period is the spacing between subsequent ticks.
	Period time.Duration
}

// FromEnv builds a Config from the process environment, applying defaults
// for unset keys.
func FromEnv() Config {
	return Config{
		Delay:  config.Duration(EnvDelay, DefaultDelay),
		Period: config.Duration(EnvPeriod, DefaultPeriod),
	}
}
