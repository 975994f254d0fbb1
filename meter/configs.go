package meter

import (
	"time"

	"github.com/aalemi-dev/meterkit/config"
)

// Environment keys resolved by FromEnv.
const (
	// EnvProgressPeriod is the minimum wall-clock spacing between progress
	// emissions, a duration such as "2s" or "500ms". Defaults to 2s.
	EnvProgressPeriod = "METERKIT_METER_PROGRESS_PERIOD"
	// EnvPrintCategory toggles the category on readable lines. Defaults to
	// true.
	EnvPrintCategory = "METERKIT_METER_PRINT_CATEGORY"
	// EnvPrintPosition toggles the ordinal position on readable lines.
	// Defaults to true.
	EnvPrintPosition = "METERKIT_METER_PRINT_POSITION"
	// EnvPrintStatus toggles the status prefix on readable lines. Defaults
	// to true.
	EnvPrintStatus = "METERKIT_METER_PRINT_STATUS"
	// EnvLeakDetection enables the advisory end-of-life check that flags
	// meters collected without a terminal call. Defaults to true.
	EnvLeakDetection = "METERKIT_METER_LEAK_DETECTION"
)

// Config defines the configuration for meters minted by one Factory.
type Config struct {
	// ProgressPeriod is the minimum wall-clock time between two progress
	// emissions of one meter. Progress calls inside the period are
	// silently skipped, bounding log volume for tight loops.
	ProgressPeriod time.Duration

	// PrintCategory includes the category on readable lines.
	PrintCategory bool

	// PrintPosition includes the ordinal position on readable lines.
	PrintPosition bool

	// PrintStatus includes the status prefix (OK, FAIL, ...) on readable
	// lines.
	PrintStatus bool

	// LeakDetection arms an advisory garbage-collection hook that reports
	// meters reclaimed without a terminal call. Best effort only; the
	// forced terminal rules, not this hook, guarantee correctness.
	LeakDetection bool
}

// FromEnv builds a Config from the process environment, applying defaults
// for unset keys.
func FromEnv() Config {
	return Config{
		ProgressPeriod: config.Duration(EnvProgressPeriod, 2*time.Second),
		PrintCategory:  config.Bool(EnvPrintCategory, true),
		PrintPosition:  config.Bool(EnvPrintPosition, true),
		PrintStatus:    config.Bool(EnvPrintStatus, true),
		LeakDetection:  config.Bool(EnvLeakDetection, true),
	}
}
