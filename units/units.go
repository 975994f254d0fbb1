// Package units formats measurement values for the human-readable side of
// the instrumentation output: byte quantities, durations and iteration
// rates rendered short enough to live inside a one-line log message.
package units

import (
	"fmt"
	"time"
)

// Bytes renders a byte quantity with a binary-scale suffix, e.g. "2.5MB".
func Bytes(n uint64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
		gb = 1 << 30
		tb = 1 << 40
	)
	switch {
	case n >= tb:
		return fmt.Sprintf("%.1fTB", float64(n)/tb)
	case n >= gb:
		return fmt.Sprintf("%.1fGB", float64(n)/gb)
	case n >= mb:
		return fmt.Sprintf("%.1fMB", float64(n)/mb)
	case n >= kb:
		return fmt.Sprintf("%.1fkB", float64(n)/kb)
	default:
		return fmt.Sprintf("%dB", n)
	}
}

// Duration renders a duration rounded to a readable precision, e.g.
// "1.5s", "320ms", "45us".
func Duration(d time.Duration) string {
	switch {
	case d >= time.Hour:
		return fmt.Sprintf("%.1fh", d.Hours())
	case d >= time.Minute:
		return fmt.Sprintf("%.1fm", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	case d >= time.Microsecond:
		return fmt.Sprintf("%.0fus", float64(d)/float64(time.Microsecond))
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

// Iterations renders an iteration count compactly, e.g. "1.2M", "35k".
func Iterations(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fG", float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 10_000:
		return fmt.Sprintf("%.1fk", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// Rate renders an iterations-per-second rate, e.g. "250/s", "1.2k/s".
func Rate(perSecond float64) string {
	switch {
	case perSecond >= 1_000_000:
		return fmt.Sprintf("%.1fM/s", perSecond/1_000_000)
	case perSecond >= 1_000:
		return fmt.Sprintf("%.1fk/s", perSecond/1_000)
	case perSecond >= 1:
		return fmt.Sprintf("%.0f/s", perSecond)
	default:
		return fmt.Sprintf("%.2f/s", perSecond)
	}
}
