package units_test

import (
	"testing"
	"time"

	"github.com/aalemi-dev/meterkit/units"
)

func TestBytes(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0B"},
		{512, "512B"},
		{2048, "2.0kB"},
		{5 << 20, "5.0MB"},
		{3 << 30, "3.0GB"},
	}
	for _, tc := range tests {
		if got := units.Bytes(tc.n); got != tc.want {
			t.Errorf("Bytes(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Nanosecond, "500ns"},
		{45 * time.Microsecond, "45us"},
		{320 * time.Millisecond, "320ms"},
		{1500 * time.Millisecond, "1.5s"},
		{90 * time.Second, "1.5m"},
		{90 * time.Minute, "1.5h"},
	}
	for _, tc := range tests {
		if got := units.Duration(tc.d); got != tc.want {
			t.Errorf("Duration(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestIterations(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{7, "7"},
		{9999, "9999"},
		{35_000, "35.0k"},
		{1_200_000, "1.2M"},
	}
	for _, tc := range tests {
		if got := units.Iterations(tc.n); got != tc.want {
			t.Errorf("Iterations(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		r    float64
		want string
	}{
		{0.5, "0.50/s"},
		{250, "250/s"},
		{1200, "1.2k/s"},
	}
	for _, tc := range tests {
		if got := units.Rate(tc.r); got != tc.want {
			t.Errorf("Rate(%v) = %q, want %q", tc.r, got, tc.want)
		}
	}
}
