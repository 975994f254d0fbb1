package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/meterkit/report"
	"github.com/aalemi-dev/meterkit/sink"
)

func sections(capture *sink.Capture) []string {
	var out []string
	for _, e := range capture.ByTag("REPORT") {
		name, _, _ := strings.Cut(e.Message, ":")
		out = append(out, name)
	}
	return out
}

func TestReportAllSections(t *testing.T) {
	capture := sink.NewCapture(sink.Info)
	cfg := report.Config{OS: true, Runtime: true, Memory: true, User: true, Host: true, Network: true}

	report.NewReporter(cfg, capture).Report()

	assert.Equal(t, []string{"os", "runtime", "memory", "user", "host", "network"}, sections(capture))
}

func TestReportToggles(t *testing.T) {
	capture := sink.NewCapture(sink.Info)
	cfg := report.Config{Runtime: true, Memory: true}

	report.NewReporter(cfg, capture).Report()

	assert.Equal(t, []string{"runtime", "memory"}, sections(capture))
}

func TestReportRuntimeContent(t *testing.T) {
	capture := sink.NewCapture(sink.Info)
	report.NewReporter(report.Config{Runtime: true}, capture).Report()

	entries := capture.ByTag("REPORT")
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "go1.")
	assert.Contains(t, entries[0].Message, "session: ")
}

func TestReportMemoryContent(t *testing.T) {
	capture := sink.NewCapture(sink.Info)
	report.NewReporter(report.Config{Memory: true}, capture).Report()

	entries := capture.ByTag("REPORT")
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "heap: ")
}

func TestReportDisabledSinkEmitsNothing(t *testing.T) {
	capture := sink.NewCapture(sink.Error)
	report.NewReporter(report.Config{Runtime: true}, capture).Report()
	assert.Empty(t, capture.Entries())
}
