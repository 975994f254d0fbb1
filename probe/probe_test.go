package probe_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/meterkit/probe"
	"github.com/aalemi-dev/meterkit/wire"
)

func TestRuntimeProbeMemory(t *testing.T) {
	p := probe.NewRuntimeProbe(probe.Config{UseSystemMemory: true})
	st := p.Memory()
	assert.NotZero(t, st.Used, "a running test binary has a live heap")
	assert.GreaterOrEqual(t, st.Committed, st.Used)
}

func TestRuntimeProbeSystemSourcesDisabled(t *testing.T) {
	p := probe.NewRuntimeProbe(probe.Config{})
	assert.Zero(t, p.Memory().Max)
	assert.Zero(t, p.Load())
}

func TestRuntimeProbeThreads(t *testing.T) {
	p := probe.NewRuntimeProbe(probe.Config{})
	assert.Greater(t, p.Threads(), 0)
}

func TestCollect(t *testing.T) {
	snap := probe.Collect(probe.NewRuntimeProbe(probe.Config{}))
	assert.NotZero(t, snap.HeapUsed)
	assert.Greater(t, snap.Threads, 0)
}

func TestCollectNilProbe(t *testing.T) {
	assert.True(t, probe.Collect(nil).IsZero())
}

func TestNoOp(t *testing.T) {
	snap := probe.Collect(probe.NewNoOp())
	assert.True(t, snap.IsZero())
}

func TestSnapshotWireRoundTrip(t *testing.T) {
	in := probe.Snapshot{
		HeapUsed:      1024,
		HeapCommitted: 4096,
		HeapMax:       1 << 30,
		SystemLoad:    0.75,
		GCCount:       12,
		GCTotalTime:   3 * time.Millisecond,
		Threads:       9,
	}

	w := wire.NewWriter('W')
	in.WriteProperties(w)
	line := w.String()

	payload, ok := wire.Extract('W', line)
	require.True(t, ok)

	var out probe.Snapshot
	r := wire.NewReader(payload)
	for r.HasMore() {
		name, err := r.PropertyName()
		require.NoError(t, err)
		handled, err := out.ReadProperty(r, name)
		require.NoError(t, err)
		require.True(t, handled, "unexpected property %q", name)
	}
	assert.Equal(t, in, out)
}

func TestSnapshotZeroFieldsOmitted(t *testing.T) {
	w := wire.NewWriter('W')
	probe.Snapshot{Threads: 3}.WriteProperties(w)
	assert.Equal(t, "W[th=3]", w.String())
}

func TestSnapshotReadable(t *testing.T) {
	snap := probe.Snapshot{
		HeapUsed:      5 << 20,
		HeapCommitted: 8 << 20,
		SystemLoad:    0.42,
		GCCount:       7,
		Threads:       12,
	}
	var sb strings.Builder
	snap.Readable(&sb)
	assert.Equal(t, "memory: 5.0MB/8.0MB; load: 0.42; gc: 7; threads: 12", sb.String())
}

func TestSnapshotReadableEmpty(t *testing.T) {
	var sb strings.Builder
	probe.Snapshot{}.Readable(&sb)
	assert.Empty(t, sb.String())
}
