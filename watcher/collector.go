package watcher

import "github.com/prometheus/client_golang/prometheus"

// Collector exposes a watcher's latest snapshot as Prometheus metrics, so
// deployments that already scrape can graph the same figures the log
// stream carries. Register it on any registerer; it reads the snapshot
// lock-free at scrape time.
type Collector struct {
	watcher *Watcher

	heapUsed      *prometheus.Desc
	heapCommitted *prometheus.Desc
	heapMax       *prometheus.Desc
	systemLoad    *prometheus.Desc
	gcCount       *prometheus.Desc
	gcTime        *prometheus.Desc
	threads       *prometheus.Desc
	ticks         *prometheus.Desc
}

// NewCollector creates a collector over the watcher's latest snapshot.
func NewCollector(w *Watcher) *Collector {
	return &Collector{
		watcher: w,
		heapUsed: prometheus.NewDesc("meterkit_heap_used_bytes",
			"Heap memory holding live or not yet collected allocations.", nil, nil),
		heapCommitted: prometheus.NewDesc("meterkit_heap_committed_bytes",
			"Heap memory obtained from the operating system.", nil, nil),
		heapMax: prometheus.NewDesc("meterkit_heap_max_bytes",
			"Total memory available to the process.", nil, nil),
		systemLoad: prometheus.NewDesc("meterkit_system_load",
			"Recent system load average.", nil, nil),
		gcCount: prometheus.NewDesc("meterkit_gc_runs_total",
			"Completed garbage collection runs.", nil, nil),
		gcTime: prometheus.NewDesc("meterkit_gc_pause_seconds_total",
			"Cumulative garbage collection pause time.", nil, nil),
		threads: prometheus.NewDesc("meterkit_goroutines",
			"Live goroutine count.", nil, nil),
		ticks: prometheus.NewDesc("meterkit_watcher_ticks_total",
			"Samples emitted by the watcher.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.heapUsed
	ch <- c.heapCommitted
	ch <- c.heapMax
	ch <- c.systemLoad
	ch <- c.gcCount
	ch <- c.gcTime
	ch <- c.threads
	ch <- c.ticks
}

// Collect implements prometheus.Collector. Before the first tick only the
// tick counter is reported.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.ticks, prometheus.CounterValue, float64(c.watcher.Ticks()))
	snap := c.watcher.Last()
	if snap == nil {
		return
	}
	ch <- prometheus.MustNewConstMetric(c.heapUsed, prometheus.GaugeValue, float64(snap.HeapUsed))
	ch <- prometheus.MustNewConstMetric(c.heapCommitted, prometheus.GaugeValue, float64(snap.HeapCommitted))
	ch <- prometheus.MustNewConstMetric(c.heapMax, prometheus.GaugeValue, float64(snap.HeapMax))
	ch <- prometheus.MustNewConstMetric(c.systemLoad, prometheus.GaugeValue, snap.SystemLoad)
	ch <- prometheus.MustNewConstMetric(c.gcCount, prometheus.CounterValue, float64(snap.GCCount))
	ch <- prometheus.MustNewConstMetric(c.gcTime, prometheus.CounterValue, snap.GCTotalTime.Seconds())
	ch <- prometheus.MustNewConstMetric(c.threads, prometheus.GaugeValue, float64(snap.Threads))
}
