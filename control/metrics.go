// File: control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus export of pool statistics. The collector reads stats at
// scrape time, so registering it adds nothing to the packet path.

package control

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/hioload-pdu/api"
)

// StatsSource is anything exposing pool accounting.
type StatsSource interface {
	Stats() api.PoolStats
}

// PoolCollector exports one pool's statistics under a pool label.
type PoolCollector struct {
	source StatsSource

	capacity *prometheus.Desc
	acquired *prometheus.Desc
	released *prometheus.Desc
	inUse    *prometheus.Desc
}

var _ prometheus.Collector = (*PoolCollector)(nil)

// NewPoolCollector builds a collector for the named pool.
func NewPoolCollector(name string, source StatsSource) *PoolCollector {
	labels := prometheus.Labels{"pool": name}
	return &PoolCollector{
		source: source,
		capacity: prometheus.NewDesc(
			"hioload_pdu_pool_capacity",
			"Fixed slot count of the buffer pool (0 for grow-on-demand pools)",
			nil, labels,
		),
		acquired: prometheus.NewDesc(
			"hioload_pdu_pool_acquired_total",
			"Total buffer acquisitions over the pool lifetime",
			nil, labels,
		),
		released: prometheus.NewDesc(
			"hioload_pdu_pool_released_total",
			"Total buffer releases over the pool lifetime",
			nil, labels,
		),
		inUse: prometheus.NewDesc(
			"hioload_pdu_pool_in_use",
			"Buffers currently held by consumers",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.capacity
	ch <- c.acquired
	ch <- c.released
	ch <- c.inUse
}

// Collect implements prometheus.Collector.
func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.source.Stats()
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(s.Capacity))
	ch <- prometheus.MustNewConstMetric(c.acquired, prometheus.CounterValue, float64(s.TotalAcquired))
	ch <- prometheus.MustNewConstMetric(c.released, prometheus.CounterValue, float64(s.TotalReleased))
	ch <- prometheus.MustNewConstMetric(c.inUse, prometheus.GaugeValue, float64(s.InUse))
}
