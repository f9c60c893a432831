package clock

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes a Service's internals as Prometheus metrics. The service
// itself never touches a registry; register the collector wherever the
// caller keeps its own:
//
//	reg.MustRegister(clock.NewCollector(svc))
type Collector struct {
	svc *Service

	ticksTotal       *prometheus.Desc
	timeSeconds      *prometheus.Desc
	stalenessSeconds *prometheus.Desc
	running          *prometheus.Desc
}

// NewCollector creates a Collector for svc.
func NewCollector(svc *Service) *Collector {
	return &Collector{
		svc: svc,
		ticksTotal: prometheus.NewDesc(
			"poolcore_clock_ticks_total",
			"Number of refreshes applied to the cached time",
			nil, nil,
		),
		timeSeconds: prometheus.NewDesc(
			"poolcore_clock_time_seconds",
			"Cached time as a Unix timestamp",
			nil, nil,
		),
		stalenessSeconds: prometheus.NewDesc(
			"poolcore_clock_staleness_seconds",
			"Lag between the time source and the cached time",
			nil, nil,
		),
		running: prometheus.NewDesc(
			"poolcore_clock_running",
			"1 while the background ticker is running, otherwise 0",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.ticksTotal
	ch <- c.timeSeconds
	ch <- c.stalenessSeconds
	ch <- c.running
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	cached := c.svc.cached.Load()
	staleness := c.svc.source.Now().Sub(time.UnixMilli(cached)).Seconds()
	var running float64
	if c.svc.State() == StateRunning {
		running = 1
	}
	ch <- prometheus.MustNewConstMetric(c.ticksTotal, prometheus.CounterValue, float64(c.svc.Ticks()))
	ch <- prometheus.MustNewConstMetric(c.timeSeconds, prometheus.GaugeValue, float64(cached)/1000)
	ch <- prometheus.MustNewConstMetric(c.stalenessSeconds, prometheus.GaugeValue, staleness)
	ch <- prometheus.MustNewConstMetric(c.running, prometheus.GaugeValue, running)
}

var _ prometheus.Collector = (*Collector)(nil)
