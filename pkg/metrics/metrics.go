package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "atlas"

// Recorder receives report pipeline events.
type Recorder interface {
	ReportGenerated(duration time.Duration, warnings int)
	ReportFailed()
	ExportCompleted(format string, err error)
}

// Collector is a Recorder backed by its own Prometheus registry. Safe for concurrent use.
type Collector struct {
	registry *prometheus.Registry

	reportsTotal     *prometheus.CounterVec
	reportDuration   prometheus.Histogram
	dataWarnings     prometheus.Counter
	exportsTotal     *prometheus.CounterVec
	lastReportUnixTs prometheus.Gauge
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		reportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_total",
			Help:      "Reports generated, by outcome.",
		}, []string{"outcome"}),
		reportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_duration_seconds",
			Help:      "Time spent loading a snapshot and building a report.",
			Buckets:   prometheus.DefBuckets,
		}),
		dataWarnings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "data_warnings_total",
			Help:      "Snapshot collections that degraded to empty while loading.",
		}),
		exportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Report exports, by format and outcome.",
		}, []string{"format", "outcome"}),
		lastReportUnixTs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_report_timestamp_seconds",
			Help:      "Unix time of the last successfully generated report.",
		}),
	}

	c.registry.MustRegister(
		c.reportsTotal,
		c.reportDuration,
		c.dataWarnings,
		c.exportsTotal,
		c.lastReportUnixTs,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

func (c *Collector) ReportGenerated(duration time.Duration, warnings int) {
	c.reportsTotal.WithLabelValues("success").Inc()
	c.reportDuration.Observe(duration.Seconds())
	c.dataWarnings.Add(float64(warnings))
	c.lastReportUnixTs.SetToCurrentTime()
}

func (c *Collector) ReportFailed() {
	c.reportsTotal.WithLabelValues("error").Inc()
}

func (c *Collector) ExportCompleted(format string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	c.exportsTotal.WithLabelValues(format, outcome).Inc()
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Nop discards every event.
type Nop struct{}

func (Nop) ReportGenerated(time.Duration, int) {}
func (Nop) ReportFailed()                      {}
func (Nop) ExportCompleted(string, error)      {}
