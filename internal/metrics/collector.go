package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"license-compliance-system/internal/compliance"
	"license-compliance-system/internal/model"
)

// Collector 合规引擎的 Prometheus 指标
type Collector struct {
	registry         *prometheus.Registry
	reportsGenerated prometheus.Counter
	eventsEmitted    *prometheus.CounterVec
	eventsSuppressed *prometheus.CounterVec
	licensesByStatus *prometheus.GaugeVec
	entitlementGap   prometheus.Gauge
}

var _ compliance.Recorder = (*Collector)(nil)

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		reportsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "license_compliance",
			Name:      "reports_generated_total",
			Help:      "Number of compliance reports generated.",
		}),
		eventsEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "license_compliance",
			Name:      "events_emitted_total",
			Help:      "Compliance events persisted, by event type.",
		}, []string{"event_type"}),
		eventsSuppressed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "license_compliance",
			Name:      "events_suppressed_total",
			Help:      "Compliance events skipped because one was already logged today.",
		}, []string{"event_type"}),
		licensesByStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "license_compliance",
			Name:      "licenses",
			Help:      "Licenses per compliance status in the latest report.",
		}, []string{"status"}),
		entitlementGap: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "license_compliance",
			Name:      "shortage_entitlements",
			Help:      "Sum of missing entitlements across under-licensed products in the latest report.",
		}),
	}

	c.registry.MustRegister(
		c.reportsGenerated,
		c.eventsEmitted,
		c.eventsSuppressed,
		c.licensesByStatus,
		c.entitlementGap,
		collectors.NewGoCollector(),
	)
	return c
}

func (c *Collector) Registry() *prometheus.Registry { return c.registry }

func (c *Collector) ReportGenerated(rows []model.ComplianceReportRow) {
	c.reportsGenerated.Inc()

	counts := make(map[string]int, len(compliance.AllStatuses))
	shortage := 0
	for _, row := range rows {
		counts[row.Status]++
		if row.Gap < 0 {
			shortage -= row.Gap
		}
	}
	for _, status := range compliance.AllStatuses {
		c.licensesByStatus.WithLabelValues(status.String()).Set(float64(counts[status.String()]))
	}
	c.entitlementGap.Set(float64(shortage))
}

func (c *Collector) EventEmitted(eventType string) {
	c.eventsEmitted.WithLabelValues(eventType).Inc()
}

func (c *Collector) EventSuppressed(eventType string) {
	c.eventsSuppressed.WithLabelValues(eventType).Inc()
}
