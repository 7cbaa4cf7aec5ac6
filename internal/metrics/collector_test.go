package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"license-compliance-system/internal/model"
)

func TestCollector_ReportGenerated(t *testing.T) {
	c := NewCollector()
	c.ReportGenerated([]model.ComplianceReportRow{
		{Status: "Under-licensed", Gap: -3},
		{Status: "Under-licensed", Gap: -1},
		{Status: "Unused", Gap: 5},
		{Status: "Compliant", Gap: 0},
	})

	assert.Equal(t, float64(1), testutil.ToFloat64(c.reportsGenerated))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.licensesByStatus.WithLabelValues("Under-licensed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.licensesByStatus.WithLabelValues("Unused")))
	assert.Equal(t, float64(0), testutil.ToFloat64(c.licensesByStatus.WithLabelValues("Over-licensed")))
	assert.Equal(t, float64(4), testutil.ToFloat64(c.entitlementGap))
}

func TestCollector_Events(t *testing.T) {
	c := NewCollector()
	c.EventEmitted(model.EventTypeOverUse)
	c.EventSuppressed(model.EventTypeOverUse)
	c.EventSuppressed(model.EventTypeOverUse)

	assert.Equal(t, float64(1), testutil.ToFloat64(c.eventsEmitted.WithLabelValues(model.EventTypeOverUse)))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.eventsSuppressed.WithLabelValues(model.EventTypeOverUse)))
}
