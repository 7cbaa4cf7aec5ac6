package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLicenseType(t *testing.T) {
	tests := []struct {
		raw  string
		want LicenseType
	}{
		{"per_device", PerDevice},
		{"Per-Device", PerDevice},
		{" PER DEVICE ", PerDevice},
		{"perdevice", PerDevice},
		{"Per-User", PerUser},
		{"per_user", PerUser},
		{"Named User", PerUser},
		{"Concurrent", Concurrent},
		{"subscription", Subscription},
		{"", Subscription},
		{"site-wide", Subscription},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLicenseType(tt.raw))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		used       int
		wantStatus Status
		wantGap    int
	}{
		{"usage_exceeds_entitlements", 2, 3, StatusUnderLicensed, -1},
		{"nothing_installed", 5, 0, StatusUnused, 5},
		{"surplus", 5, 2, StatusOverLicensed, 3},
		{"exact", 3, 3, StatusCompliant, 0},
		{"zero_entitlements_zero_usage", 0, 0, StatusCompliant, 0},
		{"zero_entitlements_with_usage", 0, 1, StatusUnderLicensed, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, gap := Classify(tt.total, tt.used)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantGap, gap)
			assert.Equal(t, tt.total-tt.used, gap)
		})
	}
}

func TestStatusLabels(t *testing.T) {
	// 仪表盘依赖这四个字面值
	assert.Equal(t, "Under-licensed", StatusUnderLicensed.String())
	assert.Equal(t, "Unused", StatusUnused.String())
	assert.Equal(t, "Over-licensed", StatusOverLicensed.String())
	assert.Equal(t, "Compliant", StatusCompliant.String())
	assert.True(t, StatusUnderLicensed.Violation())
	assert.False(t, StatusUnused.Violation())
}
