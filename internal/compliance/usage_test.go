package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"license-compliance-system/internal/model"
)

func TestIsMatch(t *testing.T) {
	assert.True(t, IsMatch("Visual Studio", "visual studio 2022 "))
	assert.True(t, IsMatch("visual studio 2022 ", "Visual Studio"))
	assert.True(t, IsMatch("  ZOOM ", "zoom"))
	assert.False(t, IsMatch("Excel", "Word"))
	assert.False(t, IsMatch("", "X"))
	assert.False(t, IsMatch("X", "   "))
}

func TestCountUsage(t *testing.T) {
	devices := []model.Device{
		device(1, "alice", "Zoom", "Zoom 5.1"),
		device(2, "alice", "Zoom"),
		device(3, "", "zoom"),
		device(4, "bob", "Slack"),
		device(5, "  ", "Zoom"),
	}

	tests := []struct {
		name        string
		licenseType string
		product     string
		want        int
	}{
		{"per_device_counts_each_device_once", "per_device", "Zoom", 4},
		{"per_user_skips_ownerless_devices", "Per-User", "Zoom", 1},
		{"concurrent_counts_every_installation", "concurrent", "Zoom", 5},
		{"subscription_counts_every_installation", "subscription", "Zoom", 5},
		{"unknown_type_falls_back_to_installations", "enterprise", "Zoom", 5},
		{"empty_type_falls_back_to_installations", "", "Zoom", 5},
		{"no_match", "per_device", "Photoshop", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lic := &model.SoftwareLicense{ProductName: tt.product, LicenseType: tt.licenseType}
			assert.Equal(t, tt.want, CountUsage(lic, devices))
		})
	}
}

func TestCountUsage_PerUserDistinctOwners(t *testing.T) {
	devices := []model.Device{
		device(1, "alice", "Office"),
		device(2, "bob", "Office"),
		device(3, "bob", "Office"),
		device(4, "carol"),
	}
	lic := &model.SoftwareLicense{ProductName: "office", LicenseType: "per_user"}
	assert.Equal(t, 2, CountUsage(lic, devices))
}
