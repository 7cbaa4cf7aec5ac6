package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"license-compliance-system/internal/config"
	"license-compliance-system/internal/database"
	"license-compliance-system/internal/model"
)

func TestReportValues(t *testing.T) {
	generatedAt := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	values := ReportValues([]model.ComplianceReportRow{
		{LicenseID: 1, ProductName: "Zoom", LicenseType: "per_device", TotalEntitlements: 2, UsedLicenses: 3, Gap: -1, Status: "Under-licensed"},
	}, generatedAt)

	require.Len(t, values, 2)
	assert.Equal(t, "Product", values[0][1])
	assert.Equal(t, []interface{}{uint(1), "Zoom", "per_device", 2, 3, -1, "Under-licensed", "2026-03-10T14:00:00Z"}, values[1])
}

func TestNewSheetSyncService_Disabled(t *testing.T) {
	svc, err := NewSheetSyncService(context.Background(), config.SheetsConfig{Enabled: false})
	require.NoError(t, err)
	assert.Nil(t, svc)

	// nil 服务为空操作
	assert.NoError(t, svc.SyncReport(context.Background(), nil, time.Now()))
}

func TestNewSheetSyncService_MissingCredentials(t *testing.T) {
	_, err := NewSheetSyncService(context.Background(), config.SheetsConfig{
		Enabled:         true,
		CredentialsPath: "/nonexistent/credentials.json",
		SpreadsheetID:   "sheet-id",
	})
	assert.Error(t, err)
}

func TestOperationLogs(t *testing.T) {
	database.InitTestDB()
	defer database.CleanTestDB()
	ctx := context.Background()

	require.NoError(t, LogOperation(ctx, 1, "create", "license", "1", map[string]string{"product": "Zoom"}))
	require.NoError(t, LogOperation(ctx, 1, "create", "device", "4", nil))
	require.NoError(t, LogOperation(ctx, 2, "resolve", "event", "9", map[string]string{"notes": "ok"}))

	logs, total, err := GetOperationLogs(ctx, "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, logs, 3)

	logs, total, err = GetOperationLogs(ctx, "license", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, `{"product":"Zoom"}`, logs[0].Details)
}
