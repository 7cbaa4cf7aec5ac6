package compliance

import (
	"context"
	"time"

	"license-compliance-system/internal/model"
)

// Store 合规引擎所需的最小存储能力
type Store interface {
	ListLicenses(ctx context.Context) ([]model.SoftwareLicense, error)
	ListDevicesWithInstallations(ctx context.Context) ([]model.Device, error)
	EventExists(ctx context.Context, licenseID uint, eventType string, since time.Time) (bool, error)
	InsertEvent(ctx context.Context, event *model.ComplianceEvent) error
}

// SnapshotReader 由能够在单个读事务内完成多次读取的存储实现
type SnapshotReader interface {
	ReadSnapshot(ctx context.Context, fn func(Store) error) error
}

// Recorder 接收引擎运行指标
type Recorder interface {
	ReportGenerated(rows []model.ComplianceReportRow)
	EventEmitted(eventType string)
	EventSuppressed(eventType string)
}

type nopRecorder struct{}

func (nopRecorder) ReportGenerated([]model.ComplianceReportRow) {}
func (nopRecorder) EventEmitted(string)                        {}
func (nopRecorder) EventSuppressed(string)                     {}
