package compliance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"license-compliance-system/internal/model"
)

// Engine 合规引擎：统计用量、判定状态，并对违规许可证按天去重地写入审计事件
type Engine struct {
	store    Store
	clock    Clock
	recorder Recorder
	logger   *slog.Logger
	workers  int
}

type Option func(*Engine)

func WithClock(clock Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

func WithRecorder(recorder Recorder) Option {
	return func(e *Engine) {
		if recorder != nil {
			e.recorder = recorder
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithWorkers 设置并行评估许可证的协程数，小于 1 时按 1 处理
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}

func NewEngine(store Store, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		clock:    SystemClock,
		recorder: nopRecorder{},
		logger:   slog.Default(),
		workers:  1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GenerateReport 读取库存快照、评估并写入新事件，只返回报表行。
// 任一存储错误都会使整个调用失败，不返回部分报表。
func (e *Engine) GenerateReport(ctx context.Context) ([]model.ComplianceReportRow, error) {
	licenses, devices, err := e.loadInventory(ctx)
	if err != nil {
		return nil, err
	}

	rows, events, err := e.Evaluate(ctx, licenses, devices)
	if err != nil {
		return nil, err
	}

	e.logger.InfoContext(ctx, "compliance report generated",
		"licenses", len(licenses),
		"devices", len(devices),
		"new_events", len(events))
	return rows, nil
}

// Evaluate 计算报表，并为每个违规许可证尝试写入 overuse 事件
func (e *Engine) Evaluate(ctx context.Context, licenses []model.SoftwareLicense, devices []model.Device) ([]model.ComplianceReportRow, []model.ComplianceEvent, error) {
	rows, err := e.Assess(ctx, licenses, devices)
	if err != nil {
		return nil, nil, err
	}

	var events []model.ComplianceEvent
	for i := range rows {
		if !Status(rows[i].Status).Violation() {
			continue
		}
		event, err := e.logOverUse(ctx, &rows[i])
		if err != nil {
			return nil, nil, err
		}
		if event != nil {
			events = append(events, *event)
		}
	}

	e.recorder.ReportGenerated(rows)
	return rows, events, nil
}

// Assess 纯计算，不访问存储。结果顺序与输入许可证顺序一致。
func (e *Engine) Assess(ctx context.Context, licenses []model.SoftwareLicense, devices []model.Device) ([]model.ComplianceReportRow, error) {
	rows := make([]model.ComplianceReportRow, len(licenses))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := range licenses {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows[i] = AssessLicense(&licenses[i], devices)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// AssessLicense 计算单个许可证的报表行
func AssessLicense(license *model.SoftwareLicense, devices []model.Device) model.ComplianceReportRow {
	used := CountUsage(license, devices)
	status, gap := Classify(license.TotalEntitlements, used)
	return model.ComplianceReportRow{
		LicenseID:         license.ID,
		ProductName:       license.ProductName,
		LicenseType:       license.LicenseType,
		TotalEntitlements: license.TotalEntitlements,
		UsedLicenses:      used,
		Status:            status.String(),
		Gap:               gap,
	}
}

// logOverUse 当天已有同许可证同类型事件时跳过，返回 nil。
// 先查后写不是原子操作，并发评估可能产生重复行。
func (e *Engine) logOverUse(ctx context.Context, row *model.ComplianceReportRow) (*model.ComplianceEvent, error) {
	now := e.clock.Now()

	exists, err := e.store.EventExists(ctx, row.LicenseID, model.EventTypeOverUse, StartOfDay(now))
	if err != nil {
		return nil, fmt.Errorf("check existing events for license %d: %w", row.LicenseID, err)
	}
	if exists {
		e.recorder.EventSuppressed(model.EventTypeOverUse)
		e.logger.DebugContext(ctx, "compliance event suppressed",
			"license_id", row.LicenseID,
			"event_type", model.EventTypeOverUse)
		return nil, nil
	}

	event := &model.ComplianceEvent{
		Reference:  uuid.NewString(),
		LicenseID:  row.LicenseID,
		EventType:  model.EventTypeOverUse,
		Severity:   model.SeverityHigh,
		DetectedAt: now,
		Details: fmt.Sprintf("Compliance violation: %s is used by %d entities but only %d licenses are owned.",
			row.ProductName, row.UsedLicenses, row.TotalEntitlements),
	}
	if err := e.store.InsertEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("insert compliance event for license %d: %w", row.LicenseID, err)
	}

	e.recorder.EventEmitted(event.EventType)
	e.logger.WarnContext(ctx, "compliance violation detected",
		"license_id", row.LicenseID,
		"product", row.ProductName,
		"used", row.UsedLicenses,
		"owned", row.TotalEntitlements)
	return event, nil
}

func (e *Engine) loadInventory(ctx context.Context) ([]model.SoftwareLicense, []model.Device, error) {
	var (
		licenses []model.SoftwareLicense
		devices  []model.Device
	)
	read := func(s Store) error {
		var err error
		if licenses, err = s.ListLicenses(ctx); err != nil {
			return fmt.Errorf("list licenses: %w", err)
		}
		if devices, err = s.ListDevicesWithInstallations(ctx); err != nil {
			return fmt.Errorf("list devices: %w", err)
		}
		return nil
	}

	var err error
	if snap, ok := e.store.(SnapshotReader); ok {
		err = snap.ReadSnapshot(ctx, read)
	} else {
		err = read(e.store)
	}
	if err != nil {
		return nil, nil, err
	}
	return licenses, devices, nil
}
