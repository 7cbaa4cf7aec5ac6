package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"license-compliance-system/internal/compliance"
	"license-compliance-system/internal/model"
)

var ErrNotFound = errors.New("record not found")

// GormStore 基于 gorm 的库存与合规事件存储
type GormStore struct {
	db *gorm.DB
}

var (
	_ compliance.Store          = (*GormStore)(nil)
	_ compliance.SnapshotReader = (*GormStore)(nil)
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// ReadSnapshot 在同一个事务内执行 fn 中的所有读取
func (s *GormStore) ReadSnapshot(ctx context.Context, fn func(compliance.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func (s *GormStore) ListLicenses(ctx context.Context) ([]model.SoftwareLicense, error) {
	var licenses []model.SoftwareLicense
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&licenses).Error; err != nil {
		return nil, err
	}
	return licenses, nil
}

func (s *GormStore) ListDevicesWithInstallations(ctx context.Context) ([]model.Device, error) {
	var devices []model.Device
	err := s.db.WithContext(ctx).
		Preload("Installations", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Order("id ASC").
		Find(&devices).Error
	if err != nil {
		return nil, err
	}
	return devices, nil
}

// EventExists 时间统一按 UTC 存取，保证 sqlite 中按文本比较时顺序正确
func (s *GormStore) EventExists(ctx context.Context, licenseID uint, eventType string, since time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ComplianceEvent{}).
		Where("license_id = ? AND event_type = ? AND detected_at >= ?", licenseID, eventType, since.UTC()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) InsertEvent(ctx context.Context, event *model.ComplianceEvent) error {
	event.DetectedAt = event.DetectedAt.UTC()
	return s.db.WithContext(ctx).Create(event).Error
}

// ListRecentEvents 最新的告警在前
func (s *GormStore) ListRecentEvents(ctx context.Context, limit int) ([]model.ComplianceEvent, error) {
	var events []model.ComplianceEvent
	err := s.db.WithContext(ctx).
		Order("detected_at DESC").Order("id DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// ResolveEvent 由审计人员关闭告警
func (s *GormStore) ResolveEvent(ctx context.Context, id uint, resolvedBy, notes string, at time.Time) (*model.ComplianceEvent, error) {
	var event model.ComplianceEvent
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&event, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		resolvedAt := at.UTC()
		event.IsResolved = true
		event.ResolvedBy = resolvedBy
		event.ResolutionNotes = notes
		event.ResolvedAt = &resolvedAt
		return tx.Save(&event).Error
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}
