package repository

import (
	"context"

	"license-compliance-system/internal/model"
)

func (s *GormStore) CreateLicense(ctx context.Context, license *model.SoftwareLicense) error {
	return s.db.WithContext(ctx).Create(license).Error
}

func (s *GormStore) DeleteLicense(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&model.SoftwareLicense{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateDevice 设备连同其安装记录一并写入
func (s *GormStore) CreateDevice(ctx context.Context, device *model.Device) error {
	return s.db.WithContext(ctx).Create(device).Error
}

func (s *GormStore) ListRenewals(ctx context.Context) ([]model.RenewalTask, error) {
	var tasks []model.RenewalTask
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *GormStore) CreateRenewal(ctx context.Context, task *model.RenewalTask) error {
	return s.db.WithContext(ctx).Create(task).Error
}
