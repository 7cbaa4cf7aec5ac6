package service

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"license-compliance-system/internal/database"
	"license-compliance-system/internal/model"
)

func LogOperation(ctx context.Context, userID uint, action string, target string, targetID string, details interface{}) error {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return err
	}

	log := &model.OperationLog{
		UserID:    userID,
		Action:    action,
		Target:    target,
		TargetID:  targetID,
		Details:   string(detailsJSON),
		CreatedAt: time.Now(),
	}

	return database.DB.WithContext(ctx).Create(log).Error
}

// 获取操作日志列表，target 为空时不过滤
func GetOperationLogs(ctx context.Context, target string, page, pageSize int) ([]model.OperationLog, int64, error) {
	var logs []model.OperationLog
	var total int64

	query := func() *gorm.DB {
		db := database.DB.WithContext(ctx).Model(&model.OperationLog{})
		if target != "" {
			db = db.Where("target = ?", target)
		}
		return db
	}

	// 获取总数
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 获取分页数据
	offset := (page - 1) * pageSize
	if err := query().Order("created_at DESC").Order("id DESC").Offset(offset).Limit(pageSize).Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
