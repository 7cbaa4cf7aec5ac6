package model

import "time"

// OperationLog 记录对库存与合规数据的写操作
type OperationLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index"`
	Action    string    `json:"action"` // create, delete, resolve, sync
	Target    string    `json:"target"` // license, device, event, renewal, report
	TargetID  string    `json:"target_id"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}
