package model

import "time"

// 事件类型
const (
	EventTypeOverUse = "overuse"
	EventTypeExpiry  = "expiry"
	EventTypeUnused  = "unused"
)

// 严重程度
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// ComplianceEvent 合规审计事件，仅由合规引擎创建
type ComplianceEvent struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Reference       string     `json:"reference" gorm:"uniqueIndex"`
	LicenseID       uint       `json:"license_id" gorm:"index:idx_event_dedup"`
	EventType       string     `json:"event_type" gorm:"not null;index:idx_event_dedup"`
	Severity        string     `json:"severity" gorm:"not null"`
	DetectedAt      time.Time  `json:"detected_at" gorm:"index:idx_event_dedup"`
	Details         string     `json:"details"`
	IsResolved      bool       `json:"is_resolved" gorm:"default:false"`
	ResolvedBy      string     `json:"resolved_by"`
	ResolutionNotes string     `json:"resolution_notes"`
	ResolvedAt      *time.Time `json:"resolved_at"`
}
