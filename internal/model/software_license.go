package model

import (
	"time"
)

// SoftwareLicense 软件许可证（授权数量以 TotalEntitlements 计）
type SoftwareLicense struct {
	ID                uint       `json:"id" gorm:"primaryKey"`
	ProductName       string     `json:"product_name" gorm:"not null;index"`
	Vendor            string     `json:"vendor" gorm:"not null"`
	LicenseType       string     `json:"license_type" gorm:"not null"` // Per-User, Per-Device, Concurrent, Subscription
	TotalEntitlements int        `json:"total_entitlements"`
	Cost              float64    `json:"cost"`
	ExpiryDate        *time.Time `json:"expiry_date"`
	PurchaseDate      time.Time  `json:"purchase_date"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
