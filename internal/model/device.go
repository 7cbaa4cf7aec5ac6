package model

import "time"

// Device 终端设备，拥有其安装记录
type Device struct {
	ID            uint                `json:"id" gorm:"primaryKey"`
	Hostname      string              `json:"hostname" gorm:"not null"`
	OwnerUserID   string              `json:"owner_user_id"`
	DeviceType    string              `json:"device_type" gorm:"not null"` // Laptop, Server
	OS            string              `json:"os"`
	LastCheckIn   time.Time           `json:"last_check_in"`
	Installations []InstalledSoftware `json:"installations" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

type InstalledSoftware struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	DeviceID    uint      `json:"device_id" gorm:"index"`
	ProductName string    `json:"product_name" gorm:"not null"`
	Version     string    `json:"version"`
	InstallDate time.Time `json:"install_date"`
}
