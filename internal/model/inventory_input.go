package model

import "time"

// LicenseInput 创建许可证的请求体
type LicenseInput struct {
	ProductName       string     `json:"product_name" validate:"required"`
	Vendor            string     `json:"vendor" validate:"required"`
	LicenseType       string     `json:"license_type" validate:"required"`
	TotalEntitlements int        `json:"total_entitlements" validate:"gte=0"`
	Cost              float64    `json:"cost" validate:"gte=0"`
	ExpiryDate        *time.Time `json:"expiry_date"`
	PurchaseDate      *time.Time `json:"purchase_date"`
}

// DeviceInput 设备入网请求体，可携带安装记录
type DeviceInput struct {
	Hostname      string              `json:"hostname" validate:"required"`
	OwnerUserID   string              `json:"owner_user_id"`
	DeviceType    string              `json:"device_type" validate:"required"`
	OS            string              `json:"os"`
	Installations []InstallationInput `json:"installations" validate:"dive"`
}

type InstallationInput struct {
	ProductName string     `json:"product_name" validate:"required"`
	Version     string     `json:"version"`
	InstallDate *time.Time `json:"install_date"`
}

type RenewalTaskInput struct {
	LicenseID      uint       `json:"license_id" validate:"required"`
	Status         string     `json:"status" validate:"required,oneof=Pending QuoteRequested Approved"`
	AssignedTo     string     `json:"assigned_to"`
	DueDate        *time.Time `json:"due_date"`
	CostEstimate   float64    `json:"cost_estimate" validate:"gte=0"`
	QuoteReference string     `json:"quote_reference"`
}

type ResolveEventInput struct {
	Notes string `json:"notes" validate:"required"`
}
