package model

// ComplianceReportRow 合规报表行，每次请求重新计算，不落库
type ComplianceReportRow struct {
	LicenseID         uint   `json:"license_id"`
	ProductName       string `json:"product_name"`
	LicenseType       string `json:"license_type"`
	TotalEntitlements int    `json:"total_entitlements"`
	UsedLicenses      int    `json:"used_licenses"`
	Status            string `json:"status"`
	Gap               int    `json:"gap"` // 正数为富余，负数为短缺
}
