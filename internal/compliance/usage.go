package compliance

import (
	"strings"

	"license-compliance-system/internal/model"
)

// CountUsage 按许可证的授权模型统计实际占用量
func CountUsage(license *model.SoftwareLicense, devices []model.Device) int {
	switch NormalizeLicenseType(license.LicenseType) {
	case PerDevice:
		return countDevices(license.ProductName, devices)
	case PerUser:
		return countUsers(license.ProductName, devices)
	default:
		return countInstallations(license.ProductName, devices)
	}
}

// 每台设备最多计一次
func countDevices(productName string, devices []model.Device) int {
	used := 0
	for i := range devices {
		if deviceHasMatch(&devices[i], productName) {
			used++
		}
	}
	return used
}

// 无归属人的设备不参与统计
func countUsers(productName string, devices []model.Device) int {
	users := make(map[string]struct{})
	for i := range devices {
		owner := strings.TrimSpace(devices[i].OwnerUserID)
		if owner == "" {
			continue
		}
		if deviceHasMatch(&devices[i], productName) {
			users[owner] = struct{}{}
		}
	}
	return len(users)
}

// concurrent、subscription 及未知类型：按安装记录逐条计数
func countInstallations(productName string, devices []model.Device) int {
	used := 0
	for i := range devices {
		for j := range devices[i].Installations {
			if IsMatch(devices[i].Installations[j].ProductName, productName) {
				used++
			}
		}
	}
	return used
}
