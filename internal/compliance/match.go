package compliance

import (
	"strings"

	"license-compliance-system/internal/model"
)

// IsMatch 判断安装的产品名是否对应许可证产品名。
// 忽略大小写和首尾空白，任一方包含另一方即视为匹配（"Visual Studio" 匹配 "Visual Studio 2022"）。
// 共享通用词的无关产品可能误匹配，这是已接受的取舍。
func IsMatch(installedName, licenseName string) bool {
	installed := strings.ToLower(strings.TrimSpace(installedName))
	licensed := strings.ToLower(strings.TrimSpace(licenseName))
	if installed == "" || licensed == "" {
		return false
	}
	return installed == licensed ||
		strings.Contains(installed, licensed) ||
		strings.Contains(licensed, installed)
}

func deviceHasMatch(device *model.Device, productName string) bool {
	for i := range device.Installations {
		if IsMatch(device.Installations[i].ProductName, productName) {
			return true
		}
	}
	return false
}
