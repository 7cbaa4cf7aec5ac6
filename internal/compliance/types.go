package compliance

import "strings"

// LicenseType 授权模型
type LicenseType string

const (
	PerDevice    LicenseType = "per_device"
	PerUser      LicenseType = "per_user"
	Concurrent   LicenseType = "concurrent"
	Subscription LicenseType = "subscription"
)

var separatorReplacer = strings.NewReplacer("-", "_", " ", "_", ".", "_")

// NormalizeLicenseType 将任意输入映射到四种授权模型之一，无法识别的按 subscription 处理
func NormalizeLicenseType(raw string) LicenseType {
	key := separatorReplacer.Replace(strings.ToLower(strings.TrimSpace(raw)))
	for strings.Contains(key, "__") {
		key = strings.ReplaceAll(key, "__", "_")
	}
	switch LicenseType(key) {
	case PerDevice, "perdevice":
		return PerDevice
	case PerUser, "peruser", "named_user":
		return PerUser
	case Concurrent:
		return Concurrent
	default:
		return Subscription
	}
}

// Status 合规状态，字符串值为对外契约，仪表盘直接依赖
type Status string

const (
	StatusUnderLicensed Status = "Under-licensed"
	StatusUnused        Status = "Unused"
	StatusOverLicensed  Status = "Over-licensed"
	StatusCompliant     Status = "Compliant"
)

// AllStatuses 按判定优先级排列
var AllStatuses = []Status{StatusUnderLicensed, StatusUnused, StatusOverLicensed, StatusCompliant}

func (s Status) String() string { return string(s) }

// Violation 是否需要产生审计事件
func (s Status) Violation() bool { return s == StatusUnderLicensed }

// Classify 计算缺口并按优先级判定状态：缺口为负 > 未使用 > 富余 > 合规
func Classify(totalEntitlements, used int) (Status, int) {
	gap := totalEntitlements - used
	switch {
	case gap < 0:
		return StatusUnderLicensed, gap
	case used == 0 && totalEntitlements > 0:
		return StatusUnused, gap
	case gap > 0:
		return StatusOverLicensed, gap
	default:
		return StatusCompliant, gap
	}
}
