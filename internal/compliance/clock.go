package compliance

import "time"

// Clock 提供当前时间，测试中可替换以模拟跨天
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock 使用本地时间
var SystemClock Clock = systemClock{}

// ClockFunc 适配普通函数
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// StartOfDay 返回 t 所在时区当天零点
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
