package service

import (
	"Prism/internal/analytics"
	"Prism/internal/pkg/consts"
	"time"
)

// resolveWindow 校验回看天数并生成统计窗口
// days 为 0 时取默认窗口，非法值直接拒绝而不是静默回退
// asOf 为零值时以当前时刻为窗口终点
func resolveWindow(clock analytics.Clock, days int, asOf time.Time) (analytics.Window, error) {
	if days == 0 {
		days = consts.DefaultWindowDays
	}
	if !consts.AllowedWindowDays[days] {
		return analytics.Window{}, ErrWindowInvalid
	}
	if asOf.IsZero() {
		asOf = clock.Now()
	}
	return analytics.NewWindow(asOf, days), nil
}

// cacheable 指定了 asOf 的历史查询不进缓存，避免污染当日报表
func cacheable(asOf time.Time) bool {
	return asOf.IsZero()
}

// scorePtr 未定义的分值序列化为 null
func scorePtr(s analytics.Score) *float64 {
	if !s.Valid {
		return nil
	}
	v := s.Value
	return &v
}
