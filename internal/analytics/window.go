package analytics

import "time"

// Clock 报表时钟，注入依赖以保证结果可复现
type Clock interface {
	Now() time.Time
}

// SystemClock 系统时钟
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Window 回看窗口：以 AsOf 为终点的最近 Days 天
type Window struct {
	AsOf time.Time `json:"as_of"`
	Days int       `json:"days"`
}

// NewWindow 构造窗口
func NewWindow(asOf time.Time, days int) Window {
	return Window{AsOf: asOf, Days: days}
}

// Start 窗口起点
func (w Window) Start() time.Time {
	return w.AsOf.AddDate(0, 0, -w.Days)
}

// Contains 判断时刻是否落在窗口内（前开后闭]
func (w Window) Contains(t time.Time) bool {
	return t.After(w.Start()) && !t.After(w.AsOf)
}
