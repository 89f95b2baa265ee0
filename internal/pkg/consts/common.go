package consts

// 报表支持的回看窗口天数
var AllowedWindowDays = map[int]bool{
	7:  true,
	14: true,
	30: true,
	90: true,
}

const (
	DefaultWindowDays = 30
	TrendingLimit     = 20
)
