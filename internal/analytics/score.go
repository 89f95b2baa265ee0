package analytics

import "math"

// Score 显式区分"已计算"与"不可计算"的得分
// 分母为零或输入缺失时产生未定义得分，绝不以 0 或 NaN 冒充
type Score struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// NewScore 构造一个已定义的得分
func NewScore(v float64) Score {
	return Score{Value: v, Valid: true}
}

// Undefined 构造一个未定义得分
func Undefined() Score {
	return Score{}
}

// Round2 保留两位小数
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rounded 返回保留两位小数后的得分，未定义得分原样返回
func (s Score) Rounded() Score {
	if !s.Valid {
		return s
	}
	return NewScore(Round2(s.Value))
}
