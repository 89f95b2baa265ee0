package analytics

// Band 阈值档位，Min 为包含下界
type Band struct {
	Min   float64
	Label string
}

// Ladder 有序阈值阶梯
// 档位按下界从高到低排列，自上而下首个命中即返回，保证全实数域
// 唯一归类；未定义得分不进入任何数值档，而是路由到专用标签，
// 以便报表区分"零值"与"不可计算"
type Ladder struct {
	Bands     []Band
	Fallback  string
	Undefined string
}

// Classify 将得分映射为档位标签
func (l Ladder) Classify(s Score) string {
	if !s.Valid {
		return l.Undefined
	}
	for _, b := range l.Bands {
		if s.Value >= b.Min {
			return b.Label
		}
	}
	return l.Fallback
}
