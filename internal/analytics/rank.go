package analytics

import "sort"

// DefaultMinSample 榜单默认最小样本量
// 样本不足的分组直接剔除而不是带着误导性的均值上榜，这是正确性
// 要求而非优化
const DefaultMinSample = 5

// GroupStat 单个分组的聚合结果
type GroupStat struct {
	Key               string  `json:"key"`
	Count             int     `json:"count"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
	TotalVirality     float64 `json:"total_virality"`
}

// FilterMinSample 剔除样本量不足的分组，count == min 保留
func FilterMinSample(groups []GroupStat, min int) []GroupStat {
	out := make([]GroupStat, 0, len(groups))
	for _, g := range groups {
		if g.Count >= min {
			out = append(out, g)
		}
	}
	return out
}

// SortLeaderboard 榜单排序
// 主键：平均互动率降序；并列时按累计传播分降序；仍并列按 Key 升序，
// 保证排序是稳定的全序
func SortLeaderboard(groups []GroupStat) {
	sort.Slice(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a.AvgEngagementRate != b.AvgEngagementRate {
			return a.AvgEngagementRate > b.AvgEngagementRate
		}
		if a.TotalVirality != b.TotalVirality {
			return a.TotalVirality > b.TotalVirality
		}
		return a.Key < b.Key
	})
}

// TopN 截取前 N 项，n <= 0 表示不截断
func TopN(groups []GroupStat, n int) []GroupStat {
	if n <= 0 || n >= len(groups) {
		return groups
	}
	return groups[:n]
}
