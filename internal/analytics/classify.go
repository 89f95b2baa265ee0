package analytics

import "time"

// LabelInsufficientData 各阶梯共用的"数据不足"标签
const LabelInsufficientData = "Insufficient Data"

// ViralStatusLadder 传播状态阶梯
var ViralStatusLadder = Ladder{
	Bands: []Band{
		{Min: 2.0, Label: "Highly Viral"},
		{Min: 1.0, Label: "Viral"},
		{Min: 0.5, Label: "Trending"},
	},
	Fallback:  "Regular",
	Undefined: LabelInsufficientData,
}

// InfluencerTierLadder 影响力梯队阶梯
var InfluencerTierLadder = Ladder{
	Bands: []Band{
		{Min: 8.0, Label: "Top Influencer"},
		{Min: 6.0, Label: "Micro Influencer"},
		{Min: 4.0, Label: "Rising Influencer"},
	},
	Fallback:  "Emerging Creator",
	Undefined: LabelInsufficientData,
}

// QualityTierLadder 互动质量阶梯
var QualityTierLadder = Ladder{
	Bands: []Band{
		{Min: 8.0, Label: "Exceptional"},
		{Min: 6.0, Label: "High Quality"},
		{Min: 4.0, Label: "Good"},
		{Min: 2.0, Label: "Average"},
	},
	Fallback:  "Below Average",
	Undefined: LabelInsufficientData,
}

// PerformanceLadder 创作者表现阶梯，用于策略报告
var PerformanceLadder = Ladder{
	Bands: []Band{
		{Min: 8.0, Label: "Excellent"},
		{Min: 5.0, Label: "Good"},
		{Min: 3.0, Label: "Average"},
	},
	Fallback:  "Needs Improvement",
	Undefined: LabelInsufficientData,
}

// 异常等级阈值
const (
	AnomalyHighZ   = 2.0
	AnomalyMediumZ = 1.5
)

// AnomalyLevel 取各指标 z 分的最大值定级
// 返回 reportable=false 表示所有 z 分均低于上报阈值，报表路径应整行过滤
// 而非标记 Normal
func AnomalyLevel(zScores ...Score) (level string, reportable bool) {
	maxZ := Undefined()
	for _, z := range zScores {
		if z.Valid && (!maxZ.Valid || z.Value > maxZ.Value) {
			maxZ = z
		}
	}
	if !maxZ.Valid || maxZ.Value < AnomalyMediumZ {
		return "Normal", false
	}
	if maxZ.Value >= AnomalyHighZ {
		return "High", true
	}
	return "Medium", true
}

// segmentBand 用户分层档位：互动率与发帖数双阈值，须同时满足
type segmentBand struct {
	MinRate  float64
	MinPosts int
	Label    string
}

var segmentBands = []segmentBand{
	{MinRate: 8.0, MinPosts: 20, Label: "High Performer"},
	{MinRate: 5.0, MinPosts: 10, Label: "Active Creator"},
	{MinRate: 2.0, MinPosts: 5, Label: "Regular User"},
}

// ClassifyUserSegment 用户分层
// 复合阶梯：按文档顺序逐档评估互动率下限与发帖数下限的合取；
// 窗口内零发帖直接归为 Inactive User，不看任何比率
func ClassifyUserSegment(avgEngagementRate Score, postCount int) string {
	if postCount == 0 {
		return "Inactive User"
	}
	if !avgEngagementRate.Valid {
		return LabelInsufficientData
	}
	for _, b := range segmentBands {
		if avgEngagementRate.Value >= b.MinRate && postCount >= b.MinPosts {
			return b.Label
		}
	}
	return "Casual User"
}

// 流失风险天数阈值
const (
	churnHighDays   = 90
	churnMediumDays = 30
	churnLowDays    = 14
	newUserDays     = 30
)

// ClassifyChurnRisk 流失风险
// 从未发帖的用户按注册时长判定，避免把"新用户"误判为"已流失"
func ClassifyChurnRisk(asOf time.Time, lastPostAt *time.Time, registeredAt time.Time) string {
	if lastPostAt == nil {
		if asOf.Sub(registeredAt) < newUserDays*24*time.Hour {
			return "New User"
		}
		return "Never Active"
	}

	days := asOf.Sub(*lastPostAt).Hours() / 24
	switch {
	case days >= churnHighDays:
		return "High Risk"
	case days >= churnMediumDays:
		return "Medium Risk"
	case days >= churnLowDays:
		return "Low Risk"
	default:
		return "Active"
	}
}

// HashtagCountBucket 话题数量分桶，用于话题数量效果报告
func HashtagCountBucket(count int) string {
	switch {
	case count == 0:
		return "0"
	case count <= 3:
		return "1-3"
	case count <= 6:
		return "4-6"
	default:
		return "7+"
	}
}
