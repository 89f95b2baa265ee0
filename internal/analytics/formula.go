package analytics

import (
	"math"
	"time"
)

// Weights 评分公式权重
// 数值属于运营侧配置，需用真实数据回归验证，代码不对其含义做额外假设
type Weights struct {
	QualityRate     float64 `mapstructure:"quality_rate"`
	QualityVirality float64 `mapstructure:"quality_virality"`
	QualityLikes    float64 `mapstructure:"quality_likes"`
	QualityComments float64 `mapstructure:"quality_comments"`
	QualityShares   float64 `mapstructure:"quality_shares"`

	InfluenceRatio    float64 `mapstructure:"influence_ratio"`
	InfluenceRate     float64 `mapstructure:"influence_rate"`
	InfluenceVirality float64 `mapstructure:"influence_virality"`
}

// DefaultWeights 默认权重
func DefaultWeights() Weights {
	return Weights{
		QualityRate:     0.3,
		QualityVirality: 0.25,
		QualityLikes:    0.2,
		QualityComments: 0.15,
		QualityShares:   0.1,

		InfluenceRatio:    0.3,
		InfluenceRate:     0.4,
		InfluenceVirality: 0.3,
	}
}

// ViralCoefficient 二级传播系数：(分享/点赞) × (评论/点赞) × 传播分
// 点赞为 0 时无法计算，返回未定义
func ViralCoefficient(likes, comments, shares int, viralityScore float64) Score {
	if likes == 0 {
		return Undefined()
	}
	l := float64(likes)
	v := (float64(shares) / l) * (float64(comments) / l) * viralityScore
	return NewScore(v).Rounded()
}

// EngagementQuality 加权互动质量分，ln(1+x) 规避 log(0)
func (w Weights) EngagementQuality(engagementRate, viralityScore float64, likes, comments, shares int) Score {
	v := w.QualityRate*engagementRate +
		w.QualityVirality*viralityScore +
		w.QualityLikes*math.Log1p(float64(likes)) +
		w.QualityComments*math.Log1p(float64(comments)) +
		w.QualityShares*math.Log1p(float64(shares))
	return NewScore(v).Rounded()
}

// InfluenceScore 创作者影响力分：粉丝比 + 窗口内平均互动率 + 窗口内传播分总和
// 关注数为 0 时粉丝比无法计算，返回未定义
func (w Weights) InfluenceScore(followerCount, followingCount int, avgEngagementRate, totalViralityScore float64) Score {
	if followingCount == 0 {
		return Undefined()
	}
	ratio := float64(followerCount) / float64(followingCount)
	v := w.InfluenceRatio*ratio +
		w.InfluenceRate*avgEngagementRate +
		w.InfluenceVirality*totalViralityScore
	return NewScore(v).Rounded()
}

// EngagementVelocity 发布到互动峰值的耗时（小时），无峰值记录时返回未定义
func EngagementVelocity(createdAt time.Time, peakEngagementTime *time.Time) Score {
	if peakEngagementTime == nil {
		return Undefined()
	}
	hours := peakEngagementTime.Sub(createdAt).Hours()
	return NewScore(hours).Rounded()
}

// AnomalyZ 指标相对参考总体的标准分 |m-μ|/σ，σ 为 0 时返回未定义
func AnomalyZ(value, mean, stddev float64) Score {
	if stddev == 0 {
		return Undefined()
	}
	return NewScore(math.Abs(value-mean) / stddev)
}

// EngagementRate 原始计数刷新口径：(赞+评+转)/max(赞,1) × 100
func EngagementRate(likes, comments, shares int) float64 {
	denom := likes
	if denom == 0 {
		denom = 1
	}
	return Round2(float64(likes+comments+shares) / float64(denom) * 100)
}

// ViralityScore 原始计数刷新口径：0.4×转发 + 0.3×评论 + 0.3×收藏
func ViralityScore(shares, comments, saves int) float64 {
	return Round2(float64(shares)*0.4 + float64(comments)*0.3 + float64(saves)*0.3)
}

// HashtagPopularity 话题热度：0.6×7日使用次数 + 0.4×7日去重帖子数
func HashtagPopularity(usageCount7d, uniquePosts7d int) float64 {
	return Round2(float64(usageCount7d)*0.6 + float64(uniquePosts7d)*0.4)
}

// HashtagTrend 话题趋势分：0.5×平均互动率 + 0.5×平均传播分
// 窗口内无帖子时两项均值缺失，返回未定义
func HashtagTrend(avgEngagementRate, avgViralityScore Score) Score {
	if !avgEngagementRate.Valid || !avgViralityScore.Valid {
		return Undefined()
	}
	return NewScore(avgEngagementRate.Value*0.5 + avgViralityScore.Value*0.5).Rounded()
}
