package dto

import "time"

// StrategyHourDTO 创作者表现最好的发布时段
type StrategyHourDTO struct {
	Hour              int     `json:"hour"`
	Weekday           int     `json:"weekday"`
	PostCount         int     `json:"post_count"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
}

// StrategyGroupDTO 创作者表现最好的内容维度（类型或分类）
type StrategyGroupDTO struct {
	Name              string  `json:"name"`
	PostCount         int     `json:"post_count"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
}

// StrategyReportDTO 单个创作者的策略建议报告
type StrategyReportDTO struct {
	UserID     uint64    `json:"user_id"`
	Username   string    `json:"username"`
	WindowDays int       `json:"window_days"`
	AsOf       time.Time `json:"as_of"`

	PostCount         int     `json:"post_count"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
	TotalVirality     float64 `json:"total_virality"`

	Performance string `json:"performance"`
	Segment     string `json:"segment"`
	ChurnRisk   string `json:"churn_risk"`

	TopPostingHours []*StrategyHourDTO  `json:"top_posting_hours"`
	TopContentTypes []*StrategyGroupDTO `json:"top_content_types"`
	TopCategories   []*StrategyGroupDTO `json:"top_categories"`

	Recommendations []string `json:"recommendations"`
}
