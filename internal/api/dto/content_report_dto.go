package dto

import "time"

// ContentReportDTO 单条内容的评分与分级报告
type ContentReportDTO struct {
	ContentID       uint64    `json:"content_id"`
	UserID          uint64    `json:"user_id"`
	ContentType     string    `json:"content_type"`
	ContentCategory string    `json:"content_category"`
	PostedAt        time.Time `json:"posted_at"`

	LikesCount    int `json:"likes_count"`
	CommentsCount int `json:"comments_count"`
	SharesCount   int `json:"shares_count"`
	SavesCount    int `json:"saves_count"`
	ViewsCount    int `json:"views_count"`

	EngagementRate float64 `json:"engagement_rate"`
	ViralityScore  float64 `json:"virality_score"`

	// 派生分：分母缺失时为 null 而不是 0
	ViralCoefficient *float64 `json:"viral_coefficient"`
	QualityScore     *float64 `json:"quality_score"`
	VelocityHours    *float64 `json:"velocity_hours"`

	ViralStatus string `json:"viral_status"`
	QualityTier string `json:"quality_tier"`
}

// ContentWindowReportDTO 窗口内全部内容的评分列表
type ContentWindowReportDTO struct {
	WindowDays int                 `json:"window_days"`
	AsOf       time.Time           `json:"as_of"`
	Total      int                 `json:"total"`
	Posts      []*ContentReportDTO `json:"posts"`
}
