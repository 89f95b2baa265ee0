package es

import "time"

// ContentScoreES 写入 ES 的内容评分文档，供运营侧检索
type ContentScoreES struct {
	ContentID        uint64    `json:"content_id"`
	UserID           uint64    `json:"user_id"`
	Username         string    `json:"username"`
	ContentType      string    `json:"content_type"`
	ContentCategory  string    `json:"content_category"`
	EngagementRate   float64   `json:"engagement_rate"`
	ViralityScore    float64   `json:"virality_score"`
	ViralCoefficient *float64  `json:"viral_coefficient,omitempty"`
	QualityScore     *float64  `json:"quality_score,omitempty"`
	ViralStatus      string    `json:"viral_status"`
	QualityTier      string    `json:"quality_tier"`
	PostedAt         time.Time `json:"posted_at"`
	RefreshedAt      time.Time `json:"refreshed_at"`
}
