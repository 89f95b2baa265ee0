package dto

import "time"

// CreatorEntryDTO 创作者榜单单项
type CreatorEntryDTO struct {
	Rank              int     `json:"rank"`
	UserID            uint64  `json:"user_id"`
	Username          string  `json:"username"`
	AccountType       string  `json:"account_type"`
	FollowerCount     int     `json:"follower_count"`
	FollowingCount    int     `json:"following_count"`
	PostCount         int     `json:"post_count"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
	TotalVirality     float64 `json:"total_virality"`

	InfluenceScore *float64 `json:"influence_score"`
	InfluencerTier string   `json:"influencer_tier"`
	Segment        string   `json:"segment"`
	ChurnRisk      string   `json:"churn_risk"`
}

// CreatorReportDTO 创作者影响力报告
type CreatorReportDTO struct {
	WindowDays int                `json:"window_days"`
	AsOf       time.Time          `json:"as_of"`
	MinSample  int                `json:"min_sample"`
	Creators   []*CreatorEntryDTO `json:"creators"`
}
