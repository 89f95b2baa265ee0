package dto

import "time"

// LeaderboardEntryDTO 榜单单项
type LeaderboardEntryDTO struct {
	Rank              int     `json:"rank"`
	Key               string  `json:"key"`
	PostCount         int     `json:"post_count"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
	TotalVirality     float64 `json:"total_virality"`
	Performance       string  `json:"performance"`
}

// LeaderboardDTO 分组榜单（分类 / 内容类型）
type LeaderboardDTO struct {
	Dimension  string                 `json:"dimension"`
	WindowDays int                    `json:"window_days"`
	AsOf       time.Time              `json:"as_of"`
	MinSample  int                    `json:"min_sample"`
	Entries    []*LeaderboardEntryDTO `json:"entries"`
}
