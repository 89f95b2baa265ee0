package dto

import "time"

// HashtagEntryDTO 话题榜单单项
type HashtagEntryDTO struct {
	TagName         string   `json:"tag_name"`
	Category        *string  `json:"category"`
	UsageCount      int      `json:"usage_count"`
	UniquePosts     int      `json:"unique_posts"`
	PopularityScore float64  `json:"popularity_score"`
	TrendScore      *float64 `json:"trend_score"`
}

// HashtagBucketDTO 话题数量分桶效果
type HashtagBucketDTO struct {
	Bucket            string  `json:"bucket"`
	PostCount         int     `json:"post_count"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
}

// HashtagReportDTO 话题表现报告
type HashtagReportDTO struct {
	WindowDays  int                 `json:"window_days"`
	AsOf        time.Time           `json:"as_of"`
	Trending    []*HashtagEntryDTO  `json:"trending"`
	CountEffect []*HashtagBucketDTO `json:"count_effect"`
}
