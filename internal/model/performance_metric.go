package model

import (
	"time"
)

// PerformanceMetric 单条内容的表现指标，与 content_posts 一对一
// engagement_rate / virality_score 由刷新任务按固定口径重算，
// 报表侧只消费最新值；各计数均不为负
type PerformanceMetric struct {
	ID                 uint64     `gorm:"primaryKey"`
	ContentID          uint64     `gorm:"not null;uniqueIndex:idx_content_id" json:"content_id"`
	LikesCount         int        `gorm:"not null;default:0" json:"likes_count"`
	CommentsCount      int        `gorm:"not null;default:0" json:"comments_count"`
	SharesCount        int        `gorm:"not null;default:0" json:"shares_count"`
	SavesCount         int        `gorm:"not null;default:0" json:"saves_count"`
	ViewsCount         int        `gorm:"not null;default:0" json:"views_count"`
	ReachCount         int        `gorm:"not null;default:0" json:"reach_count"`
	ImpressionsCount   int        `gorm:"not null;default:0" json:"impressions_count"`
	EngagementRate     float64    `gorm:"type:decimal(10,2);not null;default:0" json:"engagement_rate"`
	ViralityScore      float64    `gorm:"type:decimal(10,2);not null;default:0" json:"virality_score"`
	PeakEngagementTime *time.Time `gorm:"column:peak_engagement_time" json:"peak_engagement_time"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (PerformanceMetric) TableName() string {
	return "content_performance_metrics"
}
