package model

import (
	"time"
)

// UserEngagementMetric 用户每日互动快照
type UserEngagementMetric struct {
	ID                uint64    `gorm:"primaryKey"`
	UserID            uint64    `gorm:"not null;uniqueIndex:idx_user_date" json:"userId"`
	MetricDate        time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_date;column:metric_date" json:"metricDate"`
	PostsCreated      int       `gorm:"not null;default:0" json:"postsCreated"`
	LikesReceived     int       `gorm:"not null;default:0" json:"likesReceived"`
	CommentsReceived  int       `gorm:"not null;default:0" json:"commentsReceived"`
	SharesReceived    int       `gorm:"not null;default:0" json:"sharesReceived"`
	AvgEngagementRate float64   `gorm:"type:decimal(10,2);not null;default:0" json:"avgEngagementRate"`
	ReachCount        int       `gorm:"not null;default:0" json:"reachCount"`
	ImpressionsCount  int       `gorm:"not null;default:0" json:"impressionsCount"`
	FollowersGained   int       `gorm:"not null;default:0" json:"followersGained"`
	CreatedAt         time.Time `json:"createdAt"`
}

func (UserEngagementMetric) TableName() string {
	return "user_engagement_metrics"
}
