package model

import (
	"time"
)

// 内容类型
const (
	ContentTypePhoto    = "photo"
	ContentTypeVideo    = "video"
	ContentTypeCarousel = "carousel"
	ContentTypeStory    = "story"
	ContentTypeReel     = "reel"
)

type ContentPost struct {
	ID              uint64    `gorm:"primaryKey"`
	UserID          uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	ContentType     string    `gorm:"type:varchar(20);not null;index:idx_content_type" json:"content_type"`
	ContentCategory string    `gorm:"type:varchar(50);index:idx_content_category" json:"content_category"`
	Caption         string    `gorm:"type:varchar(2200)" json:"caption"`
	IsPromoted      bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_promoted"`
	CreatedAt       time.Time `gorm:"index:idx_created_at" json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// 关联关系
	User    User               `gorm:"foreignKey:UserID;references:ID"`
	Metrics *PerformanceMetric `gorm:"foreignKey:ContentID;references:ID"`
}

func (ContentPost) TableName() string {
	return "content_posts"
}
