package model

import "time"

type Hashtag struct {
	ID              uint64  `gorm:"primaryKey"`
	TagName         string  `gorm:"type:varchar(100);not null;uniqueIndex:idx_tag_name" json:"tag_name"`
	Category        *string `gorm:"type:varchar(50)" json:"category"`
	PopularityScore float64 `gorm:"type:decimal(10,2);not null;default:0" json:"popularity_score"`
	// TrendScore 为空表示窗口内无指标数据，与 0 分语义不同
	TrendScore *float64   `gorm:"type:decimal(10,2)" json:"trend_score"`
	LastUsedAt *time.Time `json:"last_used_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (Hashtag) TableName() string {
	return "hashtags"
}
