package model

type ContentHashtag struct {
	ContentID uint64 `gorm:"primaryKey" json:"contentId"`
	HashtagID uint64 `gorm:"primaryKey;index:idx_hashtag_id" json:"hashtagId"`
	Position  int    `gorm:"not null;default:0" json:"position"`
}

func (ContentHashtag) TableName() string {
	return "content_hashtags"
}
