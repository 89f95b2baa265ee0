package model

import (
	"time"
)

// 账号类型
const (
	AccountTypePersonal   = "personal"
	AccountTypeBusiness   = "business"
	AccountTypeCreator    = "creator"
	AccountTypeInfluencer = "influencer"
)

type User struct {
	ID             uint64  `gorm:"primaryKey"`
	Username       string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_username"`
	Password       *string `gorm:"type:varchar(255)"`
	AccountType    string  `gorm:"type:varchar(20);not null;default:personal"`
	Role           string  `gorm:"type:varchar(20);not null;default:ANALYST"`
	FollowerCount  int     `gorm:"not null;default:0"`
	FollowingCount int     `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (User) TableName() string {
	return "users"
}
