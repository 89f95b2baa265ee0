package repository

import (
	"Prism/internal/analytics"
	"Prism/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// CreatorStatRow 创作者在窗口内的聚合表现
// 无发帖的用户也会出现（LEFT JOIN），各聚合列为零值、LastPostAt 为空
type CreatorStatRow struct {
	UserID            uint64     `gorm:"column:user_id"`
	Username          string     `gorm:"column:username"`
	AccountType       string     `gorm:"column:account_type"`
	FollowerCount     int        `gorm:"column:follower_count"`
	FollowingCount    int        `gorm:"column:following_count"`
	RegisteredAt      time.Time  `gorm:"column:registered_at"`
	PostCount         int        `gorm:"column:post_count"`
	AvgEngagementRate float64    `gorm:"column:avg_engagement_rate"`
	TotalVirality     float64    `gorm:"column:total_virality"`
	LastPostAt        *time.Time `gorm:"column:last_post_at"`
}

type UserRepo interface {
	GetByID(ctx context.Context, id uint64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ListIDs(ctx context.Context) ([]uint64, error)
	// GetCreatorStats 全量用户 × 窗口内发帖聚合
	GetCreatorStats(ctx context.Context, w analytics.Window) ([]*CreatorStatRow, error)
	// GetCreatorStat 单个用户的窗口聚合
	GetCreatorStat(ctx context.Context, userID uint64, w analytics.Window) (*CreatorStatRow, error)
	// UpdateFollowerCounts 刷新粉丝/关注计数
	UpdateFollowerCounts(ctx context.Context, userID uint64, followers, following int) error
}

type userRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &userRepoImpl{db: db}
}

func (r *userRepoImpl) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepoImpl) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepoImpl) ListIDs(ctx context.Context) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *userRepoImpl) GetCreatorStats(ctx context.Context, w analytics.Window) ([]*CreatorStatRow, error) {
	rows := make([]*CreatorStatRow, 0)
	err := r.db.WithContext(ctx).
		Table("users u").
		Select(`u.id AS user_id, u.username, u.account_type, u.follower_count, u.following_count,
			u.created_at AS registered_at,
			COUNT(cp.id) AS post_count,
			COALESCE(AVG(m.engagement_rate), 0) AS avg_engagement_rate,
			COALESCE(SUM(m.virality_score), 0) AS total_virality,
			MAX(cp.created_at) AS last_post_at`).
		Joins("LEFT JOIN content_posts cp ON cp.user_id = u.id AND cp.created_at > ? AND cp.created_at <= ?", w.Start(), w.AsOf).
		Joins("LEFT JOIN content_performance_metrics m ON m.content_id = cp.id").
		Group("u.id, u.username, u.account_type, u.follower_count, u.following_count, u.created_at").
		Order("u.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *userRepoImpl) GetCreatorStat(ctx context.Context, userID uint64, w analytics.Window) (*CreatorStatRow, error) {
	var row CreatorStatRow
	err := r.db.WithContext(ctx).
		Table("users u").
		Select(`u.id AS user_id, u.username, u.account_type, u.follower_count, u.following_count,
			u.created_at AS registered_at,
			COUNT(cp.id) AS post_count,
			COALESCE(AVG(m.engagement_rate), 0) AS avg_engagement_rate,
			COALESCE(SUM(m.virality_score), 0) AS total_virality,
			MAX(cp.created_at) AS last_post_at`).
		Joins("LEFT JOIN content_posts cp ON cp.user_id = u.id AND cp.created_at > ? AND cp.created_at <= ?", w.Start(), w.AsOf).
		Joins("LEFT JOIN content_performance_metrics m ON m.content_id = cp.id").
		Where("u.id = ?", userID).
		Group("u.id, u.username, u.account_type, u.follower_count, u.following_count, u.created_at").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.UserID == 0 {
		return nil, nil
	}
	return &row, nil
}

func (r *userRepoImpl) UpdateFollowerCounts(ctx context.Context, userID uint64, followers, following int) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"follower_count":  followers,
			"following_count": following,
		}).Error
}
