package repository

import (
	"Prism/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserEngagementMetricRepo interface {
	// SaveOrUpdateMetric 采用 Upsert 逻辑。user_id + metric_date 已存在则更新各项数值
	SaveOrUpdateMetric(ctx context.Context, metric *model.UserEngagementMetric) error
	// GetMetricsByDays 获取用户最近 N 天的每日快照
	GetMetricsByDays(ctx context.Context, userID uint64, asOf time.Time, days int) ([]*model.UserEngagementMetric, error)
}

type userEngagementMetricRepoImpl struct {
	db *gorm.DB
}

func NewUserEngagementMetricRepo(db *gorm.DB) UserEngagementMetricRepo {
	return &userEngagementMetricRepoImpl{db: db}
}

func (r *userEngagementMetricRepoImpl) SaveOrUpdateMetric(ctx context.Context, metric *model.UserEngagementMetric) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "metric_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"posts_created",
			"likes_received",
			"comments_received",
			"shares_received",
			"avg_engagement_rate",
			"reach_count",
			"impressions_count",
			"followers_gained",
		}),
	}).Create(metric).Error
}

func (r *userEngagementMetricRepoImpl) GetMetricsByDays(ctx context.Context, userID uint64, asOf time.Time, days int) ([]*model.UserEngagementMetric, error) {
	metrics := make([]*model.UserEngagementMetric, 0)
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("metric_date > ? AND metric_date <= ?", asOf.AddDate(0, 0, -days), asOf).
		Order("metric_date ASC").
		Find(&metrics)
	if result.Error != nil {
		return nil, result.Error
	}
	return metrics, nil
}
