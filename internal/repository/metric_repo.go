package repository

import (
	"Prism/internal/analytics"
	"Prism/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PerformanceMetricRepo interface {
	// SaveOrUpdateMetric Upsert 逻辑：content_id 已存在则更新各项数值
	SaveOrUpdateMetric(ctx context.Context, metric *model.PerformanceMetric) error
	GetByContentID(ctx context.Context, contentID uint64) (*model.PerformanceMetric, error)
	// GetReferenceRates 参考窗口内所有内容的互动率序列，用于异常检测总体统计
	GetReferenceRates(ctx context.Context, w analytics.Window) (rates []float64, viralities []float64, err error)
}

type performanceMetricRepoImpl struct {
	db *gorm.DB
}

func NewPerformanceMetricRepo(db *gorm.DB) PerformanceMetricRepo {
	return &performanceMetricRepoImpl{db: db}
}

func (r *performanceMetricRepoImpl) SaveOrUpdateMetric(ctx context.Context, metric *model.PerformanceMetric) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "content_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"likes_count",
			"comments_count",
			"shares_count",
			"saves_count",
			"views_count",
			"reach_count",
			"impressions_count",
			"engagement_rate",
			"virality_score",
			"peak_engagement_time",
		}),
	}).Create(metric).Error
}

func (r *performanceMetricRepoImpl) GetByContentID(ctx context.Context, contentID uint64) (*model.PerformanceMetric, error) {
	var metric model.PerformanceMetric
	err := r.db.WithContext(ctx).Where("content_id = ?", contentID).First(&metric).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &metric, nil
}

func (r *performanceMetricRepoImpl) GetReferenceRates(ctx context.Context, w analytics.Window) ([]float64, []float64, error) {
	type refRow struct {
		EngagementRate float64 `gorm:"column:engagement_rate"`
		ViralityScore  float64 `gorm:"column:virality_score"`
	}

	rows := make([]*refRow, 0)
	err := r.db.WithContext(ctx).
		Table("content_performance_metrics m").
		Select("m.engagement_rate, m.virality_score").
		Joins("JOIN content_posts cp ON cp.id = m.content_id").
		Where("cp.created_at > ? AND cp.created_at <= ?", w.Start(), w.AsOf).
		Scan(&rows).Error
	if err != nil {
		return nil, nil, err
	}

	rates := make([]float64, 0, len(rows))
	viralities := make([]float64, 0, len(rows))
	for _, row := range rows {
		rates = append(rates, row.EngagementRate)
		viralities = append(viralities, row.ViralityScore)
	}
	return rates, viralities, nil
}
