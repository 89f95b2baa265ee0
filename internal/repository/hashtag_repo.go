package repository

import (
	"Prism/internal/analytics"
	"Prism/internal/model"
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// HashtagUsageStatRow 话题在窗口内的使用聚合
type HashtagUsageStatRow struct {
	HashtagID         uint64   `gorm:"column:hashtag_id"`
	TagName           string   `gorm:"column:tag_name"`
	Category          *string  `gorm:"column:category"`
	UsageCount        int      `gorm:"column:usage_count"`
	UniquePosts       int      `gorm:"column:unique_posts"`
	AvgEngagementRate *float64 `gorm:"column:avg_engagement_rate"`
	AvgViralityScore  *float64 `gorm:"column:avg_virality_score"`
}

type HashtagRepo interface {
	GetByName(ctx context.Context, tagName string) (*model.Hashtag, error)
	// CreateIfAbsent 创建话题，命中唯一索引冲突视为已存在
	CreateIfAbsent(ctx context.Context, tag *model.Hashtag) error
	// LinkContent 建立内容与话题的关联，重复关联静默忽略
	LinkContent(ctx context.Context, contentID, hashtagID uint64, position int) error
	// GetUsageStats 全量话题 × 窗口内使用聚合；窗口内未被使用的话题均值为空
	GetUsageStats(ctx context.Context, w analytics.Window) ([]*HashtagUsageStatRow, error)
	// UpdateScores 刷新热度与趋势分，trend 为空写入 NULL
	UpdateScores(ctx context.Context, hashtagID uint64, popularity float64, trend *float64, lastUsedAt time.Time) error
	// ListTrending 按趋势分取前 N
	ListTrending(ctx context.Context, limit int) ([]*model.Hashtag, error)
}

type hashtagRepoImpl struct {
	db *gorm.DB
}

func NewHashtagRepo(db *gorm.DB) HashtagRepo {
	return &hashtagRepoImpl{db: db}
}

func (r *hashtagRepoImpl) GetByName(ctx context.Context, tagName string) (*model.Hashtag, error) {
	var tag model.Hashtag
	err := r.db.WithContext(ctx).Where("tag_name = ?", tagName).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (r *hashtagRepoImpl) CreateIfAbsent(ctx context.Context, tag *model.Hashtag) error {
	err := r.db.WithContext(ctx).Create(tag).Error
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return nil
		}
		return err
	}
	return nil
}

func (r *hashtagRepoImpl) LinkContent(ctx context.Context, contentID, hashtagID uint64, position int) error {
	link := &model.ContentHashtag{
		ContentID: contentID,
		HashtagID: hashtagID,
		Position:  position,
	}
	err := r.db.WithContext(ctx).Create(link).Error
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return nil
		}
		return err
	}
	return nil
}

func (r *hashtagRepoImpl) GetUsageStats(ctx context.Context, w analytics.Window) ([]*HashtagUsageStatRow, error) {
	rows := make([]*HashtagUsageStatRow, 0)
	err := r.db.WithContext(ctx).
		Table("hashtags h").
		Select(`h.id AS hashtag_id, h.tag_name, h.category,
			COUNT(cp.id) AS usage_count,
			COUNT(DISTINCT cp.id) AS unique_posts,
			AVG(m.engagement_rate) AS avg_engagement_rate,
			AVG(m.virality_score) AS avg_virality_score`).
		Joins("LEFT JOIN content_hashtags ch ON ch.hashtag_id = h.id").
		Joins("LEFT JOIN content_posts cp ON cp.id = ch.content_id AND cp.created_at > ? AND cp.created_at <= ?", w.Start(), w.AsOf).
		Joins("LEFT JOIN content_performance_metrics m ON m.content_id = cp.id").
		Group("h.id, h.tag_name, h.category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *hashtagRepoImpl) UpdateScores(ctx context.Context, hashtagID uint64, popularity float64, trend *float64, lastUsedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.Hashtag{}).
		Where("id = ?", hashtagID).
		Updates(map[string]interface{}{
			"popularity_score": popularity,
			"trend_score":      trend,
			"last_used_at":     lastUsedAt,
		}).Error
}

func (r *hashtagRepoImpl) ListTrending(ctx context.Context, limit int) ([]*model.Hashtag, error) {
	tags := make([]*model.Hashtag, 0, limit)
	err := r.db.WithContext(ctx).
		Order("trend_score DESC, popularity_score DESC, tag_name ASC").
		Limit(limit).
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
