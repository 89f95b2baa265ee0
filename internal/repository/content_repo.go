package repository

import (
	"Prism/internal/analytics"
	"Prism/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ContentMetricRow 内容与其表现指标的联表行
type ContentMetricRow struct {
	ContentID          uint64     `gorm:"column:content_id"`
	UserID             uint64     `gorm:"column:user_id"`
	ContentType        string     `gorm:"column:content_type"`
	ContentCategory    string     `gorm:"column:content_category"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	LikesCount         int        `gorm:"column:likes_count"`
	CommentsCount      int        `gorm:"column:comments_count"`
	SharesCount        int        `gorm:"column:shares_count"`
	SavesCount         int        `gorm:"column:saves_count"`
	ViewsCount         int        `gorm:"column:views_count"`
	ReachCount         int        `gorm:"column:reach_count"`
	ImpressionsCount   int        `gorm:"column:impressions_count"`
	EngagementRate     float64    `gorm:"column:engagement_rate"`
	ViralityScore      float64    `gorm:"column:virality_score"`
	PeakEngagementTime *time.Time `gorm:"column:peak_engagement_time"`
}

// GroupStatRow 单维度分组聚合行
type GroupStatRow struct {
	GroupKey          string  `gorm:"column:group_key"`
	PostCount         int     `gorm:"column:post_count"`
	AvgEngagementRate float64 `gorm:"column:avg_engagement_rate"`
	TotalVirality     float64 `gorm:"column:total_virality"`
}

// TimingStatRow 发布时段聚合行
type TimingStatRow struct {
	PostingHour       int     `gorm:"column:posting_hour"`
	PostingWeekday    int     `gorm:"column:posting_weekday"`
	PostCount         int     `gorm:"column:post_count"`
	AvgEngagementRate float64 `gorm:"column:avg_engagement_rate"`
	TotalVirality     float64 `gorm:"column:total_virality"`
}

// HashtagUsageRow 每条内容的话题数量
type HashtagUsageRow struct {
	ContentID    uint64 `gorm:"column:content_id"`
	HashtagCount int    `gorm:"column:hashtag_count"`
}

// UserDayStatRow 用户单日发帖与互动聚合
type UserDayStatRow struct {
	PostsCreated      int     `gorm:"column:posts_created"`
	LikesReceived     int     `gorm:"column:likes_received"`
	CommentsReceived  int     `gorm:"column:comments_received"`
	SharesReceived    int     `gorm:"column:shares_received"`
	AvgEngagementRate float64 `gorm:"column:avg_engagement_rate"`
	ReachCount        int     `gorm:"column:reach_count"`
	ImpressionsCount  int     `gorm:"column:impressions_count"`
}

type ContentRepo interface {
	GetPost(ctx context.Context, id uint64) (*model.ContentPost, error)
	// GetContentWithMetrics 窗口内全部内容及其指标快照
	GetContentWithMetrics(ctx context.Context, w analytics.Window) ([]*ContentMetricRow, error)
	// GetCategoryStats 按内容分类聚合
	GetCategoryStats(ctx context.Context, w analytics.Window) ([]*GroupStatRow, error)
	// GetContentTypeStats 按内容类型聚合
	GetContentTypeStats(ctx context.Context, w analytics.Window) ([]*GroupStatRow, error)
	// GetTimingStats 按发布小时 × 星期聚合
	GetTimingStats(ctx context.Context, w analytics.Window) ([]*TimingStatRow, error)
	// GetHashtagCounts 窗口内每条内容关联的话题数（含 0 个话题的内容）
	GetHashtagCounts(ctx context.Context, w analytics.Window) ([]*HashtagUsageRow, error)
	// GetUserDayStats 用户单日发帖聚合，(day, day+1] 为统计区间
	GetUserDayStats(ctx context.Context, userID uint64, day time.Time) (*UserDayStatRow, error)
	// GetUserTimingStats 单个用户的发布时段聚合
	GetUserTimingStats(ctx context.Context, userID uint64, w analytics.Window) ([]*TimingStatRow, error)
	// GetUserCategoryStats 单个用户按内容分类聚合
	GetUserCategoryStats(ctx context.Context, userID uint64, w analytics.Window) ([]*GroupStatRow, error)
	// GetUserContentTypeStats 单个用户按内容类型聚合
	GetUserContentTypeStats(ctx context.Context, userID uint64, w analytics.Window) ([]*GroupStatRow, error)
}

type contentRepoImpl struct {
	db *gorm.DB
}

func NewContentRepo(db *gorm.DB) ContentRepo {
	return &contentRepoImpl{db: db}
}

func (r *contentRepoImpl) GetPost(ctx context.Context, id uint64) (*model.ContentPost, error) {
	var post model.ContentPost
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *contentRepoImpl) GetContentWithMetrics(ctx context.Context, w analytics.Window) ([]*ContentMetricRow, error) {
	rows := make([]*ContentMetricRow, 0)
	err := r.db.WithContext(ctx).
		Table("content_posts cp").
		Select(`cp.id AS content_id, cp.user_id, cp.content_type, cp.content_category, cp.created_at,
			m.likes_count, m.comments_count, m.shares_count, m.saves_count,
			m.views_count, m.reach_count, m.impressions_count, m.engagement_rate, m.virality_score,
			m.peak_engagement_time`).
		Joins("JOIN content_performance_metrics m ON m.content_id = cp.id").
		Where("cp.created_at > ? AND cp.created_at <= ?", w.Start(), w.AsOf).
		Order("cp.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *contentRepoImpl) GetCategoryStats(ctx context.Context, w analytics.Window) ([]*GroupStatRow, error) {
	return r.groupStats(ctx, w, "cp.content_category")
}

func (r *contentRepoImpl) GetContentTypeStats(ctx context.Context, w analytics.Window) ([]*GroupStatRow, error) {
	return r.groupStats(ctx, w, "cp.content_type")
}

// groupStats 单维度聚合，排序与最小样本过滤留给上层统一处理
func (r *contentRepoImpl) groupStats(ctx context.Context, w analytics.Window, column string) ([]*GroupStatRow, error) {
	rows := make([]*GroupStatRow, 0)
	err := r.db.WithContext(ctx).
		Table("content_posts cp").
		Select(column+` AS group_key, COUNT(*) AS post_count,
			AVG(m.engagement_rate) AS avg_engagement_rate,
			SUM(m.virality_score) AS total_virality`).
		Joins("JOIN content_performance_metrics m ON m.content_id = cp.id").
		Where("cp.created_at > ? AND cp.created_at <= ?", w.Start(), w.AsOf).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *contentRepoImpl) GetTimingStats(ctx context.Context, w analytics.Window) ([]*TimingStatRow, error) {
	rows := make([]*TimingStatRow, 0)
	err := r.db.WithContext(ctx).
		Table("content_posts cp").
		Select(`HOUR(cp.created_at) AS posting_hour, WEEKDAY(cp.created_at) AS posting_weekday,
			COUNT(*) AS post_count,
			AVG(m.engagement_rate) AS avg_engagement_rate,
			SUM(m.virality_score) AS total_virality`).
		Joins("JOIN content_performance_metrics m ON m.content_id = cp.id").
		Where("cp.created_at > ? AND cp.created_at <= ?", w.Start(), w.AsOf).
		Group("posting_hour, posting_weekday").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *contentRepoImpl) GetUserDayStats(ctx context.Context, userID uint64, day time.Time) (*UserDayStatRow, error) {
	var row UserDayStatRow
	err := r.db.WithContext(ctx).
		Table("content_posts cp").
		Select(`COUNT(cp.id) AS posts_created,
			COALESCE(SUM(m.likes_count), 0) AS likes_received,
			COALESCE(SUM(m.comments_count), 0) AS comments_received,
			COALESCE(SUM(m.shares_count), 0) AS shares_received,
			COALESCE(AVG(m.engagement_rate), 0) AS avg_engagement_rate,
			COALESCE(SUM(m.reach_count), 0) AS reach_count,
			COALESCE(SUM(m.impressions_count), 0) AS impressions_count`).
		Joins("LEFT JOIN content_performance_metrics m ON m.content_id = cp.id").
		Where("cp.user_id = ?", userID).
		Where("cp.created_at > ? AND cp.created_at <= ?", day, day.AddDate(0, 0, 1)).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *contentRepoImpl) GetUserTimingStats(ctx context.Context, userID uint64, w analytics.Window) ([]*TimingStatRow, error) {
	rows := make([]*TimingStatRow, 0)
	err := r.db.WithContext(ctx).
		Table("content_posts cp").
		Select(`HOUR(cp.created_at) AS posting_hour, WEEKDAY(cp.created_at) AS posting_weekday,
			COUNT(*) AS post_count,
			AVG(m.engagement_rate) AS avg_engagement_rate,
			SUM(m.virality_score) AS total_virality`).
		Joins("JOIN content_performance_metrics m ON m.content_id = cp.id").
		Where("cp.user_id = ?", userID).
		Where("cp.created_at > ? AND cp.created_at <= ?", w.Start(), w.AsOf).
		Group("posting_hour, posting_weekday").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *contentRepoImpl) GetUserCategoryStats(ctx context.Context, userID uint64, w analytics.Window) ([]*GroupStatRow, error) {
	return r.userGroupStats(ctx, userID, w, "cp.content_category")
}

func (r *contentRepoImpl) GetUserContentTypeStats(ctx context.Context, userID uint64, w analytics.Window) ([]*GroupStatRow, error) {
	return r.userGroupStats(ctx, userID, w, "cp.content_type")
}

func (r *contentRepoImpl) userGroupStats(ctx context.Context, userID uint64, w analytics.Window, column string) ([]*GroupStatRow, error) {
	rows := make([]*GroupStatRow, 0)
	err := r.db.WithContext(ctx).
		Table("content_posts cp").
		Select(column+` AS group_key, COUNT(*) AS post_count,
			AVG(m.engagement_rate) AS avg_engagement_rate,
			SUM(m.virality_score) AS total_virality`).
		Joins("JOIN content_performance_metrics m ON m.content_id = cp.id").
		Where("cp.user_id = ?", userID).
		Where("cp.created_at > ? AND cp.created_at <= ?", w.Start(), w.AsOf).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *contentRepoImpl) GetHashtagCounts(ctx context.Context, w analytics.Window) ([]*HashtagUsageRow, error) {
	rows := make([]*HashtagUsageRow, 0)
	err := r.db.WithContext(ctx).
		Table("content_posts cp").
		Select(`cp.id AS content_id, COUNT(ch.hashtag_id) AS hashtag_count`).
		Joins("LEFT JOIN content_hashtags ch ON ch.content_id = cp.id").
		Where("cp.created_at > ? AND cp.created_at <= ?", w.Start(), w.AsOf).
		Group("cp.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
