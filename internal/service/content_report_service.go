package service

import (
	"Prism/internal/analytics"
	"Prism/internal/api/dto"
	"Prism/internal/pkg/consts"
	"Prism/internal/pkg/redis"
	"Prism/internal/repository"
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

type ContentReportService interface {
	// GetContentReport 单条内容的评分与分级报告
	GetContentReport(ctx context.Context, contentID uint64) (*dto.ContentReportDTO, error)
	// GetContentWindowReport 窗口内全部内容的评分列表，互动率降序
	GetContentWindowReport(ctx context.Context, days int, asOf time.Time) (*dto.ContentWindowReportDTO, error)
}

type contentReportServiceImpl struct {
	contentRepo repository.ContentRepo
	metricRepo  repository.PerformanceMetricRepo
	weights     analytics.Weights
	clock       analytics.Clock
}

func NewContentReportService(
	contentRepo repository.ContentRepo,
	metricRepo repository.PerformanceMetricRepo,
	weights analytics.Weights,
	clock analytics.Clock,
) ContentReportService {
	return &contentReportServiceImpl{
		contentRepo: contentRepo,
		metricRepo:  metricRepo,
		weights:     weights,
		clock:       clock,
	}
}

func (s *contentReportServiceImpl) GetContentReport(ctx context.Context, contentID uint64) (*dto.ContentReportDTO, error) {
	key := consts.ReportContentKey + strconv.FormatUint(contentID, 10)
	if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
		var res dto.ContentReportDTO
		if err = json.Unmarshal([]byte(val), &res); err == nil {
			return &res, nil
		}
	}

	post, err := s.contentRepo.GetPost(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrContentNotFound
	}

	metric, err := s.metricRepo.GetByContentID(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if metric == nil {
		return nil, ErrMetricNotFound
	}

	res := &dto.ContentReportDTO{
		ContentID:       post.ID,
		UserID:          post.UserID,
		ContentType:     post.ContentType,
		ContentCategory: post.ContentCategory,
		PostedAt:        post.CreatedAt,
	}
	if err = copier.Copy(res, metric); err != nil {
		return nil, err
	}

	viral := analytics.ViralCoefficient(metric.LikesCount, metric.CommentsCount, metric.SharesCount, metric.ViralityScore)
	quality := s.weights.EngagementQuality(metric.EngagementRate, metric.ViralityScore,
		metric.LikesCount, metric.CommentsCount, metric.SharesCount)
	velocity := analytics.EngagementVelocity(post.CreatedAt, metric.PeakEngagementTime)

	res.EngagementRate = metric.EngagementRate
	res.ViralityScore = metric.ViralityScore
	res.ViralCoefficient = scorePtr(viral)
	res.QualityScore = scorePtr(quality)
	res.VelocityHours = scorePtr(velocity)
	res.ViralStatus = analytics.ViralStatusLadder.Classify(viral)
	res.QualityTier = analytics.QualityTierLadder.Classify(quality)

	if b, err := json.Marshal(res); err == nil {
		_ = redis.SetWithMidnightExpiration(ctx, key, string(b))
	}

	return res, nil
}

func (s *contentReportServiceImpl) GetContentWindowReport(ctx context.Context, days int, asOf time.Time) (*dto.ContentWindowReportDTO, error) {
	w, err := resolveWindow(s.clock, days, asOf)
	if err != nil {
		return nil, err
	}

	key := consts.ReportWindowKey + strconv.Itoa(w.Days)
	if cacheable(asOf) {
		if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
			var res dto.ContentWindowReportDTO
			if err = json.Unmarshal([]byte(val), &res); err == nil {
				return &res, nil
			}
		}
	}

	rows, err := s.contentRepo.GetContentWithMetrics(ctx, w)
	if err != nil {
		return nil, err
	}

	posts := make([]*dto.ContentReportDTO, 0, len(rows))
	for _, r := range rows {
		posts = append(posts, s.buildRow(r))
	}

	// 互动率降序，传播分降序，内容 ID 升序兜底
	sort.Slice(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		if a.EngagementRate != b.EngagementRate {
			return a.EngagementRate > b.EngagementRate
		}
		if a.ViralityScore != b.ViralityScore {
			return a.ViralityScore > b.ViralityScore
		}
		return a.ContentID < b.ContentID
	})

	res := &dto.ContentWindowReportDTO{
		WindowDays: w.Days,
		AsOf:       w.AsOf,
		Total:      len(posts),
		Posts:      posts,
	}

	if cacheable(asOf) {
		if b, err := json.Marshal(res); err == nil {
			_ = redis.SetWithMidnightExpiration(ctx, key, string(b))
		}
	}

	return res, nil
}

func (s *contentReportServiceImpl) buildRow(r *repository.ContentMetricRow) *dto.ContentReportDTO {
	viral := analytics.ViralCoefficient(r.LikesCount, r.CommentsCount, r.SharesCount, r.ViralityScore)
	quality := s.weights.EngagementQuality(r.EngagementRate, r.ViralityScore,
		r.LikesCount, r.CommentsCount, r.SharesCount)
	velocity := analytics.EngagementVelocity(r.CreatedAt, r.PeakEngagementTime)

	return &dto.ContentReportDTO{
		ContentID:        r.ContentID,
		UserID:           r.UserID,
		ContentType:      r.ContentType,
		ContentCategory:  r.ContentCategory,
		PostedAt:         r.CreatedAt,
		LikesCount:       r.LikesCount,
		CommentsCount:    r.CommentsCount,
		SharesCount:      r.SharesCount,
		SavesCount:       r.SavesCount,
		ViewsCount:       r.ViewsCount,
		EngagementRate:   r.EngagementRate,
		ViralityScore:    r.ViralityScore,
		ViralCoefficient: scorePtr(viral),
		QualityScore:     scorePtr(quality),
		VelocityHours:    scorePtr(velocity),
		ViralStatus:      analytics.ViralStatusLadder.Classify(viral),
		QualityTier:      analytics.QualityTierLadder.Classify(quality),
	}
}
