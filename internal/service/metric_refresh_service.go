package service

import (
	"Prism/internal/analytics"
	"Prism/internal/model"
	"Prism/internal/pkg/consts"
	"Prism/internal/pkg/es"
	"Prism/internal/pkg/redis"
	"Prism/internal/repository"
	"context"
	log "log/slog"
	"strconv"
)

type MetricRefreshService interface {
	// RefreshContentMetric 将 Redis 实时计数刷入指标表并重算评分
	RefreshContentMetric(ctx context.Context, contentID uint64) error
}

type metricRefreshServiceImpl struct {
	contentRepo repository.ContentRepo
	metricRepo  repository.PerformanceMetricRepo
	userRepo    repository.UserRepo
	scoreRepo   es.ContentScoreRepo
	weights     analytics.Weights
	clock       analytics.Clock
}

func NewMetricRefreshService(
	contentRepo repository.ContentRepo,
	metricRepo repository.PerformanceMetricRepo,
	userRepo repository.UserRepo,
	scoreRepo es.ContentScoreRepo,
	weights analytics.Weights,
	clock analytics.Clock,
) MetricRefreshService {
	return &metricRefreshServiceImpl{
		contentRepo: contentRepo,
		metricRepo:  metricRepo,
		userRepo:    userRepo,
		scoreRepo:   scoreRepo,
		weights:     weights,
		clock:       clock,
	}
}

func (s *metricRefreshServiceImpl) RefreshContentMetric(ctx context.Context, contentID uint64) error {
	post, err := s.contentRepo.GetPost(ctx, contentID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrContentNotFound
	}

	likes := s.getCount(ctx, consts.ContentLikeKey, contentID)
	comments := s.getCount(ctx, consts.ContentCommentKey, contentID)
	shares := s.getCount(ctx, consts.ContentShareKey, contentID)
	saves := s.getCount(ctx, consts.ContentSaveKey, contentID)
	views := s.getCount(ctx, consts.ContentViewKey, contentID)

	// 覆盖率与曝光由采集侧写入，保留旧值
	existing, err := s.metricRepo.GetByContentID(ctx, contentID)
	if err != nil {
		return err
	}

	metric := &model.PerformanceMetric{
		ContentID:      contentID,
		LikesCount:     likes,
		CommentsCount:  comments,
		SharesCount:    shares,
		SavesCount:     saves,
		ViewsCount:     views,
		EngagementRate: analytics.EngagementRate(likes, comments, shares),
		ViralityScore:  analytics.ViralityScore(shares, comments, saves),
	}
	if existing != nil {
		metric.ReachCount = existing.ReachCount
		metric.ImpressionsCount = existing.ImpressionsCount
		metric.PeakEngagementTime = existing.PeakEngagementTime
	}

	if err = s.metricRepo.SaveOrUpdateMetric(ctx, metric); err != nil {
		return err
	}

	if err = s.indexScore(ctx, post, metric); err != nil {
		// 索引失败不阻塞回刷，等下一轮覆盖
		log.WarnContext(ctx, "index content score failed", "contentID", contentID, "err", err)
	}

	_ = redis.DeleteKey(ctx, consts.ReportContentKey+strconv.FormatUint(contentID, 10))

	return nil
}

func (s *metricRefreshServiceImpl) indexScore(ctx context.Context, post *model.ContentPost, metric *model.PerformanceMetric) error {
	user, err := s.userRepo.GetByID(ctx, post.UserID)
	if err != nil {
		return err
	}

	viral := analytics.ViralCoefficient(metric.LikesCount, metric.CommentsCount, metric.SharesCount, metric.ViralityScore)
	quality := s.weights.EngagementQuality(metric.EngagementRate, metric.ViralityScore,
		metric.LikesCount, metric.CommentsCount, metric.SharesCount)

	doc := &es.ContentScoreES{
		ContentID:        post.ID,
		UserID:           post.UserID,
		ContentType:      post.ContentType,
		ContentCategory:  post.ContentCategory,
		EngagementRate:   metric.EngagementRate,
		ViralityScore:    metric.ViralityScore,
		ViralCoefficient: scorePtr(viral),
		QualityScore:     scorePtr(quality),
		ViralStatus:      analytics.ViralStatusLadder.Classify(viral),
		QualityTier:      analytics.QualityTierLadder.Classify(quality),
		PostedAt:         post.CreatedAt,
		RefreshedAt:      s.clock.Now(),
	}
	if user != nil {
		doc.Username = user.Username
	}

	return s.scoreRepo.IndexContentScore(ctx, doc)
}

func (s *metricRefreshServiceImpl) getCount(ctx context.Context, prefix string, id uint64) int {
	val, err := redis.GetValue(ctx, prefix+strconv.FormatUint(id, 10))
	if err != nil || val == "" {
		return 0
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
