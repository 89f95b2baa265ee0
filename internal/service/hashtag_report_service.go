package service

import (
	"Prism/internal/analytics"
	"Prism/internal/api/dto"
	"Prism/internal/model"
	"Prism/internal/pkg/consts"
	"Prism/internal/pkg/redis"
	"Prism/internal/repository"
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

type HashtagReportService interface {
	// GetHashtagReport 话题榜单与话题数量效果报告
	GetHashtagReport(ctx context.Context, days int, asOf time.Time) (*dto.HashtagReportDTO, error)
	// GetTrendingTags 持久化趋势分的快速读路径，不做窗口聚合
	GetTrendingTags(ctx context.Context, limit int) ([]*model.Hashtag, error)
	// RefreshHashtagScores 以 7 日窗口重算全部话题的热度与趋势分
	RefreshHashtagScores(ctx context.Context) error
}

type hashtagReportServiceImpl struct {
	hashtagRepo repository.HashtagRepo
	contentRepo repository.ContentRepo
	clock       analytics.Clock
}

func NewHashtagReportService(hashtagRepo repository.HashtagRepo, contentRepo repository.ContentRepo, clock analytics.Clock) HashtagReportService {
	return &hashtagReportServiceImpl{
		hashtagRepo: hashtagRepo,
		contentRepo: contentRepo,
		clock:       clock,
	}
}

func (s *hashtagReportServiceImpl) GetHashtagReport(ctx context.Context, days int, asOf time.Time) (*dto.HashtagReportDTO, error) {
	w, err := resolveWindow(s.clock, days, asOf)
	if err != nil {
		return nil, err
	}

	key := consts.ReportHashtagKey + strconv.Itoa(w.Days)
	if cacheable(asOf) {
		if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
			var res dto.HashtagReportDTO
			if err = json.Unmarshal([]byte(val), &res); err == nil {
				return &res, nil
			}
		}
	}

	trending, err := s.buildTrending(ctx, w)
	if err != nil {
		return nil, err
	}

	countEffect, err := s.buildCountEffect(ctx, w)
	if err != nil {
		return nil, err
	}

	res := &dto.HashtagReportDTO{
		WindowDays:  w.Days,
		AsOf:        w.AsOf,
		Trending:    trending,
		CountEffect: countEffect,
	}

	if cacheable(asOf) {
		if b, err := json.Marshal(res); err == nil {
			_ = redis.SetWithMidnightExpiration(ctx, key, string(b))
		}
	}

	return res, nil
}

func (s *hashtagReportServiceImpl) GetTrendingTags(ctx context.Context, limit int) ([]*model.Hashtag, error) {
	if limit <= 0 || limit > consts.TrendingLimit {
		limit = consts.TrendingLimit
	}
	return s.hashtagRepo.ListTrending(ctx, limit)
}

func (s *hashtagReportServiceImpl) buildTrending(ctx context.Context, w analytics.Window) ([]*dto.HashtagEntryDTO, error) {
	rows, err := s.hashtagRepo.GetUsageStats(ctx, w)
	if err != nil {
		return nil, err
	}

	entries := make([]*dto.HashtagEntryDTO, 0, len(rows))
	for _, r := range rows {
		if r.UsageCount == 0 {
			continue
		}

		trend := analytics.HashtagTrend(toScore(r.AvgEngagementRate), toScore(r.AvgViralityScore))

		entries = append(entries, &dto.HashtagEntryDTO{
			TagName:         r.TagName,
			Category:        r.Category,
			UsageCount:      r.UsageCount,
			UniquePosts:     r.UniquePosts,
			PopularityScore: analytics.HashtagPopularity(r.UsageCount, r.UniquePosts),
			TrendScore:      scorePtr(trend),
		})
	}

	// 趋势分降序，缺失趋势分的沉底，同分按热度再按名称
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		av, bv := a.TrendScore, b.TrendScore
		if (av == nil) != (bv == nil) {
			return av != nil
		}
		if av != nil && *av != *bv {
			return *av > *bv
		}
		if a.PopularityScore != b.PopularityScore {
			return a.PopularityScore > b.PopularityScore
		}
		return a.TagName < b.TagName
	})

	if len(entries) > consts.TrendingLimit {
		entries = entries[:consts.TrendingLimit]
	}
	return entries, nil
}

// buildCountEffect 按每条内容携带的话题数分桶，对比各桶平均互动率
func (s *hashtagReportServiceImpl) buildCountEffect(ctx context.Context, w analytics.Window) ([]*dto.HashtagBucketDTO, error) {
	counts, err := s.contentRepo.GetHashtagCounts(ctx, w)
	if err != nil {
		return nil, err
	}
	metrics, err := s.contentRepo.GetContentWithMetrics(ctx, w)
	if err != nil {
		return nil, err
	}

	rateByContent := make(map[uint64]float64, len(metrics))
	for _, m := range metrics {
		rateByContent[m.ContentID] = m.EngagementRate
	}

	type bucketAgg struct {
		count int
		sum   float64
	}
	aggs := make(map[string]*bucketAgg)
	for _, c := range counts {
		rate, ok := rateByContent[c.ContentID]
		if !ok {
			continue
		}
		bucket := analytics.HashtagCountBucket(c.HashtagCount)
		agg, ok := aggs[bucket]
		if !ok {
			agg = &bucketAgg{}
			aggs[bucket] = agg
		}
		agg.count++
		agg.sum += rate
	}

	order := []string{"0", "1-3", "4-6", "7+"}
	res := make([]*dto.HashtagBucketDTO, 0, len(order))
	for _, bucket := range order {
		agg, ok := aggs[bucket]
		if !ok {
			continue
		}
		res = append(res, &dto.HashtagBucketDTO{
			Bucket:            bucket,
			PostCount:         agg.count,
			AvgEngagementRate: analytics.Round2(agg.sum / float64(agg.count)),
		})
	}
	return res, nil
}

func (s *hashtagReportServiceImpl) RefreshHashtagScores(ctx context.Context) error {
	w := analytics.NewWindow(s.clock.Now(), 7)

	rows, err := s.hashtagRepo.GetUsageStats(ctx, w)
	if err != nil {
		return err
	}

	for _, r := range rows {
		if r.UsageCount == 0 {
			continue
		}

		popularity := analytics.HashtagPopularity(r.UsageCount, r.UniquePosts)
		trend := analytics.HashtagTrend(toScore(r.AvgEngagementRate), toScore(r.AvgViralityScore))

		// 窗口内无指标数据时趋势分落 NULL，不能坍缩成 0 分
		if err := s.hashtagRepo.UpdateScores(ctx, r.HashtagID, popularity, scorePtr(trend), w.AsOf); err != nil {
			return err
		}
	}

	return nil
}

// toScore NULL 聚合列转评分
func toScore(v *float64) analytics.Score {
	if v == nil {
		return analytics.Undefined()
	}
	return analytics.NewScore(*v)
}
