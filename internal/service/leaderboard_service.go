package service

import (
	"Prism/internal/analytics"
	"Prism/internal/api/dto"
	"Prism/internal/pkg/consts"
	"Prism/internal/pkg/redis"
	"Prism/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

type LeaderboardService interface {
	// GetCategoryLeaderboard 内容分类榜单
	GetCategoryLeaderboard(ctx context.Context, days int, asOf time.Time) (*dto.LeaderboardDTO, error)
	// GetContentTypeLeaderboard 内容类型榜单
	GetContentTypeLeaderboard(ctx context.Context, days int, asOf time.Time) (*dto.LeaderboardDTO, error)
}

type leaderboardServiceImpl struct {
	contentRepo repository.ContentRepo
	clock       analytics.Clock
	minSample   int
}

func NewLeaderboardService(contentRepo repository.ContentRepo, clock analytics.Clock, minSample int) LeaderboardService {
	if minSample <= 0 {
		minSample = analytics.DefaultMinSample
	}
	return &leaderboardServiceImpl{
		contentRepo: contentRepo,
		clock:       clock,
		minSample:   minSample,
	}
}

func (s *leaderboardServiceImpl) GetCategoryLeaderboard(ctx context.Context, days int, asOf time.Time) (*dto.LeaderboardDTO, error) {
	return s.getLeaderboard(ctx, "category", consts.ReportCategoryKey, days, asOf, s.contentRepo.GetCategoryStats)
}

func (s *leaderboardServiceImpl) GetContentTypeLeaderboard(ctx context.Context, days int, asOf time.Time) (*dto.LeaderboardDTO, error) {
	return s.getLeaderboard(ctx, "content_type", consts.ReportTypeKey, days, asOf, s.contentRepo.GetContentTypeStats)
}

func (s *leaderboardServiceImpl) getLeaderboard(
	ctx context.Context,
	dimension string,
	keyPrefix string,
	days int,
	asOf time.Time,
	fetchDB func(context.Context, analytics.Window) ([]*repository.GroupStatRow, error),
) (*dto.LeaderboardDTO, error) {
	w, err := resolveWindow(s.clock, days, asOf)
	if err != nil {
		return nil, err
	}

	key := keyPrefix + strconv.Itoa(w.Days)
	if cacheable(asOf) {
		if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
			var res dto.LeaderboardDTO
			if err = json.Unmarshal([]byte(val), &res); err == nil {
				return &res, nil
			}
		}
	}

	rows, err := fetchDB(ctx, w)
	if err != nil {
		return nil, err
	}

	groups := make([]analytics.GroupStat, 0, len(rows))
	for _, r := range rows {
		groups = append(groups, analytics.GroupStat{
			Key:               r.GroupKey,
			Count:             r.PostCount,
			AvgEngagementRate: analytics.Round2(r.AvgEngagementRate),
			TotalVirality:     analytics.Round2(r.TotalVirality),
		})
	}

	groups = analytics.FilterMinSample(groups, s.minSample)
	analytics.SortLeaderboard(groups)

	res := &dto.LeaderboardDTO{
		Dimension:  dimension,
		WindowDays: w.Days,
		AsOf:       w.AsOf,
		MinSample:  s.minSample,
		Entries:    make([]*dto.LeaderboardEntryDTO, 0, len(groups)),
	}
	for i, g := range groups {
		res.Entries = append(res.Entries, &dto.LeaderboardEntryDTO{
			Rank:              i + 1,
			Key:               g.Key,
			PostCount:         g.Count,
			AvgEngagementRate: g.AvgEngagementRate,
			TotalVirality:     g.TotalVirality,
			Performance:       analytics.PerformanceLadder.Classify(analytics.NewScore(g.AvgEngagementRate)),
		})
	}

	if cacheable(asOf) {
		if b, err := json.Marshal(res); err == nil {
			_ = redis.SetWithMidnightExpiration(ctx, key, string(b))
		}
	}

	return res, nil
}
