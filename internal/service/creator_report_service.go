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
)

type CreatorReportService interface {
	// GetCreatorReport 创作者影响力榜单与分层报告
	// 发帖数低于最小样本的创作者不进榜单，零发帖用户的分层
	// （Inactive User / Never Active / New User）由策略报告按单人查询给出
	GetCreatorReport(ctx context.Context, days int, asOf time.Time) (*dto.CreatorReportDTO, error)
}

type creatorReportServiceImpl struct {
	userRepo  repository.UserRepo
	weights   analytics.Weights
	clock     analytics.Clock
	minSample int
}

func NewCreatorReportService(userRepo repository.UserRepo, weights analytics.Weights, clock analytics.Clock, minSample int) CreatorReportService {
	if minSample <= 0 {
		minSample = analytics.DefaultMinSample
	}
	return &creatorReportServiceImpl{
		userRepo:  userRepo,
		weights:   weights,
		clock:     clock,
		minSample: minSample,
	}
}

func (s *creatorReportServiceImpl) GetCreatorReport(ctx context.Context, days int, asOf time.Time) (*dto.CreatorReportDTO, error) {
	w, err := resolveWindow(s.clock, days, asOf)
	if err != nil {
		return nil, err
	}

	key := consts.ReportCreatorKey + strconv.Itoa(w.Days)
	if cacheable(asOf) {
		if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
			var res dto.CreatorReportDTO
			if err = json.Unmarshal([]byte(val), &res); err == nil {
				return &res, nil
			}
		}
	}

	rows, err := s.userRepo.GetCreatorStats(ctx, w)
	if err != nil {
		return nil, err
	}

	entries := make([]*dto.CreatorEntryDTO, 0, len(rows))
	for _, r := range rows {
		if r.PostCount < s.minSample {
			continue
		}
		entries = append(entries, s.buildEntry(w, r))
	}

	// 榜单排序与分组榜一致：平均互动率降序，传播分降序，用户名升序兜底
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.AvgEngagementRate != b.AvgEngagementRate {
			return a.AvgEngagementRate > b.AvgEngagementRate
		}
		if a.TotalVirality != b.TotalVirality {
			return a.TotalVirality > b.TotalVirality
		}
		return a.Username < b.Username
	})
	for i, e := range entries {
		e.Rank = i + 1
	}

	res := &dto.CreatorReportDTO{
		WindowDays: w.Days,
		AsOf:       w.AsOf,
		MinSample:  s.minSample,
		Creators:   entries,
	}

	if cacheable(asOf) {
		if b, err := json.Marshal(res); err == nil {
			_ = redis.SetWithMidnightExpiration(ctx, key, string(b))
		}
	}

	return res, nil
}

func (s *creatorReportServiceImpl) buildEntry(w analytics.Window, r *repository.CreatorStatRow) *dto.CreatorEntryDTO {
	influence := s.weights.InfluenceScore(r.FollowerCount, r.FollowingCount, r.AvgEngagementRate, r.TotalVirality)

	rate := analytics.Undefined()
	if r.PostCount > 0 {
		rate = analytics.NewScore(r.AvgEngagementRate)
	}

	return &dto.CreatorEntryDTO{
		UserID:            r.UserID,
		Username:          r.Username,
		AccountType:       r.AccountType,
		FollowerCount:     r.FollowerCount,
		FollowingCount:    r.FollowingCount,
		PostCount:         r.PostCount,
		AvgEngagementRate: analytics.Round2(r.AvgEngagementRate),
		TotalVirality:     analytics.Round2(r.TotalVirality),
		InfluenceScore:    scorePtr(influence),
		InfluencerTier:    analytics.InfluencerTierLadder.Classify(influence),
		Segment:           analytics.ClassifyUserSegment(rate, r.PostCount),
		ChurnRisk:         analytics.ClassifyChurnRisk(w.AsOf, r.LastPostAt, r.RegisteredAt),
	}
}
