package service

import (
	"Prism/internal/analytics"
	"Prism/internal/api/dto"
	"Prism/internal/pkg/consts"
	"Prism/internal/pkg/redis"
	"Prism/internal/repository"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/goccy/go-json"
)

type StrategyService interface {
	// GetStrategy 单个创作者的表现评级与策略建议
	GetStrategy(ctx context.Context, userID uint64, days int, asOf time.Time) (*dto.StrategyReportDTO, error)
}

type strategyServiceImpl struct {
	userRepo    repository.UserRepo
	contentRepo repository.ContentRepo
	clock       analytics.Clock
}

func NewStrategyService(userRepo repository.UserRepo, contentRepo repository.ContentRepo, clock analytics.Clock) StrategyService {
	return &strategyServiceImpl{
		userRepo:    userRepo,
		contentRepo: contentRepo,
		clock:       clock,
	}
}

func (s *strategyServiceImpl) GetStrategy(ctx context.Context, userID uint64, days int, asOf time.Time) (*dto.StrategyReportDTO, error) {
	w, err := resolveWindow(s.clock, days, asOf)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s%d:%d", consts.ReportStrategyKey, userID, w.Days)
	if cacheable(asOf) {
		if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
			var res dto.StrategyReportDTO
			if err = json.Unmarshal([]byte(val), &res); err == nil {
				return &res, nil
			}
		}
	}

	stat, err := s.userRepo.GetCreatorStat(ctx, userID, w)
	if err != nil {
		return nil, err
	}
	if stat == nil {
		return nil, ErrUserNotFound
	}

	rate := analytics.Undefined()
	if stat.PostCount > 0 {
		rate = analytics.NewScore(stat.AvgEngagementRate)
	}

	performance := analytics.PerformanceLadder.Classify(rate)
	segment := analytics.ClassifyUserSegment(rate, stat.PostCount)
	churn := analytics.ClassifyChurnRisk(w.AsOf, stat.LastPostAt, stat.RegisteredAt)

	topHours, err := s.topHours(ctx, userID, w)
	if err != nil {
		return nil, err
	}
	topTypes, err := s.topGroups(ctx, w, userID, s.contentRepo.GetUserContentTypeStats)
	if err != nil {
		return nil, err
	}
	topCategories, err := s.topGroups(ctx, w, userID, s.contentRepo.GetUserCategoryStats)
	if err != nil {
		return nil, err
	}

	res := &dto.StrategyReportDTO{
		UserID:            stat.UserID,
		Username:          stat.Username,
		WindowDays:        w.Days,
		AsOf:              w.AsOf,
		PostCount:         stat.PostCount,
		AvgEngagementRate: analytics.Round2(stat.AvgEngagementRate),
		TotalVirality:     analytics.Round2(stat.TotalVirality),
		Performance:       performance,
		Segment:           segment,
		ChurnRisk:         churn,
		TopPostingHours:   topHours,
		TopContentTypes:   topTypes,
		TopCategories:     topCategories,
		Recommendations:   buildRecommendations(stat, rate, performance, churn),
	}

	if cacheable(asOf) {
		if b, err := json.Marshal(res); err == nil {
			_ = redis.SetWithMidnightExpiration(ctx, key, string(b))
		}
	}

	return res, nil
}

const strategyTopN = 3

func (s *strategyServiceImpl) topHours(ctx context.Context, userID uint64, w analytics.Window) ([]*dto.StrategyHourDTO, error) {
	rows, err := s.contentRepo.GetUserTimingStats(ctx, userID, w)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.StrategyHourDTO, 0, len(rows))
	for _, r := range rows {
		res = append(res, &dto.StrategyHourDTO{
			Hour:              r.PostingHour,
			Weekday:           r.PostingWeekday,
			PostCount:         r.PostCount,
			AvgEngagementRate: analytics.Round2(r.AvgEngagementRate),
		})
	}

	sort.Slice(res, func(i, j int) bool {
		a, b := res[i], res[j]
		if a.AvgEngagementRate != b.AvgEngagementRate {
			return a.AvgEngagementRate > b.AvgEngagementRate
		}
		if a.Weekday != b.Weekday {
			return a.Weekday < b.Weekday
		}
		return a.Hour < b.Hour
	})

	if len(res) > strategyTopN {
		res = res[:strategyTopN]
	}
	return res, nil
}

func (s *strategyServiceImpl) topGroups(
	ctx context.Context,
	w analytics.Window,
	userID uint64,
	fetch func(context.Context, uint64, analytics.Window) ([]*repository.GroupStatRow, error),
) ([]*dto.StrategyGroupDTO, error) {
	rows, err := fetch(ctx, userID, w)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.StrategyGroupDTO, 0, len(rows))
	for _, r := range rows {
		res = append(res, &dto.StrategyGroupDTO{
			Name:              r.GroupKey,
			PostCount:         r.PostCount,
			AvgEngagementRate: analytics.Round2(r.AvgEngagementRate),
		})
	}

	sort.Slice(res, func(i, j int) bool {
		a, b := res[i], res[j]
		if a.AvgEngagementRate != b.AvgEngagementRate {
			return a.AvgEngagementRate > b.AvgEngagementRate
		}
		return a.Name < b.Name
	})

	if len(res) > strategyTopN {
		res = res[:strategyTopN]
	}
	return res, nil
}

// buildRecommendations 根据窗口表现给出运营建议，顺序固定保证结果可复现
func buildRecommendations(stat *repository.CreatorStatRow, rate analytics.Score, performance, churn string) []string {
	recs := make([]string, 0, 4)

	if stat.PostCount == 0 {
		recs = append(recs, "No posts in this window. Publish content regularly to start building engagement data.")
		if churn == "Never Active" {
			recs = append(recs, "Account has never posted. Begin with 2-3 posts per week in a consistent niche.")
		}
		return recs
	}

	switch performance {
	case "Excellent":
		recs = append(recs, "Engagement is excellent. Keep the current content mix and posting cadence.")
	case "Good":
		recs = append(recs, "Engagement is solid. Experiment with top-performing formats to push it higher.")
	case "Average":
		recs = append(recs, "Engagement is average. Study your best posts and double down on what worked.")
	default:
		recs = append(recs, "Engagement needs improvement. Use calls to action and reply to comments to lift interaction.")
	}

	if stat.PostCount < 10 {
		recs = append(recs, "Posting volume is low for this window. A steadier cadence gives the audience more chances to engage.")
	}

	if rate.Valid && rate.Value >= 3.0 && stat.TotalVirality < 50 {
		recs = append(recs, "Content engages but rarely spreads. Add shareable hooks to boost shares and saves.")
	}

	if stat.FollowingCount > 0 && stat.FollowerCount < stat.FollowingCount {
		recs = append(recs, "Follower ratio is below 1. Focus on profile quality to convert viewers into followers.")
	}

	switch churn {
	case "High Risk", "Medium Risk":
		recs = append(recs, "Long gap since the last post. Re-engage soon before audience interest decays.")
	}

	return recs
}
