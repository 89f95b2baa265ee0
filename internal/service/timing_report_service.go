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

type TimingReportService interface {
	// GetTimingReport 发布时机报告：按小时 × 星期聚合并找出最佳时段
	GetTimingReport(ctx context.Context, days int, asOf time.Time) (*dto.TimingReportDTO, error)
}

type timingReportServiceImpl struct {
	contentRepo repository.ContentRepo
	clock       analytics.Clock
	minSample   int
}

func NewTimingReportService(contentRepo repository.ContentRepo, clock analytics.Clock, minSample int) TimingReportService {
	if minSample <= 0 {
		minSample = analytics.DefaultMinSample
	}
	return &timingReportServiceImpl{
		contentRepo: contentRepo,
		clock:       clock,
		minSample:   minSample,
	}
}

func (s *timingReportServiceImpl) GetTimingReport(ctx context.Context, days int, asOf time.Time) (*dto.TimingReportDTO, error) {
	w, err := resolveWindow(s.clock, days, asOf)
	if err != nil {
		return nil, err
	}

	key := consts.ReportTimingKey + strconv.Itoa(w.Days)
	if cacheable(asOf) {
		if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
			var res dto.TimingReportDTO
			if err = json.Unmarshal([]byte(val), &res); err == nil {
				return &res, nil
			}
		}
	}

	rows, err := s.contentRepo.GetTimingStats(ctx, w)
	if err != nil {
		return nil, err
	}

	slots := make([]*dto.TimingSlotDTO, 0, len(rows))
	for _, r := range rows {
		if r.PostCount < s.minSample {
			continue
		}
		slots = append(slots, &dto.TimingSlotDTO{
			Hour:              r.PostingHour,
			Weekday:           r.PostingWeekday,
			PostCount:         r.PostCount,
			AvgEngagementRate: analytics.Round2(r.AvgEngagementRate),
			TotalVirality:     analytics.Round2(r.TotalVirality),
		})
	}

	sort.Slice(slots, func(i, j int) bool {
		a, b := slots[i], slots[j]
		if a.AvgEngagementRate != b.AvgEngagementRate {
			return a.AvgEngagementRate > b.AvgEngagementRate
		}
		if a.TotalVirality != b.TotalVirality {
			return a.TotalVirality > b.TotalVirality
		}
		if a.Weekday != b.Weekday {
			return a.Weekday < b.Weekday
		}
		return a.Hour < b.Hour
	})

	res := &dto.TimingReportDTO{
		WindowDays: w.Days,
		AsOf:       w.AsOf,
		MinSample:  s.minSample,
		Slots:      slots,
	}
	if len(slots) > 0 {
		res.BestSlot = slots[0]
	}

	if cacheable(asOf) {
		if b, err := json.Marshal(res); err == nil {
			_ = redis.SetWithMidnightExpiration(ctx, key, string(b))
		}
	}

	return res, nil
}
