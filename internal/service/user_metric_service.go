package service

import (
	"Prism/internal/analytics"
	"Prism/internal/api/dto"
	"Prism/internal/model"
	"Prism/internal/pkg/consts"
	"Prism/internal/pkg/redis"
	"Prism/internal/pkg/util"
	"Prism/internal/repository"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

type UserMetricService interface {
	// SyncUserDailyMetric 生成指定用户前一日的互动快照
	SyncUserDailyMetric(ctx context.Context, userID uint64) error
	// GetUserTrend 用户最近 N 天互动趋势，缺失日用零值补齐
	GetUserTrend(ctx context.Context, userID uint64, days int) (*dto.UserTrendDTO, error)
}

type userMetricServiceImpl struct {
	contentRepo    repository.ContentRepo
	userRepo       repository.UserRepo
	userMetricRepo repository.UserEngagementMetricRepo
	clock          analytics.Clock
}

func NewUserMetricService(
	contentRepo repository.ContentRepo,
	userRepo repository.UserRepo,
	userMetricRepo repository.UserEngagementMetricRepo,
	clock analytics.Clock,
) UserMetricService {
	return &userMetricServiceImpl{
		contentRepo:    contentRepo,
		userRepo:       userRepo,
		userMetricRepo: userMetricRepo,
		clock:          clock,
	}
}

func (s *userMetricServiceImpl) SyncUserDailyMetric(ctx context.Context, userID uint64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	// (昨日零点, 今日零点] 为统计日
	today := util.GetMidnight(s.clock.Now()).AddDate(0, 0, -1)
	day := today.AddDate(0, 0, -1)

	stats, err := s.contentRepo.GetUserDayStats(ctx, userID, day)
	if err != nil {
		return err
	}

	metric := &model.UserEngagementMetric{
		UserID:            userID,
		MetricDate:        day,
		PostsCreated:      stats.PostsCreated,
		LikesReceived:     stats.LikesReceived,
		CommentsReceived:  stats.CommentsReceived,
		SharesReceived:    stats.SharesReceived,
		AvgEngagementRate: analytics.Round2(stats.AvgEngagementRate),
		ReachCount:        stats.ReachCount,
		ImpressionsCount:  stats.ImpressionsCount,
		FollowersGained:   s.followersGained(ctx, userID, user.FollowerCount),
	}

	if err = s.userMetricRepo.SaveOrUpdateMetric(ctx, metric); err != nil {
		return err
	}

	_ = redis.DeleteKey(ctx, fmt.Sprintf("%s%d:7", consts.UserTrendKey, userID))
	_ = redis.DeleteKey(ctx, fmt.Sprintf("%s%d:30", consts.UserTrendKey, userID))

	return nil
}

// followersGained 与上次快照时的粉丝数做差，快照键随本次运行滚动
func (s *userMetricServiceImpl) followersGained(ctx context.Context, userID uint64, currentFollowers int) int {
	snapshotKey := consts.UserFollowerSnapshotKey + strconv.FormatUint(userID, 10)

	gained := 0
	if val, err := redis.GetValue(ctx, snapshotKey); err == nil && val != "" {
		if prev, err := strconv.Atoi(val); err == nil {
			gained = currentFollowers - prev
		}
	}

	_ = redis.SetValue(ctx, snapshotKey, currentFollowers)
	return gained
}

func (s *userMetricServiceImpl) GetUserTrend(ctx context.Context, userID uint64, days int) (*dto.UserTrendDTO, error) {
	if days != 7 && days != 30 {
		return nil, ErrWindowInvalid
	}

	key := fmt.Sprintf("%s%d:%d", consts.UserTrendKey, userID, days)
	if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
		var res dto.UserTrendDTO
		if err = json.Unmarshal([]byte(val), &res); err == nil {
			return &res, nil
		}
	}

	// 最近一条完整快照是昨天的，趋势以昨天为终点
	asOf := util.GetMidnight(s.clock.Now()).AddDate(0, 0, -2)
	metrics, err := s.userMetricRepo.GetMetricsByDays(ctx, userID, asOf, days)
	if err != nil {
		return nil, err
	}

	dataMap := make(map[string]*model.UserEngagementMetric, len(metrics))
	for _, m := range metrics {
		dataMap[m.MetricDate.Format(time.DateOnly)] = m
	}

	res := &dto.UserTrendDTO{
		UserID: userID,
		Days:   days,
		Points: make([]*dto.UserTrendPointDTO, 0, days),
	}

	// 快照是单日活动量而非累计值，缺失日补零
	for i := days - 1; i >= 0; i-- {
		date := asOf.AddDate(0, 0, -i)
		dateStr := date.Format(time.DateOnly)

		point := &dto.UserTrendPointDTO{Date: dateStr}
		if m, ok := dataMap[dateStr]; ok {
			point.PostsCreated = m.PostsCreated
			point.LikesReceived = m.LikesReceived
			point.CommentsReceived = m.CommentsReceived
			point.SharesReceived = m.SharesReceived
			point.AvgEngagementRate = m.AvgEngagementRate
			point.FollowersGained = m.FollowersGained
		}
		res.Points = append(res.Points, point)
	}

	if b, err := json.Marshal(res); err == nil {
		_ = redis.SetWithMidnightExpiration(ctx, key, string(b))
	}

	return res, nil
}
