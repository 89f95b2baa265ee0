package service

import (
	"Prism/internal/analytics"
	"Prism/internal/model"
	"Prism/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContentRepo struct {
	rows []*repository.ContentMetricRow
}

func (f *fakeContentRepo) GetPost(context.Context, uint64) (*model.ContentPost, error) {
	return nil, nil
}

func (f *fakeContentRepo) GetContentWithMetrics(context.Context, analytics.Window) ([]*repository.ContentMetricRow, error) {
	return f.rows, nil
}

func (f *fakeContentRepo) GetCategoryStats(context.Context, analytics.Window) ([]*repository.GroupStatRow, error) {
	return nil, nil
}

func (f *fakeContentRepo) GetContentTypeStats(context.Context, analytics.Window) ([]*repository.GroupStatRow, error) {
	return nil, nil
}

func (f *fakeContentRepo) GetTimingStats(context.Context, analytics.Window) ([]*repository.TimingStatRow, error) {
	return nil, nil
}

func (f *fakeContentRepo) GetHashtagCounts(context.Context, analytics.Window) ([]*repository.HashtagUsageRow, error) {
	return nil, nil
}

func (f *fakeContentRepo) GetUserDayStats(context.Context, uint64, time.Time) (*repository.UserDayStatRow, error) {
	return nil, nil
}

func (f *fakeContentRepo) GetUserTimingStats(context.Context, uint64, analytics.Window) ([]*repository.TimingStatRow, error) {
	return nil, nil
}

func (f *fakeContentRepo) GetUserCategoryStats(context.Context, uint64, analytics.Window) ([]*repository.GroupStatRow, error) {
	return nil, nil
}

func (f *fakeContentRepo) GetUserContentTypeStats(context.Context, uint64, analytics.Window) ([]*repository.GroupStatRow, error) {
	return nil, nil
}

func TestGetContentWindowReport(t *testing.T) {
	asOf := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	posted := asOf.AddDate(0, 0, -3)

	repo := &fakeContentRepo{rows: []*repository.ContentMetricRow{
		{
			ContentID: 1, UserID: 10, ContentType: "photo", CreatedAt: posted,
			LikesCount: 100, CommentsCount: 20, SharesCount: 40,
			EngagementRate: 3.0, ViralityScore: 5.0,
		},
		{
			ContentID: 2, UserID: 11, ContentType: "reel", CreatedAt: posted,
			LikesCount: 0, CommentsCount: 5, SharesCount: 2,
			EngagementRate: 6.5, ViralityScore: 2.0,
		},
		{
			ContentID: 3, UserID: 12, ContentType: "video", CreatedAt: posted,
			LikesCount: 50, CommentsCount: 10, SharesCount: 5,
			EngagementRate: 3.0, ViralityScore: 1.0,
		},
	}}

	svc := NewContentReportService(repo, nil, analytics.DefaultWeights(),
		fixedClock{now: asOf})

	report, err := svc.GetContentWindowReport(context.Background(), 7, asOf)
	require.NoError(t, err)

	assert.Equal(t, 7, report.WindowDays)
	assert.Equal(t, asOf, report.AsOf)
	require.Equal(t, 3, report.Total)

	// 互动率降序，同率按传播分
	assert.Equal(t, uint64(2), report.Posts[0].ContentID)
	assert.Equal(t, uint64(1), report.Posts[1].ContentID)
	assert.Equal(t, uint64(3), report.Posts[2].ContentID)

	// likes=0 的内容病毒系数未定义但仍在结果里
	assert.Nil(t, report.Posts[0].ViralCoefficient)
	assert.Equal(t, analytics.LabelInsufficientData, report.Posts[0].ViralStatus)

	assert.NotNil(t, report.Posts[1].ViralCoefficient)
	assert.NotNil(t, report.Posts[1].QualityScore)
	assert.Nil(t, report.Posts[1].VelocityHours, "缺失峰值时间速度应为空")
	assert.NotEmpty(t, report.Posts[1].QualityTier)

	_, err = svc.GetContentWindowReport(context.Background(), 11, asOf)
	assert.ErrorIs(t, err, ErrWindowInvalid)
}
