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

type scoreUpdate struct {
	hashtagID  uint64
	popularity float64
	trend      *float64
}

type fakeHashtagRepo struct {
	stats   []*repository.HashtagUsageStatRow
	updates []scoreUpdate
}

func (f *fakeHashtagRepo) GetByName(context.Context, string) (*model.Hashtag, error) {
	return nil, nil
}

func (f *fakeHashtagRepo) CreateIfAbsent(context.Context, *model.Hashtag) error {
	return nil
}

func (f *fakeHashtagRepo) LinkContent(context.Context, uint64, uint64, int) error {
	return nil
}

func (f *fakeHashtagRepo) GetUsageStats(context.Context, analytics.Window) ([]*repository.HashtagUsageStatRow, error) {
	return f.stats, nil
}

func (f *fakeHashtagRepo) UpdateScores(_ context.Context, hashtagID uint64, popularity float64, trend *float64, _ time.Time) error {
	f.updates = append(f.updates, scoreUpdate{hashtagID: hashtagID, popularity: popularity, trend: trend})
	return nil
}

func (f *fakeHashtagRepo) ListTrending(context.Context, int) ([]*model.Hashtag, error) {
	return nil, nil
}

func TestRefreshHashtagScores(t *testing.T) {
	rate := 4.0
	virality := 6.0

	repo := &fakeHashtagRepo{stats: []*repository.HashtagUsageStatRow{
		{HashtagID: 1, TagName: "golang", UsageCount: 10, UniquePosts: 5,
			AvgEngagementRate: &rate, AvgViralityScore: &virality},
		// 窗口内被使用但关联内容没有指标行
		{HashtagID: 2, TagName: "nometrics", UsageCount: 3, UniquePosts: 3},
		// 窗口内未被使用的话题不更新
		{HashtagID: 3, TagName: "stale", UsageCount: 0},
	}}

	svc := NewHashtagReportService(repo, &fakeContentRepo{},
		fixedClock{now: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)})

	require.NoError(t, svc.RefreshHashtagScores(context.Background()))
	require.Len(t, repo.updates, 2)

	assert.Equal(t, uint64(1), repo.updates[0].hashtagID)
	assert.Equal(t, 8.0, repo.updates[0].popularity)
	require.NotNil(t, repo.updates[0].trend)
	assert.Equal(t, 5.0, *repo.updates[0].trend)

	assert.Equal(t, uint64(2), repo.updates[1].hashtagID)
	assert.Nil(t, repo.updates[1].trend, "无指标数据的趋势分必须落空而不是 0")
}
