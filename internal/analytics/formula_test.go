package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViralCoefficient(t *testing.T) {
	tests := []struct {
		name      string
		likes     int
		comments  int
		shares    int
		virality  float64
		wantValid bool
		want      float64
	}{
		{
			name:  "documented scenario",
			likes: 100, comments: 20, shares: 10, virality: 5.0,
			wantValid: true, want: 0.10,
		},
		{
			name:  "zero likes is undefined not zero",
			likes: 0, comments: 50, shares: 30, virality: 9.9,
			wantValid: false,
		},
		{
			name:  "zero shares yields defined zero",
			likes: 10, comments: 5, shares: 0, virality: 3.0,
			wantValid: true, want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ViralCoefficient(tt.likes, tt.comments, tt.shares, tt.virality)
			assert.Equal(t, tt.wantValid, got.Valid)
			if tt.wantValid {
				assert.InDelta(t, tt.want, got.Value, 1e-9)
			}
		})
	}
}

func TestEngagementQualityMonotonic(t *testing.T) {
	w := DefaultWeights()
	base := w.EngagementQuality(5.0, 4.0, 100, 20, 10)
	require.True(t, base.Valid)

	// 任一输入单独增大，其余不变，得分不应下降
	assert.GreaterOrEqual(t, w.EngagementQuality(6.0, 4.0, 100, 20, 10).Value, base.Value)
	assert.GreaterOrEqual(t, w.EngagementQuality(5.0, 5.0, 100, 20, 10).Value, base.Value)
	assert.GreaterOrEqual(t, w.EngagementQuality(5.0, 4.0, 200, 20, 10).Value, base.Value)
	assert.GreaterOrEqual(t, w.EngagementQuality(5.0, 4.0, 100, 40, 10).Value, base.Value)
	assert.GreaterOrEqual(t, w.EngagementQuality(5.0, 4.0, 100, 20, 20).Value, base.Value)
}

func TestInfluenceScore(t *testing.T) {
	w := DefaultWeights()

	got := w.InfluenceScore(10000, 100, 6.0, 8.0)
	require.True(t, got.Valid)
	// 0.3*100 + 0.4*6 + 0.3*8 = 34.8，粉丝比主导
	assert.InDelta(t, 34.8, got.Value, 1e-9)
	assert.Equal(t, "Top Influencer", InfluencerTierLadder.Classify(got))

	assert.False(t, w.InfluenceScore(10000, 0, 6.0, 8.0).Valid, "following=0 必须未定义")
}

func TestEngagementVelocity(t *testing.T) {
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	peak := created.Add(90 * time.Minute)

	got := EngagementVelocity(created, &peak)
	require.True(t, got.Valid)
	assert.InDelta(t, 1.5, got.Value, 1e-9)

	assert.False(t, EngagementVelocity(created, nil).Valid)
}

func TestAnomalyZ(t *testing.T) {
	assert.False(t, AnomalyZ(5.0, 5.0, 0).Valid, "stddev=0 必须未定义")

	got := AnomalyZ(9.0, 5.0, 2.0)
	require.True(t, got.Valid)
	assert.InDelta(t, 2.0, got.Value, 1e-9)

	// 绝对值口径，低于均值同样计入
	low := AnomalyZ(1.0, 5.0, 2.0)
	require.True(t, low.Valid)
	assert.InDelta(t, 2.0, low.Value, 1e-9)
}

func TestRefreshFormulas(t *testing.T) {
	// (100+20+10)/100*100 = 130
	assert.InDelta(t, 130.0, EngagementRate(100, 20, 10), 1e-9)
	// 点赞为 0 时分母回退为 1
	assert.InDelta(t, 3000.0, EngagementRate(0, 20, 10), 1e-9)

	assert.InDelta(t, 13.0, ViralityScore(10, 20, 10), 1e-9)
	assert.InDelta(t, 7.6, HashtagPopularity(10, 4), 1e-9)

	trend := HashtagTrend(NewScore(6.0), NewScore(4.0))
	require.True(t, trend.Valid)
	assert.InDelta(t, 5.0, trend.Value, 1e-9)
	assert.False(t, HashtagTrend(Undefined(), NewScore(4.0)).Valid)
}

func TestRecomputeIsIdempotent(t *testing.T) {
	w := DefaultWeights()
	first := w.EngagementQuality(7.2, 3.3, 123, 45, 6)
	second := w.EngagementQuality(7.2, 3.3, 123, 45, 6)
	assert.Equal(t, first, second)

	c1 := ViralCoefficient(77, 13, 5, 2.5)
	c2 := ViralCoefficient(77, 13, 5, 2.5)
	assert.Equal(t, c1, c2)
}

func TestStats(t *testing.T) {
	mean := Mean([]float64{2, 4, 6})
	require.True(t, mean.Valid)
	assert.InDelta(t, 4.0, mean.Value, 1e-9)
	assert.False(t, Mean(nil).Valid)

	sd := StdDev([]float64{2, 4, 6})
	require.True(t, sd.Valid)
	assert.InDelta(t, 1.632993, sd.Value, 1e-6)
	assert.False(t, StdDev(nil).Valid)

	// 常数序列的总体标准差为 0，z 分随之未定义
	flat := StdDev([]float64{3, 3, 3})
	require.True(t, flat.Valid)
	assert.Zero(t, flat.Value)
	assert.False(t, AnomalyZ(3, 3, flat.Value).Valid)
}
