package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLadderBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		ladder Ladder
		score  Score
		want   string
	}{
		{"viral boundary lands in upper band", ViralStatusLadder, NewScore(2.0), "Highly Viral"},
		{"viral just below boundary", ViralStatusLadder, NewScore(1.9999), "Viral"},
		{"viral trending", ViralStatusLadder, NewScore(0.5), "Trending"},
		{"viral fallback", ViralStatusLadder, NewScore(0.49), "Regular"},
		{"viral negative still labeled", ViralStatusLadder, NewScore(-3), "Regular"},
		{"viral undefined routed", ViralStatusLadder, Undefined(), LabelInsufficientData},

		{"influencer top", InfluencerTierLadder, NewScore(8.0), "Top Influencer"},
		{"influencer micro", InfluencerTierLadder, NewScore(6.0), "Micro Influencer"},
		{"influencer rising", InfluencerTierLadder, NewScore(4.0), "Rising Influencer"},
		{"influencer fallback", InfluencerTierLadder, NewScore(3.99), "Emerging Creator"},

		{"quality exceptional", QualityTierLadder, NewScore(8.0), "Exceptional"},
		{"quality high", QualityTierLadder, NewScore(7.99), "High Quality"},
		{"quality average", QualityTierLadder, NewScore(2.0), "Average"},
		{"quality below", QualityTierLadder, NewScore(1.99), "Below Average"},

		{"performance excellent", PerformanceLadder, NewScore(8.0), "Excellent"},
		{"performance good", PerformanceLadder, NewScore(5.0), "Good"},
		{"performance needs improvement", PerformanceLadder, NewScore(2.99), "Needs Improvement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ladder.Classify(tt.score))
		})
	}
}

// 阶梯必须覆盖全实数域：任何已定义得分都恰好得到一个标签
func TestLadderTotality(t *testing.T) {
	ladders := []Ladder{ViralStatusLadder, InfluencerTierLadder, QualityTierLadder, PerformanceLadder}
	probes := []float64{-1000, -1, 0, 0.0001, 0.5, 1, 1.5, 2, 3.99, 4, 5.99, 6, 7.99, 8, 100, 1e9}

	for _, l := range ladders {
		for _, p := range probes {
			label := l.Classify(NewScore(p))
			assert.NotEmpty(t, label)
			assert.NotEqual(t, l.Undefined, label, "已定义得分不应落入未定义标签")
		}
	}
}

func TestClassifyUserSegment(t *testing.T) {
	tests := []struct {
		name  string
		rate  Score
		posts int
		want  string
	}{
		{"zero posts always inactive", NewScore(99), 0, "Inactive User"},
		{"zero posts undefined rate inactive", Undefined(), 0, "Inactive User"},
		{"high performer needs both floors", NewScore(8.0), 20, "High Performer"},
		{"rate floor alone insufficient", NewScore(9.5), 19, "Active Creator"},
		{"post floor alone insufficient", NewScore(7.9), 50, "Active Creator"},
		{"regular user", NewScore(2.0), 5, "Regular User"},
		{"casual user", NewScore(1.0), 3, "Casual User"},
		{"undefined rate with posts", Undefined(), 3, LabelInsufficientData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyUserSegment(tt.rate, tt.posts))
		})
	}
}

func TestClassifyChurnRisk(t *testing.T) {
	asOf := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	daysAgo := func(d int) time.Time { return asOf.AddDate(0, 0, -d) }
	ptr := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name       string
		lastPost   *time.Time
		registered time.Time
		want       string
	}{
		{"fresh account never posted", nil, daysAgo(10), "New User"},
		{"old account never posted", nil, daysAgo(200), "Never Active"},
		{"posted yesterday", ptr(daysAgo(1)), daysAgo(400), "Active"},
		{"low risk boundary", ptr(daysAgo(14)), daysAgo(400), "Low Risk"},
		{"medium risk boundary", ptr(daysAgo(30)), daysAgo(400), "Medium Risk"},
		{"high risk boundary", ptr(daysAgo(90)), daysAgo(400), "High Risk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyChurnRisk(asOf, tt.lastPost, tt.registered))
		})
	}
}

func TestAnomalyLevel(t *testing.T) {
	level, reportable := AnomalyLevel(NewScore(2.0), NewScore(0.3))
	assert.Equal(t, "High", level)
	assert.True(t, reportable)

	level, reportable = AnomalyLevel(NewScore(1.5), Undefined())
	assert.Equal(t, "Medium", level)
	assert.True(t, reportable)

	// 低于阈值的条目整行过滤，不以 Normal 上报
	_, reportable = AnomalyLevel(NewScore(1.49), NewScore(0.2))
	assert.False(t, reportable)

	_, reportable = AnomalyLevel(Undefined(), Undefined())
	assert.False(t, reportable)
}

func TestHashtagCountBucket(t *testing.T) {
	assert.Equal(t, "0", HashtagCountBucket(0))
	assert.Equal(t, "1-3", HashtagCountBucket(1))
	assert.Equal(t, "1-3", HashtagCountBucket(3))
	assert.Equal(t, "4-6", HashtagCountBucket(6))
	assert.Equal(t, "7+", HashtagCountBucket(7))
}
