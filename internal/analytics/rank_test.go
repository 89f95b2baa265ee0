package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilterMinSample(t *testing.T) {
	groups := []GroupStat{
		{Key: "travel", Count: 4},
		{Key: "food", Count: 5},
		{Key: "fashion", Count: 6},
	}

	got := FilterMinSample(groups, 5)
	// count = threshold-1 剔除，count = threshold 保留
	assert.Len(t, got, 2)
	assert.Equal(t, "food", got[0].Key)
	assert.Equal(t, "fashion", got[1].Key)
}

func TestSortLeaderboardTieBreak(t *testing.T) {
	groups := []GroupStat{
		{Key: "food", Count: 10, AvgEngagementRate: 6.0, TotalVirality: 12.0},
		{Key: "travel", Count: 30, AvgEngagementRate: 6.0, TotalVirality: 20.0},
		{Key: "fashion", Count: 50, AvgEngagementRate: 7.5, TotalVirality: 1.0},
	}

	SortLeaderboard(groups)

	assert.Equal(t, "fashion", groups[0].Key)
	// 平均互动率并列时，累计传播分高者在前；Count 等其他字段不参与排序
	assert.Equal(t, "travel", groups[1].Key)
	assert.Equal(t, "food", groups[2].Key)
}

func TestSortLeaderboardStableTotalOrder(t *testing.T) {
	mk := func() []GroupStat {
		return []GroupStat{
			{Key: "b", AvgEngagementRate: 5, TotalVirality: 3},
			{Key: "a", AvgEngagementRate: 5, TotalVirality: 3},
			{Key: "c", AvgEngagementRate: 5, TotalVirality: 3},
		}
	}

	g1, g2 := mk(), mk()
	SortLeaderboard(g1)
	SortLeaderboard(g2)
	assert.Equal(t, g1, g2, "完全并列时按 Key 决定顺序，排序结果可复现")
	assert.Equal(t, "a", g1[0].Key)
}

func TestTopN(t *testing.T) {
	groups := []GroupStat{{Key: "a"}, {Key: "b"}, {Key: "c"}}
	assert.Len(t, TopN(groups, 2), 2)
	assert.Len(t, TopN(groups, 0), 3)
	assert.Len(t, TopN(groups, 10), 3)
}

func TestWindow(t *testing.T) {
	asOf := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	w := NewWindow(asOf, 30)

	assert.Equal(t, asOf.AddDate(0, 0, -30), w.Start())
	assert.True(t, w.Contains(asOf))
	assert.True(t, w.Contains(asOf.AddDate(0, 0, -29)))
	assert.False(t, w.Contains(w.Start()))
	assert.False(t, w.Contains(asOf.Add(time.Second)))
}
