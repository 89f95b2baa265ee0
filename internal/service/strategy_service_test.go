package service

import (
	"Prism/internal/analytics"
	"Prism/internal/pkg/consts"
	"Prism/internal/repository"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func TestResolveWindow(t *testing.T) {
	clock := fixedClock{now: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}

	w, err := resolveWindow(clock, 0, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, consts.DefaultWindowDays, w.Days)
	assert.Equal(t, clock.now, w.AsOf)

	for days := range consts.AllowedWindowDays {
		w, err = resolveWindow(clock, days, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, days, w.Days)
	}

	asOf := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	w, err = resolveWindow(clock, 7, asOf)
	require.NoError(t, err)
	assert.Equal(t, asOf, w.AsOf, "显式 as_of 不应被时钟覆盖")
	assert.Equal(t, asOf.AddDate(0, 0, -7), w.Start())

	_, err = resolveWindow(clock, 15, time.Time{})
	assert.ErrorIs(t, err, ErrWindowInvalid)
	_, err = resolveWindow(clock, -7, time.Time{})
	assert.ErrorIs(t, err, ErrWindowInvalid)
}

func TestBuildRecommendationsNoPosts(t *testing.T) {
	stat := &repository.CreatorStatRow{PostCount: 0}

	recs := buildRecommendations(stat, analytics.Undefined(), "Needs Improvement", "Never Active")
	require.Len(t, recs, 2)
	assert.Contains(t, recs[0], "No posts in this window")
	assert.Contains(t, recs[1], "never posted")
}

func TestBuildRecommendationsLowVolume(t *testing.T) {
	stat := &repository.CreatorStatRow{
		PostCount:      3,
		FollowerCount:  500,
		FollowingCount: 100,
		TotalVirality:  120,
	}
	rate := analytics.NewScore(6.5)

	recs := buildRecommendations(stat, rate, "Excellent", "Low Risk")
	assert.Contains(t, recs[0], "excellent")
	assert.Contains(t, recs[1], "Posting volume is low")
	assert.Len(t, recs, 2)
}

func TestBuildRecommendationsSharePrompt(t *testing.T) {
	stat := &repository.CreatorStatRow{
		PostCount:      12,
		FollowerCount:  50,
		FollowingCount: 200,
		TotalVirality:  20,
	}
	rate := analytics.NewScore(3.5)

	recs := buildRecommendations(stat, rate, "Average", "High Risk")

	assert.Contains(t, recs, "Content engages but rarely spreads. Add shareable hooks to boost shares and saves.")
	assert.Contains(t, recs, "Follower ratio is below 1. Focus on profile quality to convert viewers into followers.")
	assert.Contains(t, recs, "Long gap since the last post. Re-engage soon before audience interest decays.")
}
