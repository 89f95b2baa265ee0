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

type fakeMetricRepo struct {
	rates      []float64
	viralities []float64
}

func (f *fakeMetricRepo) SaveOrUpdateMetric(context.Context, *model.PerformanceMetric) error {
	return nil
}

func (f *fakeMetricRepo) GetByContentID(context.Context, uint64) (*model.PerformanceMetric, error) {
	return nil, nil
}

func (f *fakeMetricRepo) GetReferenceRates(context.Context, analytics.Window) ([]float64, []float64, error) {
	return f.rates, f.viralities, nil
}

func TestGetAnomalyReportOrdering(t *testing.T) {
	asOf := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	posted := asOf.AddDate(0, 0, -2)

	// 总体均值 10，标准差 5
	metricRepo := &fakeMetricRepo{
		rates:      []float64{5, 15},
		viralities: []float64{5, 15},
	}
	contentRepo := &fakeContentRepo{rows: []*repository.ContentMetricRow{
		{ContentID: 7, UserID: 1, ContentType: "photo", CreatedAt: posted,
			EngagementRate: 25, ViralityScore: 10},
		{ContentID: 3, UserID: 2, ContentType: "reel", CreatedAt: posted,
			EngagementRate: 25, ViralityScore: 10},
		{ContentID: 9, UserID: 3, ContentType: "video", CreatedAt: posted,
			EngagementRate: 18, ViralityScore: 10},
		{ContentID: 4, UserID: 4, ContentType: "story", CreatedAt: posted,
			EngagementRate: 11, ViralityScore: 10},
	}}

	svc := NewAnomalyReportService(contentRepo, metricRepo,
		fixedClock{now: asOf}, "", 0)

	report, err := svc.GetAnomalyReport(context.Background(), 30, asOf)
	require.NoError(t, err)

	// z < 1.5 的内容不进报告
	require.Len(t, report.Anomalies, 3)

	// 同级同偏离度时按内容 ID 升序，顺序必须稳定可复现
	assert.Equal(t, uint64(3), report.Anomalies[0].ContentID)
	assert.Equal(t, "High", report.Anomalies[0].Level)
	assert.Equal(t, uint64(7), report.Anomalies[1].ContentID)
	assert.Equal(t, "High", report.Anomalies[1].Level)
	assert.Equal(t, uint64(9), report.Anomalies[2].ContentID)
	assert.Equal(t, "Medium", report.Anomalies[2].Level)
}
