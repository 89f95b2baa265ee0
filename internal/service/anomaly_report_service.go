package service

import (
	"Prism/internal/analytics"
	"Prism/internal/api/dto"
	"Prism/internal/pkg/consts"
	"Prism/internal/pkg/redis"
	"Prism/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

type AnomalyReportService interface {
	// GetAnomalyReport 异常检测报告：互动率与传播分偏离总体的内容
	GetAnomalyReport(ctx context.Context, days int, asOf time.Time) (*dto.AnomalyReportDTO, error)
	// NotifyHighAnomalies 将高风险异常推送到告警 webhook
	NotifyHighAnomalies(ctx context.Context, report *dto.AnomalyReportDTO) error
}

type anomalyReportServiceImpl struct {
	contentRepo repository.ContentRepo
	metricRepo  repository.PerformanceMetricRepo
	clock       analytics.Clock
	alertClient *resty.Client
	webhookURL  string
}

func NewAnomalyReportService(
	contentRepo repository.ContentRepo,
	metricRepo repository.PerformanceMetricRepo,
	clock analytics.Clock,
	webhookURL string,
	timeoutSeconds int,
) AnomalyReportService {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 10
	}
	client := resty.New().
		SetTimeout(time.Duration(timeoutSeconds) * time.Second).
		SetRetryCount(2)

	return &anomalyReportServiceImpl{
		contentRepo: contentRepo,
		metricRepo:  metricRepo,
		clock:       clock,
		alertClient: client,
		webhookURL:  webhookURL,
	}
}

func (s *anomalyReportServiceImpl) GetAnomalyReport(ctx context.Context, days int, asOf time.Time) (*dto.AnomalyReportDTO, error) {
	w, err := resolveWindow(s.clock, days, asOf)
	if err != nil {
		return nil, err
	}

	key := consts.ReportAnomalyKey + strconv.Itoa(w.Days)
	if cacheable(asOf) {
		if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
			var res dto.AnomalyReportDTO
			if err = json.Unmarshal([]byte(val), &res); err == nil {
				return &res, nil
			}
		}
	}

	rates, viralities, err := s.metricRepo.GetReferenceRates(ctx, w)
	if err != nil {
		return nil, err
	}

	rateMean := analytics.Mean(rates)
	rateStd := analytics.StdDev(rates)
	viralityMean := analytics.Mean(viralities)
	viralityStd := analytics.StdDev(viralities)

	rows, err := s.contentRepo.GetContentWithMetrics(ctx, w)
	if err != nil {
		return nil, err
	}

	anomalies := make([]*dto.AnomalyEntryDTO, 0)
	for _, r := range rows {
		rateZ := analytics.Undefined()
		if rateMean.Valid && rateStd.Valid {
			rateZ = analytics.AnomalyZ(r.EngagementRate, rateMean.Value, rateStd.Value)
		}
		viralityZ := analytics.Undefined()
		if viralityMean.Valid && viralityStd.Valid {
			viralityZ = analytics.AnomalyZ(r.ViralityScore, viralityMean.Value, viralityStd.Value)
		}

		level, reportable := analytics.AnomalyLevel(rateZ, viralityZ)
		if !reportable {
			continue
		}

		anomalies = append(anomalies, &dto.AnomalyEntryDTO{
			ContentID:      r.ContentID,
			UserID:         r.UserID,
			ContentType:    r.ContentType,
			EngagementRate: r.EngagementRate,
			ViralityScore:  r.ViralityScore,
			RateZ:          scorePtr(rateZ.Rounded()),
			ViralityZ:      scorePtr(viralityZ.Rounded()),
			Level:          level,
		})
	}

	// High 在前，组内按偏离程度降序，内容 ID 升序兜底
	sort.Slice(anomalies, func(i, j int) bool {
		a, b := anomalies[i], anomalies[j]
		if a.Level != b.Level {
			return a.Level == "High"
		}
		if maxZ(a) != maxZ(b) {
			return maxZ(a) > maxZ(b)
		}
		return a.ContentID < b.ContentID
	})

	res := &dto.AnomalyReportDTO{
		WindowDays: w.Days,
		AsOf:       w.AsOf,
		RateMean:   scorePtr(rateMean.Rounded()),
		RateStdDev: scorePtr(rateStd.Rounded()),
		Anomalies:  anomalies,
	}

	if cacheable(asOf) {
		if b, err := json.Marshal(res); err == nil {
			_ = redis.SetWithMidnightExpiration(ctx, key, string(b))
		}
	}

	return res, nil
}

func (s *anomalyReportServiceImpl) NotifyHighAnomalies(ctx context.Context, report *dto.AnomalyReportDTO) error {
	if s.webhookURL == "" {
		return nil
	}

	high := make([]*dto.AnomalyEntryDTO, 0)
	for _, a := range report.Anomalies {
		if a.Level == "High" {
			high = append(high, a)
		}
	}
	if len(high) == 0 {
		return nil
	}

	payload := map[string]interface{}{
		"source":      "prism",
		"window_days": report.WindowDays,
		"as_of":       report.AsOf,
		"count":       len(high),
		"anomalies":   high,
	}

	resp, err := s.alertClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(s.webhookURL)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("alert webhook returned status %d", resp.StatusCode())
	}

	log.InfoContext(ctx, "high anomalies notified", "count", len(high))
	return nil
}

func maxZ(e *dto.AnomalyEntryDTO) float64 {
	v := 0.0
	if e.RateZ != nil && *e.RateZ > v {
		v = *e.RateZ
	}
	if e.ViralityZ != nil && *e.ViralityZ > v {
		v = *e.ViralityZ
	}
	return v
}
