package dto

import "time"

// AnomalyEntryDTO 偏离总体的内容
type AnomalyEntryDTO struct {
	ContentID      uint64  `json:"content_id"`
	UserID         uint64  `json:"user_id"`
	ContentType    string  `json:"content_type"`
	EngagementRate float64 `json:"engagement_rate"`
	ViralityScore  float64 `json:"virality_score"`

	RateZ     *float64 `json:"rate_z"`
	ViralityZ *float64 `json:"virality_z"`
	Level     string   `json:"level"`
}

// AnomalyReportDTO 异常检测报告
type AnomalyReportDTO struct {
	WindowDays int                `json:"window_days"`
	AsOf       time.Time          `json:"as_of"`
	RateMean   *float64           `json:"rate_mean"`
	RateStdDev *float64           `json:"rate_stddev"`
	Anomalies  []*AnomalyEntryDTO `json:"anomalies"`
}
