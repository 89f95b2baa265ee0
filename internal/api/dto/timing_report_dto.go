package dto

import "time"

// TimingSlotDTO 单个发布时段的表现
type TimingSlotDTO struct {
	Hour              int     `json:"hour"`
	Weekday           int     `json:"weekday"`
	PostCount         int     `json:"post_count"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
	TotalVirality     float64 `json:"total_virality"`
}

// TimingReportDTO 发布时机报告
type TimingReportDTO struct {
	WindowDays int              `json:"window_days"`
	AsOf       time.Time        `json:"as_of"`
	MinSample  int              `json:"min_sample"`
	Slots      []*TimingSlotDTO `json:"slots"`
	BestSlot   *TimingSlotDTO   `json:"best_slot"`
}
