package api

import "Prism/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AuthHandler             *handler.AuthHandler
	ContentReportHandler    *handler.ContentReportHandler
	ContentDiscoveryHandler *handler.ContentDiscoveryHandler
	LeaderboardHandler      *handler.LeaderboardHandler
	CreatorReportHandler    *handler.CreatorReportHandler
	HashtagReportHandler    *handler.HashtagReportHandler
	TimingReportHandler     *handler.TimingReportHandler
	AnomalyReportHandler    *handler.AnomalyReportHandler
	StrategyHandler         *handler.StrategyHandler
	UserMetricHandler       *handler.UserMetricHandler
	ReportArchiveHandler    *handler.ReportArchiveHandler
}
