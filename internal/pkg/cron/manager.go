package cron

import (
	"Prism/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine           *cron.Cron
	metricRefreshJob *job.MetricRefreshJob
	followSyncJob    *job.FollowSyncJob
	hashtagTrendJob  *job.HashtagTrendJob
	userMetricJob    *job.UserMetricJob
	reportArchiveJob *job.ReportArchiveJob
}

func NewCronManager(
	metricRefreshJob *job.MetricRefreshJob,
	followSyncJob *job.FollowSyncJob,
	hashtagTrendJob *job.HashtagTrendJob,
	userMetricJob *job.UserMetricJob,
	reportArchiveJob *job.ReportArchiveJob,
) *Manager {
	return &Manager{
		engine:           cron.New(cron.WithSeconds()),
		metricRefreshJob: metricRefreshJob,
		followSyncJob:    followSyncJob,
		hashtagTrendJob:  hashtagTrendJob,
		userMetricJob:    userMetricJob,
		reportArchiveJob: reportArchiveJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	// 脏集合回刷走高频，分数与归档走低频
	if _, err := s.engine.AddJob("0 */5 * * * *", s.metricRefreshJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("30 */5 * * * *", s.followSyncJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@hourly", s.hashtagTrendJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@daily", s.userMetricJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@daily", s.reportArchiveJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
