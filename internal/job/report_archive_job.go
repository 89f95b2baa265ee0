package job

import (
	"Prism/internal/api/dto"
	"Prism/internal/pkg/consts"
	"Prism/internal/pkg/logger"
	"Prism/internal/pkg/minio"
	"Prism/internal/pkg/mongo"
	"Prism/internal/pkg/redis"
	"Prism/internal/service"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	log "log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// ReportArchiveJob 每日归档核心报表：快照进 MongoDB，导出 CSV 进对象存储
type ReportArchiveJob struct {
	contentSvc     service.ContentReportService
	leaderboardSvc service.LeaderboardService
	creatorSvc     service.CreatorReportService
	hashtagSvc     service.HashtagReportService
	timingSvc      service.TimingReportService
	anomalySvc     service.AnomalyReportService
	archiveRepo    mongo.ReportArchiveRepo
}

func NewReportArchiveJob(
	contentSvc service.ContentReportService,
	leaderboardSvc service.LeaderboardService,
	creatorSvc service.CreatorReportService,
	hashtagSvc service.HashtagReportService,
	timingSvc service.TimingReportService,
	anomalySvc service.AnomalyReportService,
	archiveRepo mongo.ReportArchiveRepo,
) *ReportArchiveJob {
	return &ReportArchiveJob{
		contentSvc:     contentSvc,
		leaderboardSvc: leaderboardSvc,
		creatorSvc:     creatorSvc,
		hashtagSvc:     hashtagSvc,
		timingSvc:      timingSvc,
		anomalySvc:     anomalySvc,
		archiveRepo:    archiveRepo,
	}
}

func (s *ReportArchiveJob) Run() {
	traceID := "job-archive-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	lockVal := traceID
	locked, err := redis.TryLock(ctx, consts.ReportArchiveLock, lockVal, 20*time.Minute, 1)
	if err != nil || !locked {
		return
	}
	defer redis.UnLock(ctx, consts.ReportArchiveLock, lockVal)

	days := consts.DefaultWindowDays

	s.archiveContentReport(ctx, days)
	s.archiveCategoryReport(ctx, days)
	s.archiveContentTypeReport(ctx, days)
	s.archiveCreatorReport(ctx, days)
	s.archiveHashtagReport(ctx, days)
	s.archiveTimingReport(ctx, days)
	s.archiveAnomalyReport(ctx, days)

	log.InfoContext(ctx, "archive daily reports success", "window_days", days)
}

func (s *ReportArchiveJob) archiveContentReport(ctx context.Context, days int) {
	report, err := s.contentSvc.GetContentWindowReport(ctx, days, time.Time{})
	if err != nil {
		log.ErrorContext(ctx, "generate content window report error", "err", err)
		return
	}

	objectKey := s.exportContentCSV(ctx, report)
	s.save(ctx, "content", days, report.AsOf, report, objectKey)
}

func (s *ReportArchiveJob) archiveCategoryReport(ctx context.Context, days int) {
	report, err := s.leaderboardSvc.GetCategoryLeaderboard(ctx, days, time.Time{})
	if err != nil {
		log.ErrorContext(ctx, "generate category leaderboard error", "err", err)
		return
	}

	objectKey := s.exportLeaderboardCSV(ctx, report)
	s.save(ctx, "category", days, report.AsOf, report, objectKey)
}

func (s *ReportArchiveJob) archiveContentTypeReport(ctx context.Context, days int) {
	report, err := s.leaderboardSvc.GetContentTypeLeaderboard(ctx, days, time.Time{})
	if err != nil {
		log.ErrorContext(ctx, "generate content-type leaderboard error", "err", err)
		return
	}

	objectKey := s.exportLeaderboardCSV(ctx, report)
	s.save(ctx, "content-type", days, report.AsOf, report, objectKey)
}

func (s *ReportArchiveJob) archiveCreatorReport(ctx context.Context, days int) {
	report, err := s.creatorSvc.GetCreatorReport(ctx, days, time.Time{})
	if err != nil {
		log.ErrorContext(ctx, "generate creator report error", "err", err)
		return
	}

	objectKey := s.exportCreatorCSV(ctx, report)
	s.save(ctx, "creator", days, report.AsOf, report, objectKey)
}

func (s *ReportArchiveJob) archiveHashtagReport(ctx context.Context, days int) {
	report, err := s.hashtagSvc.GetHashtagReport(ctx, days, time.Time{})
	if err != nil {
		log.ErrorContext(ctx, "generate hashtag report error", "err", err)
		return
	}

	s.save(ctx, "hashtag", days, report.AsOf, report, "")
}

func (s *ReportArchiveJob) archiveTimingReport(ctx context.Context, days int) {
	report, err := s.timingSvc.GetTimingReport(ctx, days, time.Time{})
	if err != nil {
		log.ErrorContext(ctx, "generate timing report error", "err", err)
		return
	}

	s.save(ctx, "timing", days, report.AsOf, report, "")
}

func (s *ReportArchiveJob) archiveAnomalyReport(ctx context.Context, days int) {
	report, err := s.anomalySvc.GetAnomalyReport(ctx, days, time.Time{})
	if err != nil {
		log.ErrorContext(ctx, "generate anomaly report error", "err", err)
		return
	}

	s.save(ctx, "anomaly", days, report.AsOf, report, "")

	if err = s.anomalySvc.NotifyHighAnomalies(ctx, report); err != nil {
		log.ErrorContext(ctx, "notify high anomalies error", "err", err)
	}
}

func (s *ReportArchiveJob) save(ctx context.Context, reportType string, days int, asOf time.Time, report interface{}, objectKey string) {
	payload, err := json.Marshal(report)
	if err != nil {
		log.ErrorContext(ctx, "marshal report payload error", "type", reportType, "err", err)
		return
	}

	archive := &mongo.ReportArchive{
		ReportType: reportType,
		WindowDays: days,
		AsOf:       asOf,
		Payload:    payload,
		ObjectKey:  objectKey,
		CreatedAt:  time.Now(),
	}

	if err = s.archiveRepo.SaveArchive(ctx, archive); err != nil {
		log.ErrorContext(ctx, "save report archive error", "type", reportType, "err", err)
	}
}

func (s *ReportArchiveJob) exportContentCSV(ctx context.Context, report *dto.ContentWindowReportDTO) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"content_id", "user_id", "content_type", "content_category",
		"engagement_rate", "virality_score", "viral_coefficient", "quality_score",
		"viral_status", "quality_tier"})
	for _, p := range report.Posts {
		_ = w.Write([]string{
			strconv.FormatUint(p.ContentID, 10),
			strconv.FormatUint(p.UserID, 10),
			p.ContentType,
			p.ContentCategory,
			strconv.FormatFloat(p.EngagementRate, 'f', 2, 64),
			strconv.FormatFloat(p.ViralityScore, 'f', 2, 64),
			formatScore(p.ViralCoefficient),
			formatScore(p.QualityScore),
			p.ViralStatus,
			p.QualityTier,
		})
	}
	w.Flush()

	objectName := fmt.Sprintf("content/%s.csv", report.AsOf.Format(time.DateOnly))
	return s.upload(ctx, objectName, &buf)
}

// formatScore 未定义的分值在 CSV 中留空
func formatScore(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func (s *ReportArchiveJob) exportLeaderboardCSV(ctx context.Context, report *dto.LeaderboardDTO) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"rank", "key", "post_count", "avg_engagement_rate", "total_virality", "performance"})
	for _, e := range report.Entries {
		_ = w.Write([]string{
			strconv.Itoa(e.Rank),
			e.Key,
			strconv.Itoa(e.PostCount),
			strconv.FormatFloat(e.AvgEngagementRate, 'f', 2, 64),
			strconv.FormatFloat(e.TotalVirality, 'f', 2, 64),
			e.Performance,
		})
	}
	w.Flush()

	objectName := fmt.Sprintf("leaderboard/%s/%s.csv", report.Dimension, report.AsOf.Format(time.DateOnly))
	return s.upload(ctx, objectName, &buf)
}

func (s *ReportArchiveJob) exportCreatorCSV(ctx context.Context, report *dto.CreatorReportDTO) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"rank", "user_id", "username", "post_count", "avg_engagement_rate",
		"total_virality", "influencer_tier", "segment", "churn_risk"})
	for _, e := range report.Creators {
		_ = w.Write([]string{
			strconv.Itoa(e.Rank),
			strconv.FormatUint(e.UserID, 10),
			e.Username,
			strconv.Itoa(e.PostCount),
			strconv.FormatFloat(e.AvgEngagementRate, 'f', 2, 64),
			strconv.FormatFloat(e.TotalVirality, 'f', 2, 64),
			e.InfluencerTier,
			e.Segment,
			e.ChurnRisk,
		})
	}
	w.Flush()

	objectName := fmt.Sprintf("creators/%s.csv", report.AsOf.Format(time.DateOnly))
	return s.upload(ctx, objectName, &buf)
}

func (s *ReportArchiveJob) upload(ctx context.Context, objectName string, buf *bytes.Buffer) string {
	key, err := minio.UploadFile(ctx, objectName, buf, int64(buf.Len()), "text/csv")
	if err != nil {
		log.ErrorContext(ctx, "upload report csv error", "object", objectName, "err", err)
		return ""
	}
	return key
}
