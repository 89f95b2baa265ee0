package job

import (
	"Prism/internal/pkg/consts"
	"Prism/internal/pkg/logger"
	"Prism/internal/pkg/redis"
	"Prism/internal/service"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// HashtagTrendJob 按小时重算话题热度与趋势分并失效相关报表缓存
type HashtagTrendJob struct {
	hashtagSvc service.HashtagReportService
}

func NewHashtagTrendJob(hashtagSvc service.HashtagReportService) *HashtagTrendJob {
	return &HashtagTrendJob{hashtagSvc: hashtagSvc}
}

func (s *HashtagTrendJob) Run() {
	traceID := "job-hashtag-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	lockVal := traceID
	locked, err := redis.TryLock(ctx, consts.HashtagTrendLock, lockVal, 30*time.Minute, 1)
	if err != nil || !locked {
		return
	}
	defer redis.UnLock(ctx, consts.HashtagTrendLock, lockVal)

	if err = s.hashtagSvc.RefreshHashtagScores(ctx); err != nil {
		log.ErrorContext(ctx, "refresh hashtag scores error", "err", err)
		return
	}

	for days := range consts.AllowedWindowDays {
		_ = redis.DeleteKey(ctx, consts.ReportHashtagKey+strconv.Itoa(days))
	}

	log.InfoContext(ctx, "refresh hashtag scores success")
}
