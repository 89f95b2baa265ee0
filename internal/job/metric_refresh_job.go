package job

import (
	"Prism/internal/pkg/consts"
	"Prism/internal/pkg/logger"
	"Prism/internal/pkg/redis"
	"Prism/internal/pkg/util"
	"Prism/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

type MetricRefreshJob struct {
	refreshSvc service.MetricRefreshService
}

func NewMetricRefreshJob(refreshSvc service.MetricRefreshService) *MetricRefreshJob {
	return &MetricRefreshJob{refreshSvc: refreshSvc}
}

func (s *MetricRefreshJob) Run() {
	traceID := "job-metric-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	lockVal := traceID
	locked, err := redis.TryLock(ctx, consts.MetricRefreshLock, lockVal, 4*time.Minute, 1)
	if err != nil || !locked {
		return
	}
	defer redis.UnLock(ctx, consts.MetricRefreshLock, lockVal)

	processingKey := consts.ContentDirtyKey + ":processing"
	err = redis.Rename(ctx, consts.ContentDirtyKey, processingKey)
	if err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get content dirty set error", "err", err)
		return
	}

	contentIDs := util.StrSliceToUInt64Slice(tempSet)

	failed := 0
	for _, cid := range contentIDs {
		if err = s.refreshSvc.RefreshContentMetric(ctx, cid); err != nil {
			log.ErrorContext(ctx, "refresh content metric error", "cid", cid, "err", err)
			failed++
		}
	}

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete content processing set error", "err", err)
	}

	log.InfoContext(ctx, "refresh content metrics success",
		"content_count", len(contentIDs),
		"failed", failed)
}
