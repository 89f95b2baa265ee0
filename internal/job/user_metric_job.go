package job

import (
	"Prism/internal/pkg/logger"
	"Prism/internal/repository"
	"Prism/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// UserMetricJob 每日为全量用户生成前一日的互动快照
type UserMetricJob struct {
	userRepo      repository.UserRepo
	userMetricSvc service.UserMetricService
}

func NewUserMetricJob(userRepo repository.UserRepo, userMetricSvc service.UserMetricService) *UserMetricJob {
	return &UserMetricJob{
		userRepo:      userRepo,
		userMetricSvc: userMetricSvc,
	}
}

func (s *UserMetricJob) Run() {
	traceID := "job-user-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	userIDs, err := s.userRepo.ListIDs(ctx)
	if err != nil {
		log.ErrorContext(ctx, "list user ids error", "err", err)
		return
	}

	failed := 0
	for _, uid := range userIDs {
		if err = s.userMetricSvc.SyncUserDailyMetric(ctx, uid); err != nil {
			log.ErrorContext(ctx, "sync user daily metric error", "uid", uid, "err", err)
			failed++
		}
	}

	log.InfoContext(ctx, "sync user daily metrics success",
		"user_count", len(userIDs),
		"failed", failed,
		"date", time.Now().AddDate(0, 0, -1).Format(time.DateOnly))
}
