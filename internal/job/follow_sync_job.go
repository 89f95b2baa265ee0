package job

import (
	"Prism/internal/pkg/consts"
	"Prism/internal/pkg/logger"
	"Prism/internal/pkg/redis"
	"Prism/internal/pkg/util"
	"Prism/internal/repository"
	"context"
	log "log/slog"
	"strconv"

	"github.com/google/uuid"
)

// FollowSyncJob 将 Redis 中的粉丝/关注实时计数回刷到用户表
type FollowSyncJob struct {
	userRepo repository.UserRepo
}

func NewFollowSyncJob(userRepo repository.UserRepo) *FollowSyncJob {
	return &FollowSyncJob{userRepo: userRepo}
}

func (s *FollowSyncJob) Run() {
	traceID := "job-follow-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.UserFollowDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.UserFollowDirtyKey, processingKey)
	if err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get follow dirty set error", "err", err)
		return
	}

	userIDs := util.StrSliceToUInt64Slice(tempSet)

	for _, uid := range userIDs {
		followers := s.getCount(ctx, consts.UserFollowerCountKey, uid)
		following := s.getCount(ctx, consts.UserFollowingCountKey, uid)

		if err = s.userRepo.UpdateFollowerCounts(ctx, uid, followers, following); err != nil {
			log.ErrorContext(ctx, "update follower counts error", "uid", uid, "err", err)
		}
	}

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete follow processing set error", "err", err)
	}

	log.InfoContext(ctx, "sync follower counts success", "user_count", len(userIDs))
}

func (s *FollowSyncJob) getCount(ctx context.Context, prefix string, uid uint64) int {
	val, err := redis.GetValue(ctx, prefix+strconv.FormatUint(uid, 10))
	if err != nil || val == "" {
		return 0
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
