package kafka

import (
	"Prism/internal/pkg/redis"
	"context"
	"fmt"
	log "log/slog"
	"strconv"
)

// Canal 事件类型
const (
	INSERT = "INSERT"
	UPDATE = "UPDATE"
	DELETE = "DELETE"
)

// StrToUint64 Canal 的 Data 字段均以字符串承载数值
func StrToUint64(v interface{}) uint64 {
	switch val := v.(type) {
	case string:
		n, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return 0
		}
		return n
	case float64:
		return uint64(val)
	default:
		return 0
	}
}

// ActionParams 计数类事件的通用参数
type ActionParams struct {
	TargetID       uint64
	CountKeyPrefix string
	DirtyKey       string
	IsIncrement    bool
}

// ExecAction 对计数键做增减并标脏，等待定时任务回刷数据库
func ExecAction(ctx context.Context, params ActionParams) {
	rdb := redis.GetRdbClient()
	countKey := params.CountKeyPrefix + strconv.FormatUint(params.TargetID, 10)

	pipe := rdb.Pipeline()
	if params.IsIncrement {
		pipe.Incr(ctx, countKey)
	} else {
		pipe.Decr(ctx, countKey)
	}
	pipe.SAdd(ctx, params.DirtyKey, fmt.Sprintf("%d", params.TargetID))

	if _, err := pipe.Exec(ctx); err != nil {
		log.ErrorContext(ctx, "exec action pipeline failed", "key", countKey, "err", err)
	}
}
