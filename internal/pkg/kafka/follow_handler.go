package kafka

import (
	"Prism/internal/pkg/consts"
	"Prism/internal/pkg/redis"
	"context"
	log "log/slog"
	"strconv"

	"github.com/IBM/sarama"
)

// FollowHandler 消费关注表的 Canal 事件，维护粉丝/关注计数
type FollowHandler struct {
}

func NewFollowHandler() *FollowHandler {
	return &FollowHandler{}
}

func (s *FollowHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("follow consumer setup")
	return nil
}

func (s *FollowHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("follow consumer cleanup")
	return nil
}

func (s *FollowHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-follows consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-follows process batch error", "err", err)
		return err
	}
	return nil
}

func (s *FollowHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg)
	if err != nil || canalMsg.Table != "user_follows" {
		return nil
	}

	rdb := redis.GetRdbClient()

	pipe := rdb.Pipeline()
	var affectedUIDs []interface{}

	for _, row := range canalMsg.Data {
		followerID := StrToUint64(row["follower_id"])
		followingID := StrToUint64(row["following_id"])
		if followerID == 0 || followingID == 0 {
			continue
		}
		affectedUIDs = append(affectedUIDs, followerID, followingID)

		fdrCountKey := consts.UserFollowerCountKey + strconv.FormatUint(followingID, 10)
		fngCountKey := consts.UserFollowingCountKey + strconv.FormatUint(followerID, 10)

		if canalMsg.Type == INSERT {
			pipe.Incr(ctx, fdrCountKey)
			pipe.Incr(ctx, fngCountKey)
		} else if canalMsg.Type == DELETE {
			pipe.Decr(ctx, fdrCountKey)
			pipe.Decr(ctx, fngCountKey)
		}
	}

	if len(affectedUIDs) > 0 {
		pipe.SAdd(ctx, consts.UserFollowDirtyKey, affectedUIDs...)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		log.Error("Redis Pipeline Exec failed", "err", err, "msg_key", string(msg.Key))
		return err
	}

	return nil
}
