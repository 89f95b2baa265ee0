package kafka

import (
	"Prism/internal/pkg/consts"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// engagementTables 互动明细表到计数键前缀的映射
var engagementTables = map[string]string{
	"likes":    consts.ContentLikeKey,
	"comments": consts.ContentCommentKey,
	"shares":   consts.ContentShareKey,
	"saves":    consts.ContentSaveKey,
	"views":    consts.ContentViewKey,
}

// EngagementHandler 消费五张互动明细表的 Canal 事件，累加 Redis 计数并标脏
type EngagementHandler struct {
}

func NewEngagementHandler() *EngagementHandler {
	return &EngagementHandler{}
}

func (s *EngagementHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("engagement consumer setup")
	return nil
}

func (s *EngagementHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("engagement consumer cleanup")
	return nil
}

func (s *EngagementHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-engagement consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-engagement process batch error", "err", err)
		return err
	}
	return nil
}

func (s *EngagementHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg)
	if err != nil {
		return nil
	}

	countKeyPrefix, ok := engagementTables[canalMsg.Table]
	if !ok {
		return nil
	}

	// 互动明细表只有物理增删，UPDATE 不改变计数
	switch canalMsg.Type {
	case INSERT:
		return s.apply(ctx, canalMsg, countKeyPrefix, true)
	case DELETE:
		return s.apply(ctx, canalMsg, countKeyPrefix, false)
	default:
		return nil
	}
}

func (s *EngagementHandler) apply(ctx context.Context, msg *CanalMessage, countKeyPrefix string, increment bool) error {
	for _, row := range msg.Data {
		contentID := StrToUint64(row["content_id"])
		if contentID == 0 {
			continue
		}

		ExecAction(ctx, ActionParams{
			TargetID:       contentID,
			CountKeyPrefix: countKeyPrefix,
			DirtyKey:       consts.ContentDirtyKey,
			IsIncrement:    increment,
		})
	}

	log.InfoContext(ctx, "engagement event processed",
		"table", msg.Table, "type", msg.Type, "rows", len(msg.Data))
	return nil
}
