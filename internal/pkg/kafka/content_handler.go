package kafka

import (
	"Prism/internal/model"
	"Prism/internal/pkg/consts"
	"Prism/internal/pkg/es"
	"Prism/internal/pkg/redis"
	"Prism/internal/pkg/util"
	"Prism/internal/repository"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ContentHandler 消费内容表的 Canal 事件：新增内容抽取正文话题并落库关联，
// 删除内容同步清理 ES 评分文档
type ContentHandler struct {
	hashtagRepo repository.HashtagRepo
	scoreRepo   es.ContentScoreRepo
}

func NewContentHandler(hashtagRepo repository.HashtagRepo, scoreRepo es.ContentScoreRepo) *ContentHandler {
	return &ContentHandler{hashtagRepo: hashtagRepo, scoreRepo: scoreRepo}
}

func (s *ContentHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("content consumer setup")
	return nil
}

func (s *ContentHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("content consumer cleanup")
	return nil
}

func (s *ContentHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-content consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-content process batch error", "err", err)
		return err
	}
	return nil
}

func (s *ContentHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg)
	if err != nil || canalMsg.Table != "content_posts" {
		return nil
	}

	switch canalMsg.Type {
	case INSERT:
		return s.handleInsert(ctx, canalMsg)
	case DELETE:
		return s.handleDelete(ctx, canalMsg)
	default:
		return nil
	}
}

func (s *ContentHandler) handleInsert(ctx context.Context, canalMsg *CanalMessage) error {
	for _, row := range canalMsg.Data {
		contentID := StrToUint64(row["id"])
		if contentID == 0 {
			continue
		}
		caption, _ := row["caption"].(string)

		if err := s.linkTags(ctx, contentID, caption); err != nil {
			log.ErrorContext(ctx, "link content hashtags error", "content_id", contentID, "err", err)
			continue
		}

		// 新内容同样进指标刷新队列
		if err := redis.SAdd(ctx, consts.ContentDirtyKey, contentID); err != nil {
			log.ErrorContext(ctx, "mark content dirty error", "content_id", contentID, "err", err)
		}
	}

	return nil
}

func (s *ContentHandler) handleDelete(ctx context.Context, canalMsg *CanalMessage) error {
	for _, row := range canalMsg.Data {
		contentID := StrToUint64(row["id"])
		if contentID == 0 {
			continue
		}
		if err := s.scoreRepo.DeleteContentScore(ctx, contentID); err != nil {
			log.ErrorContext(ctx, "delete content score doc error", "content_id", contentID, "err", err)
		}
	}

	return nil
}

func (s *ContentHandler) linkTags(ctx context.Context, contentID uint64, caption string) error {
	tags := util.ExtractTags(caption)
	for i, tagName := range tags {
		if err := s.hashtagRepo.CreateIfAbsent(ctx, &model.Hashtag{TagName: tagName}); err != nil {
			return err
		}
		tag, err := s.hashtagRepo.GetByName(ctx, tagName)
		if err != nil {
			return err
		}
		if tag == nil {
			continue
		}
		if err = s.hashtagRepo.LinkContent(ctx, contentID, tag.ID, i); err != nil {
			return err
		}
	}
	return nil
}
