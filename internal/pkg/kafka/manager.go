package kafka

import (
	"Prism/internal/api/config"
	"Prism/internal/pkg/es"
	"Prism/internal/repository"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	engagementConsumer sarama.ConsumerGroup
	engagementHandler  sarama.ConsumerGroupHandler

	followConsumer sarama.ConsumerGroup
	followHandler  sarama.ConsumerGroupHandler

	contentConsumer sarama.ConsumerGroup
	contentHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(cfg *config.Config, hashtagRepo repository.HashtagRepo, scoreRepo es.ContentScoreRepo) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	engagementConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaEngagementConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	engagementHandler := NewEngagementHandler()

	followConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaFollowConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	followHandler := NewFollowHandler()

	contentConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaContentConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	contentHandler := NewContentHandler(hashtagRepo, scoreRepo)

	return &ConsumerManager{
		engagementConsumer: engagementConsumer,
		engagementHandler:  engagementHandler,
		followConsumer:     followConsumer,
		followHandler:      followHandler,
		contentConsumer:    contentConsumer,
		contentHandler:     contentHandler,
	}, nil
}

// Start 启动所有消费者
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	// 启动 Engagement Consumer
	go func() {
		topic := cfg.KafkaEngagementConsumer.Topic
		log.Info("Engagement consumer started", "topic", topic)
		for {
			if err := m.engagementConsumer.Consume(ctx, []string{topic}, m.engagementHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	// 启动 Follow Consumer
	go func() {
		topic := cfg.KafkaFollowConsumer.Topic
		log.Info("Follow consumer started", "topic", topic)
		for {
			if err := m.followConsumer.Consume(ctx, []string{topic}, m.followHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	// 启动 Content Consumer
	go func() {
		topic := cfg.KafkaContentConsumer.Topic
		log.Info("Content consumer started", "topic", topic)
		for {
			if err := m.contentConsumer.Consume(ctx, []string{topic}, m.contentHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.engagementConsumer.Close(); err != nil {
		log.Error("Failed to close engagement consumer", "err", err)
	}
	if err := m.followConsumer.Close(); err != nil {
		log.Error("Failed to close follow consumer", "err", err)
	}
	if err := m.contentConsumer.Close(); err != nil {
		log.Error("Failed to close content consumer", "err", err)
	}

	return nil
}
