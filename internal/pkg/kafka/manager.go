package kafka

import (
	"context"
	log "log/slog"
	"time"

	"Inkpost/internal/api/config"

	"github.com/IBM/sarama"
)

const consumeRetryDelay = 2 * time.Second

// ConsumerManager 管理通知进程的 Kafka 消费者
type ConsumerManager struct {
	topic          string
	notifyConsumer sarama.ConsumerGroup
	notifyHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(cfg *config.Config, inbox NotificationWriter) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	notifyConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaNotifyConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		topic:          cfg.KafkaNotifyConsumer.Topic,
		notifyConsumer: notifyConsumer,
		notifyHandler:  NewNotifyHandler(inbox),
	}, nil
}

// Start 阻塞消费直到 ctx 取消
func (m *ConsumerManager) Start(ctx context.Context) error {
	go func() {
		for err := range m.notifyConsumer.Errors() {
			log.Error("notify consumer error", "err", err)
		}
	}()

	log.Info("Notify consumer started", "topic", m.topic)
	for {
		// rebalance 后 Consume 返回，需要重新加入消费组
		if err := m.notifyConsumer.Consume(ctx, []string{m.topic}, m.notifyHandler); err != nil {
			log.Error("Error from consumer", "err", err)
			select {
			case <-ctx.Done():
			case <-time.After(consumeRetryDelay):
			}
		}
		if ctx.Err() != nil {
			break
		}
	}

	log.Info("Kafka Manager shutting down...")
	if err := m.notifyConsumer.Close(); err != nil {
		log.Error("Failed to close notify consumer", "err", err)
		return err
	}
	return nil
}
