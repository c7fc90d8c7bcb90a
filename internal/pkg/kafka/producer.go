package kafka

import (
	"context"
	log "log/slog"
	"strconv"

	"Inkpost/internal/api/config"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// EventPublisher 互动事件发布
type EventPublisher interface {
	Publish(ctx context.Context, e *Event) error
	Close() error
}

type saramaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewEventPublisher 未配置 broker 时返回空实现，API 进程不依赖 Kafka 也能运行
func NewEventPublisher(cfg *config.Config) (EventPublisher, error) {
	if len(cfg.Kafka.Brokers) == 0 || cfg.KafkaNotifyConsumer.Topic == "" {
		log.Warn("kafka brokers not configured, engagement events disabled")
		return NoopPublisher{}, nil
	}

	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, newSaramaConfig(cfg.Kafka))
	if err != nil {
		return nil, err
	}
	return &saramaPublisher{producer: producer, topic: cfg.KafkaNotifyConsumer.Topic}, nil
}

func (p *saramaPublisher) Publish(ctx context.Context, e *Event) error {
	data, err := EncodeEvent(e)
	if err != nil {
		return err
	}

	// 按接收者分区，同一用户的通知保持顺序
	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(e.ReceiverID, 10)),
		Value: sarama.ByteEncoder(data),
	})
	if err != nil {
		return errors.Wrapf(err, "publish %s event", e.Type)
	}

	log.DebugContext(ctx, "engagement event published", "type", e.Type, "partition", partition, "offset", offset)
	return nil
}

func (p *saramaPublisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher 丢弃所有事件
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, *Event) error { return nil }

func (NoopPublisher) Close() error { return nil }
