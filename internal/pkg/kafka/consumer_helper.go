package kafka

import (
	"context"
	log "log/slog"
	"sync"
	"time"

	"github.com/IBM/sarama"
)

const (
	batchSize       = 32
	batchTimeout    = 1 * time.Second
	maxAttempts     = 5
	initialBackoff  = 100 * time.Millisecond
	maxRetryBackoff = 5 * time.Second
)

type LogicFunc func(ctx context.Context, msg *sarama.ConsumerMessage) error

// pullMessageBatch 按数量或超时攒批，逐批执行业务逻辑并提交位点
func pullMessageBatch(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim, logic LogicFunc) error {
	batch := make([]*sarama.ConsumerMessage, 0, batchSize)
	ticker := time.NewTicker(batchTimeout)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		processBatch(session, batch, logic)
		batch = make([]*sarama.ConsumerMessage, 0, batchSize)
	}

	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				flush()
				return nil
			}
			batch = append(batch, msg)
			if len(batch) >= batchSize {
				flush()
				ticker.Reset(batchTimeout)
			}
		case <-ticker.C:
			flush()
		case <-session.Context().Done():
			return nil
		}
	}
}

// processBatch 并发处理一批消息，全部结束后标记最后一条并提交
func processBatch(session sarama.ConsumerGroupSession, messages []*sarama.ConsumerMessage, logic LogicFunc) {
	var wg sync.WaitGroup
	for _, msg := range messages {
		wg.Add(1)
		go func(m *sarama.ConsumerMessage) {
			defer wg.Done()
			runWithRetry(session.Context(), m, logic)
		}(msg)
	}
	wg.Wait()

	if session.Context().Err() != nil {
		return
	}
	session.MarkMessage(messages[len(messages)-1], "")
	session.Commit()
}

// runWithRetry 指数退避重试，超过次数后放弃该消息
func runWithRetry(ctx context.Context, m *sarama.ConsumerMessage, logic LogicFunc) {
	backoff := initialBackoff
	for attempt := 1; ; attempt++ {
		err := logic(ctx, m)
		if err == nil {
			return
		}
		if attempt >= maxAttempts {
			log.Error("drop message after retries", "topic", m.Topic, "partition", m.Partition, "offset", m.Offset, "err", err)
			return
		}
		log.Warn("process message error", "topic", m.Topic, "offset", m.Offset, "attempt", attempt, "err", err)

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > maxRetryBackoff {
			backoff = maxRetryBackoff
		}
	}
}
