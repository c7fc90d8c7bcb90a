package service

import (
	"context"
	log "log/slog"
	"time"
	"unicode/utf8"

	"Inkpost/internal/pkg/kafka"
)

const previewRunes = 80

// publishEvent 通知属于旁路，投递失败只记录日志
func publishEvent(ctx context.Context, publisher kafka.EventPublisher, evt *kafka.Event) {
	if publisher == nil || evt.ReceiverID == 0 || evt.IsSelf() {
		return
	}
	if evt.CreatedAt.IsZero() {
		evt.CreatedAt = time.Now()
	}
	if err := publisher.Publish(ctx, evt); err != nil {
		log.WarnContext(ctx, "publish engagement event failed", "type", evt.Type, "target", evt.TargetID, "err", err)
	}
}

func preview(s string) string {
	if utf8.RuneCountInString(s) <= previewRunes {
		return s
	}
	return truncateRunes(s, previewRunes) + "..."
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
