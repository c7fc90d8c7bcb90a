package kafka

import (
	"context"
	log "log/slog"

	"Inkpost/internal/pkg/mongo"

	"github.com/IBM/sarama"
)

// NotificationWriter 通知落库
type NotificationWriter interface {
	CreateNotification(ctx context.Context, msg *mongo.Notification) error
}

// NotifyHandler 消费互动事件，写入接收者的收件箱
type NotifyHandler struct {
	inbox NotificationWriter
}

func NewNotifyHandler(inbox NotificationWriter) *NotifyHandler {
	return &NotifyHandler{inbox: inbox}
}

func (s *NotifyHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("notify consumer setup")
	return nil
}

func (s *NotifyHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("notify consumer cleanup")
	return nil
}

func (s *NotifyHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("notify consume claim", "topic", claim.Topic(), "partition", claim.Partition())
	return pullMessageBatch(session, claim, s.logic)
}

func (s *NotifyHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	return s.Handle(ctx, msg.Value)
}

// Handle 处理单条事件；无法解析的消息直接丢弃，不进入重试
func (s *NotifyHandler) Handle(ctx context.Context, value []byte) error {
	evt, err := DecodeEvent(value)
	if err != nil {
		log.WarnContext(ctx, "skip malformed event", "err", err)
		return nil
	}
	if evt.IsSelf() {
		return nil
	}

	notification := &mongo.Notification{
		ReceiverID: evt.ReceiverID,
		SenderID:   evt.ActorID,
		Type:       string(evt.Type),
		TargetID:   evt.TargetID,
		Content:    notificationText(evt),
		Payload:    evt.Payload,
		IsRead:     false,
		CreatedAt:  evt.CreatedAt,
	}
	if err = s.inbox.CreateNotification(ctx, notification); err != nil {
		return err
	}

	log.InfoContext(ctx, "notification created", "type", evt.Type, "receiver", evt.ReceiverID, "target", evt.TargetID)
	return nil
}

func notificationText(evt *Event) string {
	var action string
	switch evt.Type {
	case EventPostLike:
		action = "liked your post"
	case EventPostSave:
		action = "saved your post"
	case EventComment:
		action = "commented on your post"
	case EventReply:
		action = "replied to your comment"
	case EventCommentLike:
		action = "liked your comment"
	case EventFollow:
		action = "started following you"
	default:
		action = string(evt.Type)
	}
	if evt.Preview == "" {
		return action
	}
	return action + ": " + evt.Preview
}
