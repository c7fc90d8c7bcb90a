package kafka

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// EventType 互动事件类型
type EventType string

const (
	EventPostLike    EventType = "post_like"
	EventPostSave    EventType = "post_save"
	EventComment     EventType = "comment"
	EventReply       EventType = "reply"
	EventCommentLike EventType = "comment_like"
	EventFollow      EventType = "follow"
)

// Event 投递到互动 topic 的消息体
type Event struct {
	Type       EventType      `json:"type"`
	ActorID    uint64         `json:"actor_id"`
	ReceiverID uint64         `json:"receiver_id"`
	TargetID   uint64         `json:"target_id"`
	Preview    string         `json:"preview,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// IsSelf 自己对自己的互动不产生通知
func (e *Event) IsSelf() bool {
	return e.ActorID == e.ReceiverID
}

func EncodeEvent(e *Event) ([]byte, error) {
	return json.Marshal(e)
}

func DecodeEvent(data []byte) (*Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, errors.Wrap(err, "decode engagement event")
	}
	if e.Type == "" || e.ReceiverID == 0 {
		return nil, errors.Errorf("incomplete engagement event: type=%q receiver=%d", e.Type, e.ReceiverID)
	}
	return &e, nil
}
