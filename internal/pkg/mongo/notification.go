package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification 站内通知
type Notification struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReceiverID uint64             `bson:"receiver_id" json:"receiverId"`
	SenderID   uint64             `bson:"sender_id" json:"senderId"`
	Type       string             `bson:"type" json:"type"`           // post_like, post_save, comment, reply, comment_like, follow
	TargetID   uint64             `bson:"target_id" json:"targetId"`  // 帖子、评论或用户 ID
	Content    string             `bson:"content" json:"content"`     // 文案预览
	Payload    map[string]any     `bson:"payload" json:"payload"`     // 帖子标题等快照
	IsRead     bool               `bson:"is_read" json:"isRead"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}
