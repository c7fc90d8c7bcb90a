package dto

// SysBoxDTO 通知返回对象
type SysBoxDTO struct {
	ID         string         `json:"id"`
	SenderID   uint64         `json:"sender_id"`
	SenderName string         `json:"sender_name"`
	AvatarURL  string         `json:"avatar_url"`
	Type       string         `json:"type"`
	TargetID   uint64         `json:"target_id"`
	Content    string         `json:"content"`
	Payload    map[string]any `json:"payload"`
	IsRead     bool           `json:"is_read"`
	CreatedAt  string         `json:"created_at"`
}

// SysBoxUnreadDTO 未读数返回
type SysBoxUnreadDTO struct {
	UnreadCount int64 `json:"unread_count"`
}

type MarkReadDTO struct {
	MsgID string `json:"msgId" binding:"required"`
}

type MarkAllReadDTO struct {
	Updated int64 `json:"updated"`
}
