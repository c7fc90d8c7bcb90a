package api

import "Inkpost/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler       *handler.UserHandler
	UserFollowHandler *handler.UserFollowHandler
	PostHandler       *handler.PostHandler
	PostActionHandler *handler.PostActionHandler
	CommentHandler    *handler.CommentHandler
	TagHandler        *handler.TagHandler
	ReportHandler     *handler.ReportHandler
	// SysBoxHandler 未配置 MongoDB 时为 nil，通知接口不注册
	SysBoxHandler *handler.SysBoxHandler
}
