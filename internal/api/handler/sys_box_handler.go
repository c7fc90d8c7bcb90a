package handler

import (
	"Inkpost/internal/api/dto"
	"Inkpost/internal/pkg/response"
	"Inkpost/internal/pkg/util"
	"Inkpost/internal/service"

	"github.com/gin-gonic/gin"
)

type SysBoxHandler struct {
	sysBoxService service.SysBoxService
}

func NewSysBoxHandler(s service.SysBoxService) *SysBoxHandler {
	return &SysBoxHandler{
		sysBoxService: s,
	}
}

// GetNotificationList 获取通知列表
func (h *SysBoxHandler) GetNotificationList(c *gin.Context) {
	page := util.ParsePageQuery(c)
	list, total, err := h.sysBoxService.GetNotificationList(c.Request.Context(), viewerID(c), page.Limit, page.Offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, response.NewPage(c, page, total, list))
}

// GetUnreadCount 获取未读数
func (h *SysBoxHandler) GetUnreadCount(c *gin.Context) {
	unread, err := h.sysBoxService.GetUnreadCount(c.Request.Context(), viewerID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, unread)
}

// MarkRead 标记单条已读
func (h *SysBoxHandler) MarkRead(c *gin.Context) {
	var req dto.MarkReadDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := h.sysBoxService.MarkRead(c.Request.Context(), viewerID(c), req.MsgID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// MarkAllRead 一键已读
func (h *SysBoxHandler) MarkAllRead(c *gin.Context) {
	res, err := h.sysBoxService.MarkAllRead(c.Request.Context(), viewerID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
