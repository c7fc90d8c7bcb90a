package handler

import (
	"Inkpost/internal/pkg/response"
	"Inkpost/internal/service"

	"github.com/gin-gonic/gin"
)

type UserFollowHandler struct {
	userFollowSvc service.UserFollowService
}

func NewUserFollowHandler(userFollowSvc service.UserFollowService) *UserFollowHandler {
	return &UserFollowHandler{userFollowSvc: userFollowSvc}
}

// Follow 关注/取消关注
func (s *UserFollowHandler) Follow(c *gin.Context) {
	res, err := s.userFollowSvc.ToggleFollow(c.Request.Context(), viewerID(c), c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
