package handler

import (
	"context"

	"Inkpost/internal/api/dto"
	"Inkpost/internal/pkg/response"
	"Inkpost/internal/pkg/util"
	"Inkpost/internal/service"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	actionSvc service.PostActionService
}

func NewPostActionHandler(actionSvc service.PostActionService) *PostActionHandler {
	return &PostActionHandler{actionSvc: actionSvc}
}

func (s *PostActionHandler) LikePost(c *gin.Context) {
	s.toggle(c, "post_id", s.actionSvc.TogglePostLike)
}

func (s *PostActionHandler) SavePost(c *gin.Context) {
	s.toggle(c, "post_id", s.actionSvc.TogglePostSave)
}

func (s *PostActionHandler) LikeComment(c *gin.Context) {
	s.toggle(c, "comment_id", s.actionSvc.ToggleCommentLike)
}

func (s *PostActionHandler) GetUserLikes(c *gin.Context) {
	page := util.ParsePageQuery(c)
	posts, total, err := s.actionSvc.GetLikedPosts(c.Request.Context(), viewerID(c), page.Limit, page.Offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, response.NewPage(c, page, total, posts))
}

func (s *PostActionHandler) GetUserSaved(c *gin.Context) {
	page := util.ParsePageQuery(c)
	posts, total, err := s.actionSvc.GetSavedPosts(c.Request.Context(), viewerID(c), page.Limit, page.Offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, response.NewPage(c, page, total, posts))
}

type toggleFunc func(ctx context.Context, userID, targetID uint64) (*dto.ToggleDTO, error)

func (s *PostActionHandler) toggle(c *gin.Context, param string, fn toggleFunc) {
	targetID, ok := parseID(c, param)
	if !ok {
		return
	}
	res, err := fn(c.Request.Context(), viewerID(c), targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
