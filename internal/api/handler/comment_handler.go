package handler

import (
	"Inkpost/internal/api/dto"
	"Inkpost/internal/pkg/response"
	"Inkpost/internal/pkg/util"
	"Inkpost/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

// ListRootComments 匿名可访问
func (s *CommentHandler) ListRootComments(c *gin.Context) {
	postID, ok := parseID(c, "post_id")
	if !ok {
		return
	}
	page := util.ParsePageQuery(c)
	comments, total, err := s.commentSvc.ListRootComments(c.Request.Context(), viewerID(c), postID, page.Limit, page.Offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, response.NewPage(c, page, total, comments))
}

// ListReplies 需要登录
func (s *CommentHandler) ListReplies(c *gin.Context) {
	commentID, ok := parseID(c, "comment_id")
	if !ok {
		return
	}
	page := util.ParsePageQuery(c)
	replies, total, err := s.commentSvc.ListReplies(c.Request.Context(), viewerID(c), commentID, page.Limit, page.Offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, response.NewPage(c, page, total, replies))
}

func (s *CommentHandler) CreateComment(c *gin.Context) {
	postID, ok := parseID(c, "post_id")
	if !ok {
		return
	}
	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.commentSvc.CreateComment(c.Request.Context(), viewerID(c), postID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedMsg(c, "Comment created successfully", comment)
}

func (s *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, ok := parseID(c, "comment_id")
	if !ok {
		return
	}
	if err := s.commentSvc.DeleteComment(c.Request.Context(), viewerID(c), commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "Comment deleted successfully", nil)
}
