package handler

import (
	"Inkpost/internal/pkg/response"
	"Inkpost/internal/pkg/util"
	"Inkpost/internal/service"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagSvc service.TagService
}

func NewTagHandler(tagSvc service.TagService) *TagHandler {
	return &TagHandler{tagSvc: tagSvc}
}

func (s *TagHandler) ListTags(c *gin.Context) {
	page := util.ParsePageQuery(c)
	tags, total, err := s.tagSvc.ListTags(c.Request.Context(), page.Limit, page.Offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, response.NewPage(c, page, total, tags))
}
