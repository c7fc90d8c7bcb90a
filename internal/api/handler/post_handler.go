package handler

import (
	"errors"
	"net/http"

	"Inkpost/internal/api/dto"
	"Inkpost/internal/pkg/response"
	"Inkpost/internal/pkg/util"
	"Inkpost/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

func (s *PostHandler) ListPosts(c *gin.Context) {
	page := util.ParsePageQuery(c)
	posts, total, err := s.postSvc.ListPosts(c.Request.Context(), page.Limit, page.Offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "successfully retrieved all blogs", response.NewPage(c, page, total, posts))
}

func (s *PostHandler) ListPostsByUser(c *gin.Context) {
	page := util.ParsePageQuery(c)
	posts, total, err := s.postSvc.ListPostsByUser(c.Request.Context(), c.Param("username"), page.Limit, page.Offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, response.NewPage(c, page, total, posts))
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, ok := parseID(c, "post_id")
	if !ok {
		return
	}
	post, err := s.postSvc.GetPost(c.Request.Context(), viewerID(c), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	req, closeFn, err := bindPostWrite(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeFn()

	post, err := s.postSvc.CreatePost(c.Request.Context(), viewerID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedMsg(c, "Post created successfully", post)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	postID, ok := parseID(c, "post_id")
	if !ok {
		return
	}
	req, closeFn, err := bindPostWrite(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeFn()

	post, err := s.postSvc.UpdatePost(c.Request.Context(), viewerID(c), postID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) UploadThumbnail(c *gin.Context) {
	postID, ok := parseID(c, "post_id")
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	upload, closeFn, err := openUpload(fh)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeFn()

	post, err := s.postSvc.UpdateThumbnail(c.Request.Context(), viewerID(c), postID, upload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	postID, ok := parseID(c, "post_id")
	if !ok {
		return
	}
	if err := s.postSvc.DeletePost(c.Request.Context(), viewerID(c), postID); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "Post deleted successfully", nil)
}

// bindPostWrite JSON 与 multipart 两种提交方式归一化为 PostWriteDTO
func bindPostWrite(c *gin.Context) (*dto.PostWriteDTO, func(), error) {
	noop := func() {}
	req := &dto.PostWriteDTO{}
	closeFn := noop

	if isMultipart(c) {
		req.Content = []byte(c.PostForm("content"))
		req.Tags = splitTags(c.PostFormArray("tags"))

		fh, err := c.FormFile("thumbnail")
		switch {
		case err == nil:
			upload, fn, err := openUpload(fh)
			if err != nil {
				return nil, noop, err
			}
			req.Thumbnail = upload
			closeFn = fn
		case !errors.Is(err, http.ErrMissingFile):
			return nil, noop, service.ErrParamInvalid
		}
	} else {
		var body dto.CreatePostDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			return nil, noop, err
		}
		req.Content = body.Content
		req.Tags = splitTags(body.Tags)
	}

	if err := util.ValidateDTO(req); err != nil {
		closeFn()
		return nil, noop, service.ErrParamInvalid
	}
	return req, closeFn, nil
}
