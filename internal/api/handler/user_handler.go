package handler

import (
	"Inkpost/internal/api/dto"
	"Inkpost/internal/pkg/response"
	"Inkpost/internal/pkg/util"
	"Inkpost/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (s *UserHandler) SignUp(c *gin.Context) {
	var req dto.SignUpDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	user, err := s.userSvc.SignUp(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedMsg(c, "Successfully created User", user)
}

func (s *UserHandler) SignIn(c *gin.Context) {
	var req dto.SignInDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.userSvc.SignIn(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "Login Successfully", token)
}

func (s *UserHandler) SignOut(c *gin.Context) {
	if err := s.userSvc.SignOut(c.Request.Context(), c.GetHeader("Authorization")); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "Logout Successfully", nil)
}

// Me 可选鉴权，未登录时 authenticated 为 false
func (s *UserHandler) Me(c *gin.Context) {
	me, err := s.userSvc.GetMe(c.Request.Context(), viewerID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	if !me.Authenticated {
		response.SuccessMsg(c, "You are not authenticated.", me)
		return
	}
	response.SuccessMsg(c, "You are authenticated.", me)
}

func (s *UserHandler) GetUserHome(c *gin.Context) {
	home, err := s.userSvc.GetUserHome(c.Request.Context(), viewerID(c), c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, home)
}

func (s *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	user, err := s.userSvc.UpdateProfile(c.Request.Context(), viewerID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) UploadAvatar(c *gin.Context) {
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

	user, err := s.userSvc.UploadAvatar(c.Request.Context(), viewerID(c), upload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}
