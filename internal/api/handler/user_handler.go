package handler

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/pkg/response"
	"Blogicum/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

func (s *UserHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	if !bindJSON(c, &registerDTO) {
		return
	}
	profile, err := s.userSvc.Register(c.Request.Context(), &registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

func (s *UserHandler) Login(c *gin.Context) {
	var credentialDTO dto.CredentialDTO
	if !bindJSON(c, &credentialDTO) {
		return
	}
	token, err := s.userSvc.Login(c.Request.Context(), &credentialDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, token)
}

func (s *UserHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := s.userSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetProfile 公开主页信息
func (s *UserHandler) GetProfile(c *gin.Context) {
	profile, err := s.userSvc.GetProfile(c.Request.Context(), viewerID(c), c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

func (s *UserHandler) GetSelf(c *gin.Context) {
	profile, err := s.userSvc.GetSelf(c.Request.Context(), viewerID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

func (s *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.ProfileUpdateDTO
	if !bindJSON(c, &req) {
		return
	}
	profile, err := s.userSvc.UpdateProfile(c.Request.Context(), viewerID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

// DeleteUser 管理员删除用户
func (s *UserHandler) DeleteUser(c *gin.Context) {
	userID, ok := pathID(c, "user_id", service.ErrUserNotFound)
	if !ok {
		return
	}
	if err := s.userSvc.DeleteUser(c.Request.Context(), viewerID(c), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
