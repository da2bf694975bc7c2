package handler

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/pkg/response"
	"Blogicum/internal/service"

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

// ListPosts 首页
func (s *PostHandler) ListPosts(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}

	res, err := s.postSvc.ListPosts(c.Request.Context(), viewerID(c), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// ListCategoryPosts 分类页
func (s *PostHandler) ListCategoryPosts(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}

	res, err := s.postSvc.ListCategoryPosts(c.Request.Context(), viewerID(c), c.Param("slug"), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// ListProfilePosts 个人主页
func (s *PostHandler) ListProfilePosts(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}

	res, err := s.postSvc.ListProfilePosts(c.Request.Context(), viewerID(c), c.Param("username"), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, ok := pathID(c, "post_id", service.ErrPostNotFound)
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
	var req dto.PostBaseDTO
	if !bindJSON(c, &req) {
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), viewerID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	postID, ok := pathID(c, "post_id", service.ErrPostNotFound)
	if !ok {
		return
	}

	var req dto.PostBaseDTO
	if !bindJSON(c, &req) {
		return
	}

	post, err := s.postSvc.UpdatePost(c.Request.Context(), viewerID(c), postID, &req)
	if err != nil {
		errorOrRedirect(c, err, postID)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	postID, ok := pathID(c, "post_id", service.ErrPostNotFound)
	if !ok {
		return
	}

	if err := s.postSvc.DeletePost(c.Request.Context(), viewerID(c), postID); err != nil {
		errorOrRedirect(c, err, postID)
		return
	}
	response.Success(c, nil)
}
