package handler

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/pkg/response"
	"Blogicum/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
	}
}

func (s *CommentHandler) ListComments(c *gin.Context) {
	postID, ok := pathID(c, "post_id", service.ErrPostNotFound)
	if !ok {
		return
	}

	comments, err := s.commentSvc.ListComments(c.Request.Context(), viewerID(c), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

func (s *CommentHandler) CreateComment(c *gin.Context) {
	postID, ok := pathID(c, "post_id", service.ErrPostNotFound)
	if !ok {
		return
	}

	var req dto.CommentBaseDTO
	if !bindJSON(c, &req) {
		return
	}

	comment, err := s.commentSvc.CreateComment(c.Request.Context(), viewerID(c), postID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *CommentHandler) UpdateComment(c *gin.Context) {
	postID, ok := pathID(c, "post_id", service.ErrPostNotFound)
	if !ok {
		return
	}
	commentID, ok := pathID(c, "comment_id", service.ErrCommentNotFound)
	if !ok {
		return
	}

	var req dto.CommentBaseDTO
	if !bindJSON(c, &req) {
		return
	}

	comment, err := s.commentSvc.UpdateComment(c.Request.Context(), viewerID(c), postID, commentID, &req)
	if err != nil {
		errorOrRedirect(c, err, postID)
		return
	}
	response.Success(c, comment)
}

func (s *CommentHandler) DeleteComment(c *gin.Context) {
	postID, ok := pathID(c, "post_id", service.ErrPostNotFound)
	if !ok {
		return
	}
	commentID, ok := pathID(c, "comment_id", service.ErrCommentNotFound)
	if !ok {
		return
	}

	if err := s.commentSvc.DeleteComment(c.Request.Context(), viewerID(c), postID, commentID); err != nil {
		errorOrRedirect(c, err, postID)
		return
	}
	response.Success(c, nil)
}
