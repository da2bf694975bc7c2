package service

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/model"
	"Blogicum/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type CommentService interface {
	ListComments(ctx context.Context, viewerID uint64, postID uint64) ([]*dto.CommentDTO, error)
	CreateComment(ctx context.Context, userID uint64, postID uint64, commentDTO *dto.CommentBaseDTO) (*dto.CommentDTO, error)
	UpdateComment(ctx context.Context, userID uint64, postID uint64, commentID uint64, commentDTO *dto.CommentBaseDTO) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, userID uint64, postID uint64, commentID uint64) error
}

type commentServiceImpl struct {
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
	now         func() time.Time
}

func NewCommentService(postRepo repository.PostRepo, commentRepo repository.CommentRepo) CommentService {
	return &commentServiceImpl{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		now:         time.Now,
	}
}

// ListComments 帖子须对当前用户可见
func (s *commentServiceImpl) ListComments(ctx context.Context, viewerID uint64, postID uint64) ([]*dto.CommentDTO, error) {
	if _, err := loadVisiblePost(ctx, s.postRepo, viewerID, postID, s.now()); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.GetCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return toCommentDTOs(comments)
}

func (s *commentServiceImpl) CreateComment(ctx context.Context, userID uint64, postID uint64, commentDTO *dto.CommentBaseDTO) (*dto.CommentDTO, error) {
	if _, err := loadVisiblePost(ctx, s.postRepo, userID, postID, s.now()); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		Text:     commentDTO.Text,
		PostID:   postID,
		AuthorID: userID,
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "comment created", "post_id", postID, "comment_id", comment.ID)
	return s.reload(ctx, comment.ID)
}

func (s *commentServiceImpl) UpdateComment(ctx context.Context, userID uint64, postID uint64, commentID uint64, commentDTO *dto.CommentBaseDTO) (*dto.CommentDTO, error) {
	comment, err := s.loadOwnComment(ctx, userID, postID, commentID)
	if err != nil {
		return nil, err
	}
	if err = s.commentRepo.UpdateCommentText(ctx, comment.ID, commentDTO.Text); err != nil {
		return nil, err
	}
	return s.reload(ctx, comment.ID)
}

func (s *commentServiceImpl) DeleteComment(ctx context.Context, userID uint64, postID uint64, commentID uint64) error {
	comment, err := s.loadOwnComment(ctx, userID, postID, commentID)
	if err != nil {
		return err
	}
	if err = s.commentRepo.DeleteComment(ctx, comment.ID); err != nil {
		return err
	}
	log.InfoContext(ctx, "comment deleted", "post_id", postID, "comment_id", comment.ID)
	return nil
}

// loadOwnComment 评论须属于该帖子且帖子可见，否则 404；非作者返回 ErrForbidden
func (s *commentServiceImpl) loadOwnComment(ctx context.Context, userID uint64, postID uint64, commentID uint64) (*model.Comment, error) {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil || comment.PostID != postID {
		return nil, ErrCommentNotFound
	}
	if _, err = loadVisiblePost(ctx, s.postRepo, userID, postID, s.now()); err != nil {
		return nil, err
	}
	if comment.AuthorID != userID {
		return nil, ErrForbidden
	}
	return comment, nil
}

func (s *commentServiceImpl) reload(ctx context.Context, commentID uint64) (*dto.CommentDTO, error) {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	return toCommentDTO(comment)
}
