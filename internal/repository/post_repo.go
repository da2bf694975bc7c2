package repository

import (
	"Blogicum/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// commentCountColumn 评论数在查询时实时计算
const commentCountColumn = "(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count"

// PostQuery 列表查询条件，零值字段不参与过滤
type PostQuery struct {
	AuthorID   uint64
	CategoryID uint64
	// Public 为 true 时只返回公开可见的帖子
	Public bool
	Now    time.Time
	Offset int
	Limit  int
}

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	ListPosts(ctx context.Context, q PostQuery) ([]*model.Post, int64, error)
	UpdatePost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id uint64) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error
}

// GetPost 按 ID 获取帖子（不做可见性过滤），不存在返回 nil
func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Select("posts.*, "+commentCountColumn).
		Preload("Author").
		Preload("Location").
		Preload("Category").
		Where("posts.id = ?", id).
		Take(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// ListPosts 按发布时间倒序分页，同一时间按写入顺序
func (s *PostRepoImpl) ListPosts(ctx context.Context, q PostQuery) ([]*model.Post, int64, error) {
	var total int64
	if err := s.filtered(ctx, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	posts := make([]*model.Post, 0)
	if total == 0 {
		return posts, 0, nil
	}

	err := s.filtered(ctx, q).
		Select("posts.*, " + commentCountColumn).
		Preload("Author").
		Preload("Location").
		Preload("Category").
		Order("posts.pub_date DESC").
		Order("posts.id ASC").
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (s *PostRepoImpl) filtered(ctx context.Context, q PostQuery) *gorm.DB {
	tx := s.db.WithContext(ctx).Model(&model.Post{})
	if q.AuthorID > 0 {
		tx = tx.Where("posts.author_id = ?", q.AuthorID)
	}
	if q.CategoryID > 0 {
		tx = tx.Where("posts.category_id = ?", q.CategoryID)
	}
	if q.Public {
		tx = tx.Scopes(publicScope(q.Now))
	}
	return tx
}

// publicScope 公开可见性：已发布 且 发布时间 <= now 且 (无分类 或 分类已发布)
func publicScope(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.
			Joins("LEFT JOIN categories ON categories.id = posts.category_id").
			Where("posts.is_published = ?", true).
			Where("posts.pub_date <= ?", now.UTC()).
			Where("(posts.category_id IS NULL OR categories.is_published = ?)", true)
	}
}

func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).
		Model(post).
		Select("title", "text", "pub_date", "is_published", "image", "location_id", "category_id").
		Updates(post).Error
}

// DeletePost 删除帖子及其全部评论
func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}
