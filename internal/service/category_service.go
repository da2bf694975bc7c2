package service

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/model"
	"Blogicum/internal/pkg/util"
	"Blogicum/internal/repository"
	"context"
	log "log/slog"
)

type CategoryService interface {
	GetCategory(ctx context.Context, slug string) (*dto.CategoryDTO, error)
	ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error)
	CreateCategory(ctx context.Context, categoryDTO *dto.CategoryBaseDTO) (*dto.CategoryDTO, error)
	UpdateCategory(ctx context.Context, id uint64, categoryDTO *dto.CategoryBaseDTO) (*dto.CategoryDTO, error)
	DeleteCategory(ctx context.Context, id uint64) error
}

type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepo
}

func NewCategoryService(categoryRepo repository.CategoryRepo) CategoryService {
	return &categoryServiceImpl{categoryRepo: categoryRepo}
}

// GetCategory 只返回已发布的分类
func (s *categoryServiceImpl) GetCategory(ctx context.Context, slug string) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category == nil || !category.IsPublished {
		return nil, ErrCategoryNotFound
	}
	return toCategoryDTO(category)
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error) {
	categories, err := s.categoryRepo.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryDTO, len(categories))
	for i, category := range categories {
		if out[i], err = toCategoryDTO(category); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, categoryDTO *dto.CategoryBaseDTO) (*dto.CategoryDTO, error) {
	category := &model.Category{
		Title:       categoryDTO.Title,
		Description: categoryDTO.Description,
		Slug:        categoryDTO.Slug,
		IsPublished: util.BoolOr(categoryDTO.IsPublished, true),
	}
	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		if repository.IsDuplicateError(err) {
			return nil, ErrCategorySlugExist
		}
		return nil, err
	}
	log.InfoContext(ctx, "category created", "slug", category.Slug)
	return toCategoryDTO(category)
}

func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, id uint64, categoryDTO *dto.CategoryBaseDTO) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	category.Title = categoryDTO.Title
	category.Description = categoryDTO.Description
	category.Slug = categoryDTO.Slug
	category.IsPublished = util.BoolOr(categoryDTO.IsPublished, category.IsPublished)
	if err = s.categoryRepo.UpdateCategory(ctx, category); err != nil {
		if repository.IsDuplicateError(err) {
			return nil, ErrCategorySlugExist
		}
		return nil, err
	}
	return toCategoryDTO(category)
}

// DeleteCategory 关联帖子保留，分类置空
func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, id uint64) error {
	category, err := s.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	if err = s.categoryRepo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	log.InfoContext(ctx, "category deleted", "slug", category.Slug)
	return nil
}
