package handler

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/pkg/response"
	"Blogicum/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categorySvc service.CategoryService
	locationSvc service.LocationService
}

func NewCategoryHandler(categorySvc service.CategoryService, locationSvc service.LocationService) *CategoryHandler {
	return &CategoryHandler{
		categorySvc: categorySvc,
		locationSvc: locationSvc,
	}
}

// GetCategory 公开接口，仅已发布分类
func (s *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := s.categorySvc.GetCategory(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, category)
}

func (s *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := s.categorySvc.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, categories)
}

func (s *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryBaseDTO
	if !bindJSON(c, &req) {
		return
	}
	category, err := s.categorySvc.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, category)
}

func (s *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "id", service.ErrCategoryNotFound)
	if !ok {
		return
	}
	var req dto.CategoryBaseDTO
	if !bindJSON(c, &req) {
		return
	}
	category, err := s.categorySvc.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, category)
}

func (s *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id", service.ErrCategoryNotFound)
	if !ok {
		return
	}
	if err := s.categorySvc.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CategoryHandler) ListLocations(c *gin.Context) {
	locations, err := s.locationSvc.ListLocations(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, locations)
}

func (s *CategoryHandler) CreateLocation(c *gin.Context) {
	var req dto.LocationBaseDTO
	if !bindJSON(c, &req) {
		return
	}
	location, err := s.locationSvc.CreateLocation(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, location)
}

func (s *CategoryHandler) UpdateLocation(c *gin.Context) {
	id, ok := pathID(c, "id", service.ErrLocationNotFound)
	if !ok {
		return
	}
	var req dto.LocationBaseDTO
	if !bindJSON(c, &req) {
		return
	}
	location, err := s.locationSvc.UpdateLocation(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, location)
}

func (s *CategoryHandler) DeleteLocation(c *gin.Context) {
	id, ok := pathID(c, "id", service.ErrLocationNotFound)
	if !ok {
		return
	}
	if err := s.locationSvc.DeleteLocation(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
