package dto

// CategoryDTO 分类
type CategoryDTO struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	IsPublished bool   `json:"is_published"`
}

// CategoryBaseDTO 分类 - 新增或修改
type CategoryBaseDTO struct {
	Title       string `json:"title" binding:"required" validate:"min=1,max=256"`
	Description string `json:"description" binding:"required"`
	Slug        string `json:"slug" binding:"required" validate:"min=1,max=64,slug"`
	IsPublished *bool  `json:"is_published"`
}

// LocationDTO 地点
type LocationDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	IsPublished bool   `json:"is_published"`
}

// LocationBaseDTO 地点 - 新增或修改
type LocationBaseDTO struct {
	Name        string `json:"name" binding:"required" validate:"min=1,max=256"`
	IsPublished *bool  `json:"is_published"`
}
