package dto

import "time"

// PostDTO 帖子
type PostDTO struct {
	ID           uint64       `json:"id"`
	Title        string       `json:"title"`
	Text         string       `json:"text"`
	PubDate      time.Time    `json:"pub_date"`
	IsPublished  bool         `json:"is_published"`
	ImageURL     string       `json:"image_url,omitempty"`
	Author       *AuthorDTO   `json:"author"`
	Location     *LocationDTO `json:"location"`
	Category     *CategoryDTO `json:"category"`
	CommentCount int64        `json:"comment_count"`
	CreatedAt    string       `json:"created_at"`
	UpdatedAt    string       `json:"updated_at"`
}

// PostDetailDTO 帖子详情，附带评论
type PostDetailDTO struct {
	*PostDTO
	Comments []*CommentDTO `json:"comments"`
}

// PostPageDTO 分页列表
type PostPageDTO struct {
	List       []*PostDTO `json:"list"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	Total      int64      `json:"total"`
	HasMore    bool       `json:"has_more"`
}

// CategoryPostsDTO 分类页
type CategoryPostsDTO struct {
	Category *CategoryDTO `json:"category"`
	*PostPageDTO
}

// ProfilePostsDTO 个人主页
type ProfilePostsDTO struct {
	Profile *ProfileDTO `json:"profile"`
	*PostPageDTO
}

// PostBaseDTO 帖子 - 新增或修改
type PostBaseDTO struct {
	Title       string    `json:"title" binding:"required" validate:"min=1,max=256"`
	Text        string    `json:"text" binding:"required" validate:"min=1"`
	PubDate     time.Time `json:"pub_date" binding:"required"`
	IsPublished *bool     `json:"is_published"`
	Image       *string   `json:"image" validate:"omitempty,max=512"`
	LocationID  *uint64   `json:"location_id"`
	CategoryID  *uint64   `json:"category_id"`
}

// PageQueryDTO 分页参数，页码保持字符串以便区分非法值
type PageQueryDTO struct {
	Page string `form:"page"`
}
