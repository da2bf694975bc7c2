package model

import (
	"time"

	"gorm.io/gorm"
)

type Post struct {
	ID          uint64    `gorm:"primaryKey"`
	Title       string    `gorm:"type:varchar(256);not null" json:"title"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	PubDate     time.Time `gorm:"not null;index:idx_posts_pub_date" json:"pub_date"`
	IsPublished bool      `gorm:"type:tinyint(1);not null" json:"is_published"`
	Image       string    `gorm:"type:varchar(512);not null;default:''" json:"image"` // MinIO object key
	AuthorID    uint64    `gorm:"not null;index:idx_posts_author_id" json:"author_id"`
	LocationID  *uint64   `gorm:"index:idx_posts_location_id" json:"location_id"`
	CategoryID  *uint64   `gorm:"index:idx_posts_category_id" json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 查询时通过子查询计算，不落库
	CommentCount int64 `gorm:"->;-:migration" json:"comment_count"`

	// 关联关系
	Author   User      `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	Location *Location `gorm:"foreignKey:LocationID;references:ID;constraint:OnDelete:SET NULL"`
	Category *Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:SET NULL"`
}

func (Post) TableName() string {
	return "posts"
}

// BeforeCreate 发布时间统一按 UTC 存储
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	p.PubDate = p.PubDate.UTC()
	return nil
}

// IsPublic 对非作者可见：已发布、发布时间已到、分类为空或分类已发布
// Category 需要预加载
func (p *Post) IsPublic(now time.Time) bool {
	if !p.IsPublished || p.PubDate.After(now) {
		return false
	}
	return p.CategoryID == nil || (p.Category != nil && p.Category.IsPublished)
}

// VisibleTo 作者本人始终可见
func (p *Post) VisibleTo(viewerID uint64, now time.Time) bool {
	if viewerID != 0 && viewerID == p.AuthorID {
		return true
	}
	return p.IsPublic(now)
}
