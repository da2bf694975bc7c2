package model

import "time"

type Category struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(256);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Slug        string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_slug" json:"slug"`
	IsPublished bool      `gorm:"type:tinyint(1);not null" json:"is_published"` // 不设数据库默认值，false 需要能写入
	CreatedAt   time.Time `json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}
