package model

import (
	"time"
)

type Comment struct {
	ID        uint64    `gorm:"primaryKey"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	PostID    uint64    `gorm:"not null;index:idx_comments_post_id" json:"post_id"`
	AuthorID  uint64    `gorm:"not null;index:idx_comments_author_id" json:"author_id"`
	CreatedAt time.Time `gorm:"index:idx_comments_created_at" json:"created_at"`

	Post   Post `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	Author User `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string {
	return "comments"
}
