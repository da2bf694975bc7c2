package model

import "time"

type Location struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(256);not null" json:"name"`
	IsPublished bool      `gorm:"type:tinyint(1);not null" json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Location) TableName() string {
	return "locations"
}
