package models

import (
	"time"
)

type Tag struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" binding:"required" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"createdAt"`
}

type TagCreate struct {
	Name string `json:"name" binding:"required"`
}

type TagWithCount struct {
	Tag
	PostCount int64 `json:"postCount" gorm:"column:post_count"`
}

func (Tag) TableName() string {
	return "tags"
}
