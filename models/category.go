package models

import (
	"time"
)

type Category struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string    `json:"name" binding:"required" gorm:"uniqueIndex"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CategoryCreate struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CategoryWithCount carries the derived published-post count for sidebar
// widgets. The count is never stored.
type CategoryWithCount struct {
	Category
	PostCount int64 `json:"postCount" gorm:"column:post_count"`
}

func (Category) TableName() string {
	return "categories"
}
