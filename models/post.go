package models

import (
	"time"
)

type Post struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string    `json:"title" binding:"required" gorm:"index"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content" binding:"required"`
	CoverURL    string    `json:"coverUrl,omitempty" gorm:"column:cover_url"`
	Views       int       `json:"views" gorm:"default:0"`
	IsPublished bool      `json:"isPublished" gorm:"column:is_published;default:true"`
	CategoryID  string    `json:"categoryId" gorm:"column:category_id;type:uuid"`
	Category    Category  `json:"category" gorm:"foreignKey:CategoryID"`
	Tags        []Tag     `json:"tags" gorm:"many2many:post_tags;"`
	Comments    []Comment `json:"comments,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PostCreate struct {
	Title       string   `json:"title" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	CategoryID  string   `json:"categoryId" binding:"required"`
	Tags        []string `json:"tags"`
	IsPublished *bool    `json:"isPublished"`
}

type PostUpdate struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	CategoryID  string   `json:"categoryId"`
	Tags        []string `json:"tags"`
	IsPublished *bool    `json:"isPublished"`
}

// PostNeighbor is the prev/next navigation entry on the detail view.
type PostNeighbor struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (Post) TableName() string {
	return "posts"
}
