package models

import (
	"time"
)

type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PostID    string    `json:"postId" gorm:"column:post_id;type:uuid"`
	Author    string    `json:"author" binding:"required"`
	Email     string    `json:"email" binding:"required"`
	Content   string    `json:"content" binding:"required"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}

type CommentCreate struct {
	Author  string `json:"author" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (Comment) TableName() string {
	return "comments"
}
