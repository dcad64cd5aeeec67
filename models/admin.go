package models

import (
	"time"
)

// Admin is the single privileged identity. Rows are seeded at init and only
// change through the explicit password-change endpoint.
type Admin struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Username  string     `json:"username" binding:"required" gorm:"uniqueIndex"`
	Password  string     `json:"-" gorm:"column:password_hash"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty" gorm:"column:last_login"`
}

type AdminLogin struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type PasswordUpdate struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

func (Admin) TableName() string {
	return "admins"
}
