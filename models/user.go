package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account managed through the admin API
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Avatar    *string        `json:"avatar" gorm:"default:null"`
	Email     string         `json:"email" gorm:"not null;uniqueIndex:idx_users_email_active,where:deleted_at IS NULL"`
	Username  *string        `json:"username" gorm:"default:null"`
	Password  string         `json:"-" gorm:"not null"` // Password is never exposed in JSON
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name for User model
func (User) TableName() string {
	return "users"
}
