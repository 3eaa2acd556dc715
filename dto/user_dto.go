package dto

import (
	"time"

	"github.com/acl-api/models"
)

// ListUsersQuery represents the query string of GET /users
type ListUsersQuery struct {
	Search    string `form:"search"`
	Page      string `form:"page"`
	Limit     string `form:"limit" binding:"omitempty,maxnum=100"`
	SortBy    string `form:"sortBy" binding:"omitempty,oneof=name email createdAt updatedAt"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
}

// CreateUserRequest represents the request payload for creating a new user
type CreateUserRequest struct {
	Name     string  `json:"name" binding:"required"`
	Avatar   *string `json:"avatar"`
	Email    string  `json:"email" binding:"required,email"`
	Username *string `json:"username"`
	Password string  `json:"password" binding:"required,min=8"`
}

// UpdateUserRequest represents a partial update; nil fields are left unchanged
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitnil,min=1"`
	Avatar   *string `json:"avatar"`
	Email    *string `json:"email" binding:"omitnil,email"`
	Username *string `json:"username"`
	Password *string `json:"password" binding:"omitnil,min=8"`
}

// UserResource is the public representation of a user; it has no password
type UserResource struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Avatar    *string   `json:"avatar"`
	Email     string    `json:"email"`
	Username  *string   `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUserResource maps a user model to its response shape
func ToUserResource(user models.User) UserResource {
	return UserResource{
		ID:        user.ID,
		Name:      user.Name,
		Avatar:    user.Avatar,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
