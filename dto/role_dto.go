package dto

import (
	"time"

	"github.com/acl-api/models"
)

// ListRolesQuery represents the query string of GET /roles
type ListRolesQuery struct {
	Search    string `form:"search"`
	Page      string `form:"page"`
	Limit     string `form:"limit" binding:"omitempty,maxnum=100"`
	SortBy    string `form:"sortBy" binding:"omitempty,oneof=name slug createdAt updatedAt"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
}

// CreateRoleRequest represents the request payload for creating a new role
type CreateRoleRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required,slug"`
	Description string `json:"description" binding:"required"`
}

// UpdateRoleRequest represents a partial update; nil fields are left unchanged
type UpdateRoleRequest struct {
	Name        *string `json:"name" binding:"omitnil,min=1"`
	Slug        *string `json:"slug" binding:"omitnil,slug"`
	Description *string `json:"description" binding:"omitnil,min=1"`
}

// RoleResource is the public representation of a role
type RoleResource struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToRoleResource maps a role model to its response shape
func ToRoleResource(role models.Role) RoleResource {
	return RoleResource{
		ID:          role.ID,
		Name:        role.Name,
		Slug:        role.Slug,
		Description: role.Description,
		CreatedAt:   role.CreatedAt,
		UpdatedAt:   role.UpdatedAt,
	}
}
