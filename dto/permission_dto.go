package dto

import (
	"time"

	"github.com/acl-api/models"
)

// PermissionSummary is a permission as listed under its module
type PermissionSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// PermissionResource is the public representation of a single permission
type PermissionResource struct {
	PermissionSummary
	ModuleID  uint      `json:"moduleId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ModulePermissionsGroup is one module with the permissions it holds
type ModulePermissionsGroup struct {
	Module      ModuleSummary       `json:"module"`
	Permissions []PermissionSummary `json:"permissions"`
}

// ToPermissionSummary maps a permission model to its short form
func ToPermissionSummary(permission models.Permission) PermissionSummary {
	return PermissionSummary{
		ID:          permission.ID,
		Name:        permission.Name,
		Slug:        permission.Slug,
		Description: permission.Description,
	}
}

// ToPermissionResource maps a permission model to its response shape
func ToPermissionResource(permission models.Permission) PermissionResource {
	return PermissionResource{
		PermissionSummary: ToPermissionSummary(permission),
		ModuleID:          permission.ModuleID,
		CreatedAt:         permission.CreatedAt,
		UpdatedAt:         permission.UpdatedAt,
	}
}

// ToModulePermissionsGroup maps a module with preloaded permissions
func ToModulePermissionsGroup(module models.Module) ModulePermissionsGroup {
	permissions := make([]PermissionSummary, 0, len(module.Permissions))
	for _, permission := range module.Permissions {
		permissions = append(permissions, ToPermissionSummary(permission))
	}
	return ModulePermissionsGroup{
		Module:      ToModuleSummary(module),
		Permissions: permissions,
	}
}
