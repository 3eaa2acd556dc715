package dto

import (
	"time"

	"github.com/acl-api/models"
)

// ListModulesQuery represents the query string of GET /modules
type ListModulesQuery struct {
	Search    string `form:"search"`
	Page      string `form:"page"`
	Limit     string `form:"limit" binding:"omitempty,maxnum=100"`
	SortBy    string `form:"sortBy" binding:"omitempty,oneof=name slug order createdAt updatedAt"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
}

// ModuleSummary is the module block nested in grouped permission listings
type ModuleSummary struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Slug  string  `json:"slug"`
	Icon  *string `json:"icon"`
	Order int     `json:"order"`
}

// ModuleResource is the public representation of a module
type ModuleResource struct {
	ModuleSummary
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToModuleSummary maps a module model to its short form
func ToModuleSummary(module models.Module) ModuleSummary {
	return ModuleSummary{
		ID:    module.ID,
		Name:  module.Name,
		Slug:  module.Slug,
		Icon:  module.Icon,
		Order: module.Order,
	}
}

// ToModuleResource maps a module model to its response shape
func ToModuleResource(module models.Module) ModuleResource {
	return ModuleResource{
		ModuleSummary: ToModuleSummary(module),
		CreatedAt:     module.CreatedAt,
		UpdatedAt:     module.UpdatedAt,
	}
}
