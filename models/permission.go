package models

import "time"

// Permission is a single action on a module, e.g. "create-users"
type Permission struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"not null;uniqueIndex:idx_permissions_slug_module"`
	Description string    `json:"description" gorm:"not null;default:''"`
	ModuleID    uint      `json:"moduleId" gorm:"not null;index;uniqueIndex:idx_permissions_slug_module"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	Module *Module `json:"module,omitempty" gorm:"foreignKey:ModuleID"`
}

// TableName sets the table name for Permission model
func (Permission) TableName() string {
	return "permissions"
}
