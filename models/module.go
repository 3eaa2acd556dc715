package models

import "time"

// Module groups permissions under a named section of the admin panel
type Module struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"not null;uniqueIndex"`
	Icon      *string   `json:"icon" gorm:"default:null"`
	Order     int       `json:"order" gorm:"column:order;not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Permissions []Permission `json:"permissions,omitempty" gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for Module model
func (Module) TableName() string {
	return "modules"
}
