package repositories

import (
	"context"

	"github.com/acl-api/models"
	"gorm.io/gorm"
)

// PermissionRepository handles database operations for permissions
type PermissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository creates a new permission repository instance
func NewPermissionRepository(db *gorm.DB) *PermissionRepository {
	return &PermissionRepository{db: db}
}

// FindByID retrieves a permission by its ID
func (r *PermissionRepository) FindByID(ctx context.Context, id uint) (*models.Permission, error) {
	var permission models.Permission
	if err := r.db.WithContext(ctx).First(&permission, id).Error; err != nil {
		return nil, err
	}
	return &permission, nil
}

// FindAll retrieves every permission
func (r *PermissionRepository) FindAll(ctx context.Context) ([]models.Permission, error) {
	var permissions []models.Permission
	err := r.db.WithContext(ctx).Order("id").Find(&permissions).Error
	return permissions, err
}

// FindBySlugAndModule retrieves the permission with slug inside a module
func (r *PermissionRepository) FindBySlugAndModule(ctx context.Context, slug string, moduleID uint) (*models.Permission, error) {
	var permission models.Permission
	err := r.db.WithContext(ctx).
		Where("slug = ? AND module_id = ?", slug, moduleID).
		First(&permission).Error
	if err != nil {
		return nil, err
	}
	return &permission, nil
}

// Create inserts a new permission into the database
func (r *PermissionRepository) Create(ctx context.Context, permission *models.Permission) error {
	return r.db.WithContext(ctx).Create(permission).Error
}

// Update applies changes (column -> value) to a permission
func (r *PermissionRepository) Update(ctx context.Context, id uint, changes map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Permission{ID: id}).Updates(changes).Error
}

// FindGroupedByModule loads modules in display order with their
// permissions. Modules holding no permission are left out.
func (r *PermissionRepository) FindGroupedByModule(ctx context.Context) ([]models.Module, error) {
	var modules []models.Module
	q := r.db.WithContext(ctx).Preload("Permissions", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	})
	for _, column := range displayOrder {
		q = q.Order(column)
	}
	if err := q.Find(&modules).Error; err != nil {
		return nil, err
	}

	grouped := make([]models.Module, 0, len(modules))
	for _, module := range modules {
		if len(module.Permissions) > 0 {
			grouped = append(grouped, module)
		}
	}
	return grouped, nil
}
