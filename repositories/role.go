package repositories

import (
	"context"

	"github.com/acl-api/lib/pagination"
	"github.com/acl-api/models"
	"gorm.io/gorm"
)

var (
	roleSearchColumns = []string{"name", "slug"}
	roleSortColumns   = map[string]string{
		"name":      "name",
		"slug":      "slug",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	}
)

// RoleRepository handles database operations for roles
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository instance
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// FindAllPaginated retrieves roles with pagination, search and sorting
func (r *RoleRepository) FindAllPaginated(ctx context.Context, opts ListOptions) (pagination.Result[models.Role], error) {
	query := applySearch(r.db.WithContext(ctx).Model(&models.Role{}), opts.Search, roleSearchColumns...)
	src := pagination.FromQuery[models.Role](query, orderBy(opts.SortBy, opts.SortOrder, roleSortColumns)...)

	return pagination.Paginate[models.Role](ctx, src, pagination.Options{
		Page:  opts.Page,
		Limit: opts.Limit,
		Route: opts.Route,
	})
}

// FindByID retrieves a role by its ID
func (r *RoleRepository) FindByID(ctx context.Context, id uint) (*models.Role, error) {
	var role models.Role
	if err := r.db.WithContext(ctx).First(&role, id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// FindBySlug retrieves a role by its slug
func (r *RoleRepository) FindBySlug(ctx context.Context, slug string) (*models.Role, error) {
	var role models.Role
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// Create inserts a new role into the database
func (r *RoleRepository) Create(ctx context.Context, role *models.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

// Update applies changes (column -> value) and returns the fresh row
func (r *RoleRepository) Update(ctx context.Context, id uint, changes map[string]interface{}) (*models.Role, error) {
	if len(changes) > 0 {
		result := r.db.WithContext(ctx).Model(&models.Role{ID: id}).Updates(changes)
		if result.Error != nil {
			return nil, result.Error
		}
	}
	return r.FindByID(ctx, id)
}

// Delete removes a role from the database
func (r *RoleRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Role{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
