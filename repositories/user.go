package repositories

import (
	"context"

	"github.com/acl-api/lib/pagination"
	"github.com/acl-api/models"
	"gorm.io/gorm"
)

var (
	userSearchColumns = []string{"name", "email"}
	userSortColumns   = map[string]string{
		"name":      "name",
		"email":     "email",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	}
)

// UserRepository handles database operations for users. Soft deleted rows
// are excluded from every query through gorm.DeletedAt.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindAllPaginated retrieves users with pagination, search and sorting
func (r *UserRepository) FindAllPaginated(ctx context.Context, opts ListOptions) (pagination.Result[models.User], error) {
	query := applySearch(r.db.WithContext(ctx).Model(&models.User{}), opts.Search, userSearchColumns...)
	src := pagination.FromQuery[models.User](query, orderBy(opts.SortBy, opts.SortOrder, userSortColumns)...)

	return pagination.Paginate[models.User](ctx, src, pagination.Options{
		Page:  opts.Page,
		Limit: opts.Limit,
		Route: opts.Route,
	})
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user into the database
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Update applies changes (column -> value) and returns the fresh row
func (r *UserRepository) Update(ctx context.Context, id uint, changes map[string]interface{}) (*models.User, error) {
	if len(changes) > 0 {
		result := r.db.WithContext(ctx).Model(&models.User{ID: id}).Updates(changes)
		if result.Error != nil {
			return nil, result.Error
		}
	}
	return r.FindByID(ctx, id)
}

// Delete marks a user as deleted (soft delete)
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
