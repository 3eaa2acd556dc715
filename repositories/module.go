package repositories

import (
	"context"

	"github.com/acl-api/lib/pagination"
	"github.com/acl-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	moduleSearchColumns = []string{"name", "slug"}
	moduleSortColumns   = map[string]string{
		"name":      "name",
		"slug":      "slug",
		"order":     "order",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	}
	displayOrder = []clause.OrderByColumn{
		{Column: clause.Column{Name: "order"}},
		{Column: clause.Column{Name: "id"}},
	}
)

// ModuleRepository handles database operations for modules
type ModuleRepository struct {
	db *gorm.DB
}

// NewModuleRepository creates a new module repository instance
func NewModuleRepository(db *gorm.DB) *ModuleRepository {
	return &ModuleRepository{db: db}
}

// FindAllPaginated retrieves modules with pagination, search and sorting
func (r *ModuleRepository) FindAllPaginated(ctx context.Context, opts ListOptions) (pagination.Result[models.Module], error) {
	query := applySearch(r.db.WithContext(ctx).Model(&models.Module{}), opts.Search, moduleSearchColumns...)
	src := pagination.FromQuery[models.Module](query, orderBy(opts.SortBy, opts.SortOrder, moduleSortColumns)...)

	return pagination.Paginate[models.Module](ctx, src, pagination.Options{
		Page:  opts.Page,
		Limit: opts.Limit,
		Route: opts.Route,
	})
}

// FindAll retrieves every module in display order
func (r *ModuleRepository) FindAll(ctx context.Context) ([]models.Module, error) {
	var modules []models.Module
	q := r.db.WithContext(ctx)
	for _, column := range displayOrder {
		q = q.Order(column)
	}
	err := q.Find(&modules).Error
	return modules, err
}

// FindByID retrieves a module by its ID
func (r *ModuleRepository) FindByID(ctx context.Context, id uint) (*models.Module, error) {
	var module models.Module
	if err := r.db.WithContext(ctx).First(&module, id).Error; err != nil {
		return nil, err
	}
	return &module, nil
}

// FindBySlug retrieves a module by its slug
func (r *ModuleRepository) FindBySlug(ctx context.Context, slug string) (*models.Module, error) {
	var module models.Module
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&module).Error; err != nil {
		return nil, err
	}
	return &module, nil
}

// Create inserts a new module into the database
func (r *ModuleRepository) Create(ctx context.Context, module *models.Module) error {
	return r.db.WithContext(ctx).Create(module).Error
}
