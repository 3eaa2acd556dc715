package v1

import (
	"context"

	"github.com/acl-api/dto"
	"github.com/acl-api/lib/pagination"
	"github.com/acl-api/models"
	"github.com/acl-api/repositories"
)

// UserService is the user behaviour the controllers depend on
type UserService interface {
	GetAllPaginated(ctx context.Context, opts repositories.ListOptions) (pagination.Result[models.User], error)
	FindOrFail(ctx context.Context, id uint) (*models.User, error)
	Create(ctx context.Context, req dto.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id uint) error
}

// RoleService is the role behaviour the controllers depend on
type RoleService interface {
	GetAllPaginated(ctx context.Context, opts repositories.ListOptions) (pagination.Result[models.Role], error)
	GetByID(ctx context.Context, id uint) (*models.Role, error)
	Create(ctx context.Context, req dto.CreateRoleRequest) (*models.Role, error)
	Update(ctx context.Context, id uint, req dto.UpdateRoleRequest) (*models.Role, error)
	Delete(ctx context.Context, id uint) error
}

// PermissionService is the permission behaviour the controllers depend on
type PermissionService interface {
	GetPermissionsWithModule(ctx context.Context) ([]models.Module, error)
	GetByID(ctx context.Context, id uint) (*models.Permission, error)
}

// ModuleService is the module behaviour the controllers depend on
type ModuleService interface {
	GetAllPaginated(ctx context.Context, opts repositories.ListOptions) (pagination.Result[models.Module], error)
	GetByID(ctx context.Context, id uint) (*models.Module, error)
}
