package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/acl-api/models"
	"github.com/acl-api/repositories"
	"github.com/acl-api/utils"
)

// PermissionService handles business logic for permissions
type PermissionService struct {
	permissionRepo *repositories.PermissionRepository
}

// NewPermissionService creates a new permission service instance
func NewPermissionService(permissionRepo *repositories.PermissionRepository) *PermissionService {
	return &PermissionService{permissionRepo: permissionRepo}
}

// GetAll returns every permission
func (s *PermissionService) GetAll(ctx context.Context) ([]models.Permission, error) {
	permissions, err := s.permissionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	return permissions, nil
}

// GetPermissionsWithModule returns the modules that own at least one
// permission, in display order, with their permissions loaded
func (s *PermissionService) GetPermissionsWithModule(ctx context.Context) ([]models.Module, error) {
	modules, err := s.permissionRepo.FindGroupedByModule(ctx)
	if err != nil {
		return nil, fmt.Errorf("group permissions: %w", err)
	}
	return modules, nil
}

// GetByID returns the permission with id or a not found error
func (s *PermissionService) GetByID(ctx context.Context, id uint) (*models.Permission, error) {
	permission, err := s.permissionRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NewNotFound("permissions.not_found")
	}
	if err != nil {
		return nil, fmt.Errorf("find permission %d: %w", id, err)
	}
	return permission, nil
}
