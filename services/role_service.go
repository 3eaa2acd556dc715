package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/acl-api/dto"
	"github.com/acl-api/lib/pagination"
	"github.com/acl-api/models"
	"github.com/acl-api/repositories"
	"github.com/acl-api/utils"
	"gorm.io/gorm"
)

// RoleService handles business logic for roles
type RoleService struct {
	roleRepo *repositories.RoleRepository
}

// NewRoleService creates a new role service instance
func NewRoleService(roleRepo *repositories.RoleRepository) *RoleService {
	return &RoleService{roleRepo: roleRepo}
}

// GetAllPaginated lists roles matching opts
func (s *RoleService) GetAllPaginated(ctx context.Context, opts repositories.ListOptions) (pagination.Result[models.Role], error) {
	result, err := s.roleRepo.FindAllPaginated(ctx, opts)
	if err != nil {
		return result, fmt.Errorf("list roles: %w", err)
	}
	return result, nil
}

// GetByID returns the role with id or a not found error
func (s *RoleService) GetByID(ctx context.Context, id uint) (*models.Role, error) {
	role, err := s.roleRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NewNotFound("roles.not_found")
	}
	if err != nil {
		return nil, fmt.Errorf("find role %d: %w", id, err)
	}
	return role, nil
}

// Create inserts a new role
func (s *RoleService) Create(ctx context.Context, req dto.CreateRoleRequest) (*models.Role, error) {
	role := &models.Role{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, slugTaken(req.Slug)
		}
		return nil, fmt.Errorf("create role: %w", err)
	}
	return role, nil
}

// Update applies the fields present in req to the role with id
func (s *RoleService) Update(ctx context.Context, id uint, req dto.UpdateRoleRequest) (*models.Role, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.Slug != nil {
		changes["slug"] = *req.Slug
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}

	role, err := s.roleRepo.Update(ctx, id, changes)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, slugTaken(utils.Deref(req.Slug))
		}
		return nil, fmt.Errorf("update role %d: %w", id, err)
	}
	return role, nil
}

// Delete removes the role with id
func (s *RoleService) Delete(ctx context.Context, id uint) error {
	err := s.roleRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return utils.NewNotFound("roles.not_found")
	}
	if err != nil {
		return fmt.Errorf("delete role %d: %w", id, err)
	}
	return nil
}

func slugTaken(slug string) error {
	return utils.NewConflict("roles.slug_taken", map[string]string{"slug": slug})
}
