package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/acl-api/lib/pagination"
	"github.com/acl-api/models"
	"github.com/acl-api/repositories"
	"github.com/acl-api/utils"
)

// ModuleService handles business logic for modules
type ModuleService struct {
	moduleRepo *repositories.ModuleRepository
}

// NewModuleService creates a new module service instance
func NewModuleService(moduleRepo *repositories.ModuleRepository) *ModuleService {
	return &ModuleService{moduleRepo: moduleRepo}
}

// GetAllPaginated lists modules matching opts
func (s *ModuleService) GetAllPaginated(ctx context.Context, opts repositories.ListOptions) (pagination.Result[models.Module], error) {
	result, err := s.moduleRepo.FindAllPaginated(ctx, opts)
	if err != nil {
		return result, fmt.Errorf("list modules: %w", err)
	}
	return result, nil
}

// GetByID returns the module with id or a not found error
func (s *ModuleService) GetByID(ctx context.Context, id uint) (*models.Module, error) {
	module, err := s.moduleRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, utils.NewNotFound("modules.not_found")
	}
	if err != nil {
		return nil, fmt.Errorf("find module %d: %w", id, err)
	}
	return module, nil
}
