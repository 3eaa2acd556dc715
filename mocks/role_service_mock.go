package mocks

import (
	"context"

	"github.com/acl-api/dto"
	"github.com/acl-api/lib/pagination"
	"github.com/acl-api/models"
	"github.com/acl-api/repositories"
	"github.com/stretchr/testify/mock"
)

type RoleService struct{ mock.Mock }

func (m *RoleService) GetAllPaginated(ctx context.Context, opts repositories.ListOptions) (pagination.Result[models.Role], error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(pagination.Result[models.Role]), args.Error(1)
}

func (m *RoleService) GetByID(ctx context.Context, id uint) (*models.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Role), args.Error(1)
}

func (m *RoleService) Create(ctx context.Context, req dto.CreateRoleRequest) (*models.Role, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Role), args.Error(1)
}

func (m *RoleService) Update(ctx context.Context, id uint, req dto.UpdateRoleRequest) (*models.Role, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Role), args.Error(1)
}

func (m *RoleService) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
