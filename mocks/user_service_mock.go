package mocks

import (
	"context"

	"github.com/acl-api/dto"
	"github.com/acl-api/lib/pagination"
	"github.com/acl-api/models"
	"github.com/acl-api/repositories"
	"github.com/stretchr/testify/mock"
)

type UserService struct{ mock.Mock }

func (m *UserService) GetAllPaginated(ctx context.Context, opts repositories.ListOptions) (pagination.Result[models.User], error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(pagination.Result[models.User]), args.Error(1)
}

func (m *UserService) FindOrFail(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserService) Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (*models.User, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserService) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
