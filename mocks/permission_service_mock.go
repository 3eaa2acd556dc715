package mocks

import (
	"context"

	"github.com/acl-api/models"
	"github.com/stretchr/testify/mock"
)

type PermissionService struct{ mock.Mock }

func (m *PermissionService) GetPermissionsWithModule(ctx context.Context) ([]models.Module, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Module), args.Error(1)
}

func (m *PermissionService) GetByID(ctx context.Context, id uint) (*models.Permission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Permission), args.Error(1)
}
