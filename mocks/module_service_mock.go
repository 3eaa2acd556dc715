package mocks

import (
	"context"

	"github.com/acl-api/lib/pagination"
	"github.com/acl-api/models"
	"github.com/acl-api/repositories"
	"github.com/stretchr/testify/mock"
)

type ModuleService struct{ mock.Mock }

func (m *ModuleService) GetAllPaginated(ctx context.Context, opts repositories.ListOptions) (pagination.Result[models.Module], error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(pagination.Result[models.Module]), args.Error(1)
}

func (m *ModuleService) GetByID(ctx context.Context, id uint) (*models.Module, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Module), args.Error(1)
}
