package http_test

import (
	"context"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/crud"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/payload"

	"github.com/stretchr/testify/mock"
)

type MockProfileUpdater struct{ mock.Mock }

func (m *MockProfileUpdater) Handle(ctx context.Context, cmd commands.UpdateProfileCommand) (*user.User, error) {
	args := m.Called(ctx, cmd)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAccountDeactivator struct{ mock.Mock }

func (m *MockAccountDeactivator) Handle(ctx context.Context, cmd commands.DeactivateAccountCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockOrderUpdater struct{ mock.Mock }

func (m *MockOrderUpdater) Handle(ctx context.Context, cmd commands.UpdateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockOrderCanceler struct{ mock.Mock }

func (m *MockOrderCanceler) Handle(ctx context.Context, cmd commands.CancelOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockOrderOwnerFinder struct{ mock.Mock }

func (m *MockOrderOwnerFinder) Handle(ctx context.Context, query queries.GetOrderOwnerQuery) (kernel.UUID, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockUserResource struct{ mock.Mock }

func (m *MockUserResource) GetOne(ctx context.Context, id kernel.UUID) (crud.UserView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(crud.UserView), args.Error(1)
}

func (m *MockUserResource) GetAll(ctx context.Context, params crud.ListParams) ([]crud.UserView, error) {
	args := m.Called(ctx, params)
	if v := args.Get(0); v != nil {
		return v.([]crud.UserView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserResource) UpdateOne(ctx context.Context, id kernel.UUID, body payload.Payload) (crud.UserView, error) {
	args := m.Called(ctx, id, body)
	return args.Get(0).(crud.UserView), args.Error(1)
}

func (m *MockUserResource) DeleteOne(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserResource) CreateOne(ctx context.Context, body payload.Payload) (crud.UserView, error) {
	args := m.Called(ctx, body)
	return args.Get(0).(crud.UserView), args.Error(1)
}
