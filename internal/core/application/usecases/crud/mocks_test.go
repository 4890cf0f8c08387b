package crud_test

import (
	"context"

	"storefront/internal/core/application/usecases/crud"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockUserStore struct{ mock.Mock }

func (m *MockUserStore) FindOne(ctx context.Context, id kernel.UUID) (crud.UserView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(crud.UserView), args.Error(1)
}

func (m *MockUserStore) FindAll(ctx context.Context, query crud.ListQuery) ([]crud.UserView, error) {
	args := m.Called(ctx, query)
	if v := args.Get(0); v != nil {
		return v.([]crud.UserView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserStore) UpdateOne(ctx context.Context, id kernel.UUID, columns map[string]any) (crud.UserView, error) {
	args := m.Called(ctx, id, columns)
	return args.Get(0).(crud.UserView), args.Error(1)
}

func (m *MockUserStore) DeleteOne(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
