package mocks

import (
	"context"

	"noodlebar/internal/model"
	"noodlebar/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(ctx context.Context, order *model.Order) (*model.Order, error) {
	args := m.Called(ctx, order)
	if f, ok := args.Get(0).(func(context.Context, *model.Order) *model.Order); ok {
		return f(ctx, order), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Order], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Order]), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderStatusRepository struct {
	mock.Mock
}

func (m *MockOrderStatusRepository) Save(ctx context.Context, status *model.OrderStatus) (*model.OrderStatus, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderStatus), args.Error(1)
}

func (m *MockOrderStatusRepository) FindByID(ctx context.Context, id string) (*model.OrderStatus, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderStatus), args.Error(1)
}

func (m *MockOrderStatusRepository) FindByOrderID(ctx context.Context, orderID string) ([]model.OrderStatus, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderStatus), args.Error(1)
}

func (m *MockOrderStatusRepository) Latest(ctx context.Context, orderID string) (*model.OrderStatus, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderStatus), args.Error(1)
}

func (m *MockOrderStatusRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
