package mocks

import (
	"context"

	"noodlebar/internal/model"
	"noodlebar/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockMenuItemRepository struct {
	mock.Mock
}

func (m *MockMenuItemRepository) Save(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) FindByID(ctx context.Context, id string) (*model.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) FindByName(ctx context.Context, name string) (*model.MenuItem, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) FindByIngredientsNameIn(ctx context.Context, names ...string) ([]model.MenuItem, error) {
	callArgs := make([]interface{}, 0, len(names)+1)
	callArgs = append(callArgs, ctx)
	for _, n := range names {
		callArgs = append(callArgs, n)
	}
	args := m.Called(callArgs...)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.MenuItem], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.MenuItem]), args.Error(1)
}

func (m *MockMenuItemRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMenuItemRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMenuItemRepository) AnalyseIngredients(ctx context.Context) ([]model.IngredientCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.IngredientCount), args.Error(1)
}
