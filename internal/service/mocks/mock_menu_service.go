package mocks

import (
	"context"
	"io"

	"noodlebar/internal/model"
	"noodlebar/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuService) Get(ctx context.Context, id string) (*model.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuService) List(ctx context.Context, limit, offset int) (*service.MenuListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MenuListResult), args.Error(1)
}

func (m *MockMenuService) FindByIngredients(ctx context.Context, names ...string) ([]model.MenuItem, error) {
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

func (m *MockMenuService) AnalyseIngredients(ctx context.Context) ([]model.IngredientCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.IngredientCount), args.Error(1)
}

func (m *MockMenuService) AttachPhoto(ctx context.Context, id string, r io.Reader, originalFilename string, contentType string, size int64) (*model.MenuItem, error) {
	args := m.Called(ctx, id, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuService) PhotoURL(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockMenuService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
